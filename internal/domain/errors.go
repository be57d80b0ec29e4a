package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente en origen")
	ErrItemAssigned      = errors.New("el artículo ya pertenece a un paquete")
	ErrInvalidTransition = errors.New("transición de estado inválida")
)
