package repository

import "github.com/jmfarias/traslados-api/internal/domain/entity"

// RateRepository define el puerto para la tabla de tarifas de transporte.
type RateRepository interface {
	Create(rate *entity.ShippingRate) error
	GetByID(id string) (*entity.ShippingRate, error)
	// Lookup devuelve la tarifa para (transporte, destino) o nil si no hay.
	Lookup(courier, destination string) (*entity.ShippingRate, error)
	Update(rate *entity.ShippingRate) error
	Delete(id string) error
	List() ([]*entity.ShippingRate, error)
}
