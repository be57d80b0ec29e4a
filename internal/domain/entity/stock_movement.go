package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeCompra    = "compra"    // ingreso de mercadería en Jujuy
	MovementTypeEnvio     = "envio"     // descuento de Jujuy al despachar un paquete
	MovementTypeRecepcion = "recepcion" // acreditación en Córdoba al confirmar entrega
)

// StockMovement es el asiento de cada cambio de stock. El motor de envíos
// escribe uno por renglón en el despacho y otro en la entrega; ante una
// falla a mitad de secuencia el diario permite reconciliar a mano.
type StockMovement struct {
	ID        string
	ProductID string
	Type      string
	Quantity  int // negativo para envio, positivo para compra/recepcion
	UnitCost  decimal.Decimal
	Reference string // ID del paquete u orden de compra
	CreatedAt time.Time
}
