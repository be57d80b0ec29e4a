package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un paquete. La máquina es lineal:
// pendiente → en_camino → entregado, sin saltos ni retrocesos.
const (
	PackageStatusPending   = "pendiente"
	PackageStatusInTransit = "en_camino"
	PackageStatusDelivered = "entregado"
)

// ShippingPackage es un bulto físico que viaja de Jujuy a Córdoba con un
// costo de flete compartido. Los renglones despachados le pertenecen vía
// OrderLineItem.ShippingPackageID; el paquete nunca duplica esos datos.
type ShippingPackage struct {
	ID             string
	Name           string
	Destination    string
	Courier        string
	TransportCost  decimal.Decimal
	TrackingNumber string
	Status         string
	CreatedAt      time.Time
	DeliveredAt    *time.Time
}

// CanTransition valida un cambio de estado contra la máquina lineal.
// El estado "entregado" es terminal.
func (p *ShippingPackage) CanTransition(target string) bool {
	switch p.Status {
	case PackageStatusPending:
		return target == PackageStatusInTransit || target == PackageStatusDelivered
	case PackageStatusInTransit:
		return target == PackageStatusDelivered
	}
	return false
}
