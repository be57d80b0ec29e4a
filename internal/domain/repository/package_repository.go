package repository

import (
	"time"

	"github.com/jmfarias/traslados-api/internal/domain/entity"
)

// PackageSummary es un paquete con la cantidad de renglones que contiene,
// para el listado.
type PackageSummary struct {
	Package   entity.ShippingPackage
	ItemCount int
}

// PackageRepository define el puerto de persistencia para paquetes.
// No expone Delete: borrar un paquete no revertiría el stock ya descontado,
// así que la operación directamente no existe en este subsistema.
type PackageRepository interface {
	Create(pkg *entity.ShippingPackage) error
	GetByID(id string) (*entity.ShippingPackage, error)
	// GetForUpdate bloquea la fila del paquete para validar la transición
	// de estado sin dobles acreditaciones.
	GetForUpdate(id string) (*entity.ShippingPackage, error)
	UpdateStatus(id, status string, deliveredAt *time.Time) error
	List(limit, offset int) ([]PackageSummary, error)
}
