package shipping

import (
	"context"

	"github.com/jmfarias/traslados-api/internal/domain"
	"github.com/jmfarias/traslados-api/internal/domain/repository"
)

// RemitoUseCase genera el remito PDF de un paquete (comprobante que viaja
// con el bulto: renglones, cantidades y flete prorrateado).
type RemitoUseCase struct {
	pkgRepo   repository.PackageRepository
	itemRepo  repository.OrderItemRepository
	generator RemitoGenerator
}

// NewRemitoUseCase construye el caso de uso.
func NewRemitoUseCase(pkgRepo repository.PackageRepository, itemRepo repository.OrderItemRepository, generator RemitoGenerator) *RemitoUseCase {
	return &RemitoUseCase{pkgRepo: pkgRepo, itemRepo: itemRepo, generator: generator}
}

// Generate devuelve los bytes del PDF del remito.
func (uc *RemitoUseCase) Generate(ctx context.Context, packageID string) ([]byte, error) {
	pkg, err := uc.pkgRepo.GetByID(packageID)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.itemRepo.ListByPackage(packageID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateRemitoPDF(ctx, pkg, items)
}
