package shipping_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmfarias/traslados-api/internal/application/shipping"
	"github.com/jmfarias/traslados-api/internal/domain"
	"github.com/jmfarias/traslados-api/internal/domain/entity"
)

// seedDeliverable arma un paquete pendiente con un renglón de 4 unidades.
func seedDeliverable() (*fakeStore, *shipping.LifecycleUseCase) {
	s := newFakeStore()
	s.addProduct("prod-x", 5, 1, dec("3"))
	s.packages["pkg-1"] = &entity.ShippingPackage{
		ID: "pkg-1", Name: "caja 1", Destination: "Córdoba",
		Courier: "andreani", TransportCost: dec("20"),
		Status: entity.PackageStatusPending,
	}
	s.items["item-x"] = &entity.OrderLineItem{
		ID: "item-x", PurchaseOrderID: "oc-1", ProductID: "prod-x",
		Quantity: 4, CostPerUnit: dec("3"), ShippingPackageID: "pkg-1",
	}
	uc := shipping.NewLifecycleUseCase(&fakeTxRunner{s}, &fakePackageRepo{s}, &fakeItemRepo{s})
	return s, uc
}

func TestUpdateStatus_EnCaminoSinEfectoDeStock(t *testing.T) {
	s, uc := seedDeliverable()

	resp, err := uc.UpdateStatus(context.Background(), "pkg-1", entity.PackageStatusInTransit)
	require.NoError(t, err)

	assert.Equal(t, entity.PackageStatusInTransit, resp.Status)
	assert.Equal(t, 5, s.products["prod-x"].StockJujuy)
	assert.Equal(t, 1, s.products["prod-x"].StockCordoba)
	assert.Empty(t, s.movs)
}

func TestUpdateStatus_EntregaAcreditaDestino(t *testing.T) {
	s, uc := seedDeliverable()

	resp, err := uc.UpdateStatus(context.Background(), "pkg-1", entity.PackageStatusDelivered)
	require.NoError(t, err)

	assert.Equal(t, entity.PackageStatusDelivered, resp.Status)
	require.NotNil(t, resp.DeliveredAt, "la entrega queda fechada")
	assert.Equal(t, 5, s.products["prod-x"].StockCordoba, "destino: 1 + 4")

	require.Len(t, s.movs, 1)
	assert.Equal(t, entity.MovementTypeRecepcion, s.movs[0].Type)
	assert.Equal(t, 4, s.movs[0].Quantity)
	assert.Equal(t, "pkg-1", s.movs[0].Reference)
}

// La entrega se puede confirmar directo desde "pendiente" (el operador
// se olvidó de marcar el tránsito); el efecto es el mismo.
func TestUpdateStatus_EntregaDirectaDesdePendiente(t *testing.T) {
	s, uc := seedDeliverable()

	_, err := uc.UpdateStatus(context.Background(), "pkg-1", entity.PackageStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, 5, s.products["prod-x"].StockCordoba)
}

// Re-confirmar una entrega no acredita dos veces.
func TestUpdateStatus_EntregaIdempotente(t *testing.T) {
	s, uc := seedDeliverable()

	_, err := uc.UpdateStatus(context.Background(), "pkg-1", entity.PackageStatusDelivered)
	require.NoError(t, err)

	_, err = uc.UpdateStatus(context.Background(), "pkg-1", entity.PackageStatusDelivered)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	assert.Equal(t, 5, s.products["prod-x"].StockCordoba, "acreditado una sola vez")
	assert.Len(t, s.movs, 1)
}

func TestUpdateStatus_SinRetrocesos(t *testing.T) {
	s, uc := seedDeliverable()
	s.packages["pkg-1"].Status = entity.PackageStatusDelivered

	_, err := uc.UpdateStatus(context.Background(), "pkg-1", entity.PackageStatusInTransit)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestUpdateStatus_EstadoDesconocido(t *testing.T) {
	_, uc := seedDeliverable()

	_, err := uc.UpdateStatus(context.Background(), "pkg-1", "cancelado")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateStatus_PaqueteInexistente(t *testing.T) {
	_, uc := seedDeliverable()

	_, err := uc.UpdateStatus(context.Background(), "no-existe", entity.PackageStatusDelivered)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_IncluyeCantidadDeRenglones(t *testing.T) {
	_, uc := seedDeliverable()

	list, err := uc.List(context.Background(), 20, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1, list[0].ItemCount)
}

func TestGetByID_DevuelveRenglones(t *testing.T) {
	_, uc := seedDeliverable()

	detail, err := uc.GetByID(context.Background(), "pkg-1")
	require.NoError(t, err)
	require.Len(t, detail.Items, 1)
	assert.Equal(t, "item-x", detail.Items[0].ItemID)
	assert.Equal(t, 4, detail.Items[0].Quantity)
}
