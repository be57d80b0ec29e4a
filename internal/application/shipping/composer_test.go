package shipping_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmfarias/traslados-api/internal/application/dto"
	"github.com/jmfarias/traslados-api/internal/application/shipping"
	"github.com/jmfarias/traslados-api/internal/domain"
	"github.com/jmfarias/traslados-api/internal/domain/entity"
)

func newComposer(s *fakeStore) *shipping.ComposerUseCase {
	return shipping.NewComposerUseCase(&fakeItemRepo{s}, &fakeProductRepo{s})
}

// Solo son elegibles los renglones de órdenes recibidas, sin paquete y con
// stock de origen.
func TestEligibleItems_Filtros(t *testing.T) {
	s := newFakeStore()
	s.addReceivedOrder("oc-recibida")
	s.orders["oc-pendiente"] = &entity.PurchaseOrder{ID: "oc-pendiente", Status: entity.OrderStatusPending}
	s.addProduct("prod-ok", 5, 0, dec("4"))
	s.addProduct("prod-sin-stock", 0, 3, dec("4"))

	s.addItem("elegible", "oc-recibida", "prod-ok", 10, dec("4"))
	s.addItem("orden-pendiente", "oc-pendiente", "prod-ok", 2, dec("4"))
	s.addItem("sin-stock", "oc-recibida", "prod-sin-stock", 2, dec("4"))
	s.addItem("ya-asignado", "oc-recibida", "prod-ok", 2, dec("4"))
	s.items["ya-asignado"].ShippingPackageID = "pkg-1"

	uc := newComposer(s)
	items, err := uc.EligibleItems(context.Background())
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "elegible", items[0].ItemID)
	// Tope despachable = min(cantidad del renglón, stock Jujuy)
	assert.Equal(t, 5, items[0].MaxShippable)
	assert.Equal(t, 10, items[0].Quantity)
}

func TestPreview_VectorConocido(t *testing.T) {
	s := seedVector()
	uc := newComposer(s)

	resp, err := uc.Preview(context.Background(), dto.PreviewRequest{
		Items: []dto.SelectedItem{
			{ItemID: "item-a", Quantity: 10},
			{ItemID: "item-b", Quantity: 5},
		},
		TransportCost: costPtr("30"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)

	assert.True(t, resp.Items[0].AllocatedTransport.Equal(dec("15")))
	assert.True(t, resp.Items[0].NewUnitCost.Equal(dec("6.5")))
	assert.True(t, resp.Items[1].NewUnitCost.Equal(dec("13")))
	assert.True(t, resp.TotalItemValue.Equal(dec("100")), "10×$5 + 5×$10")

	// El preview no toca nada
	assert.Equal(t, 10, s.products["prod-a"].StockJujuy)
	assert.True(t, s.products["prod-a"].UnitCost.Equal(dec("5")))
	assert.Empty(t, s.packages)
}

// Cantidad cero o fuera de rango se acota al máximo despachable.
func TestPreview_AcotaCantidades(t *testing.T) {
	s := newFakeStore()
	s.addReceivedOrder("oc-1")
	s.addProduct("prod-c", 3, 0, dec("2"))
	s.addItem("item-c", "oc-1", "prod-c", 10, dec("2"))
	uc := newComposer(s)

	for _, qty := range []int{0, -1, 99} {
		resp, err := uc.Preview(context.Background(), dto.PreviewRequest{
			Items:         []dto.SelectedItem{{ItemID: "item-c", Quantity: qty}},
			TransportCost: costPtr("10"),
		})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.Items[0].Quantity, "pedido %d se acota al stock", qty)
	}
}

func TestPreview_SeleccionVacia(t *testing.T) {
	uc := newComposer(seedVector())

	_, err := uc.Preview(context.Background(), dto.PreviewRequest{TransportCost: costPtr("10")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPreview_SinFlete(t *testing.T) {
	uc := newComposer(seedVector())

	_, err := uc.Preview(context.Background(), dto.PreviewRequest{
		Items: []dto.SelectedItem{{ItemID: "item-a", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPreview_RenglonAsignadoRechazado(t *testing.T) {
	s := seedVector()
	s.items["item-a"].ShippingPackageID = "pkg-1"
	uc := newComposer(s)

	_, err := uc.Preview(context.Background(), dto.PreviewRequest{
		Items:         []dto.SelectedItem{{ItemID: "item-a", Quantity: 1}},
		TransportCost: costPtr("10"),
	})
	assert.ErrorIs(t, err, domain.ErrItemAssigned)
}

func TestPreview_SeleccionRepetida(t *testing.T) {
	uc := newComposer(seedVector())

	_, err := uc.Preview(context.Background(), dto.PreviewRequest{
		Items: []dto.SelectedItem{
			{ItemID: "item-a", Quantity: 3},
			{ItemID: "item-a", Quantity: 3},
		},
		TransportCost: costPtr("10"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El tope del preview también descuenta lo reservado por renglones
// anteriores del mismo producto, igual que el commit.
func TestPreview_StockCompartidoEntreRenglones(t *testing.T) {
	s := newFakeStore()
	s.addReceivedOrder("oc-1")
	s.addProduct("prod-g", 5, 0, dec("2"))
	s.addItem("item-g1", "oc-1", "prod-g", 4, dec("2"))
	s.addItem("item-g2", "oc-1", "prod-g", 4, dec("2"))
	uc := newComposer(s)

	resp, err := uc.Preview(context.Background(), dto.PreviewRequest{
		Items: []dto.SelectedItem{
			{ItemID: "item-g1", Quantity: 4},
			{ItemID: "item-g2", Quantity: 4},
		},
		TransportCost: costPtr("10"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, 4, resp.Items[0].Quantity)
	assert.Equal(t, 1, resp.Items[1].Quantity, "solo queda 1 unidad sin reservar")
}
