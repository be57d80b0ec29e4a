package shipping_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmfarias/traslados-api/internal/application/dto"
	"github.com/jmfarias/traslados-api/internal/application/shipping"
	"github.com/jmfarias/traslados-api/internal/domain"
	"github.com/jmfarias/traslados-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func costPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// seedVector arma el escenario del vector conocido: A con 10 u a $5,
// B con 5 u a $10, ambos con stock suficiente en Jujuy.
func seedVector() *fakeStore {
	s := newFakeStore()
	s.addReceivedOrder("oc-1")
	s.addProduct("prod-a", 10, 2, dec("5"))
	s.addProduct("prod-b", 5, 0, dec("10"))
	s.addItem("item-a", "oc-1", "prod-a", 10, dec("5"))
	s.addItem("item-b", "oc-1", "prod-b", 5, dec("10"))
	return s
}

func commitRequest(items ...dto.SelectedItem) dto.CommitPackageRequest {
	return dto.CommitPackageRequest{
		Name:          "bulto marzo",
		Destination:   "Córdoba",
		Courier:       "Cruz del Sur",
		TransportCost: costPtr("30"),
		Items:         items,
	}
}

// Commit con el vector conocido: $30 de flete repartido 50/50, costos
// unitarios nuevos $6.50 y $13.00, stock de Jujuy descontado.
func TestCommit_VectorConocido(t *testing.T) {
	s := seedVector()
	uc := shipping.NewTransferUseCase(&fakeTxRunner{s})

	resp, err := uc.Commit(context.Background(), commitRequest(
		dto.SelectedItem{ItemID: "item-a", Quantity: 10},
		dto.SelectedItem{ItemID: "item-b", Quantity: 5},
	))
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, entity.PackageStatusPending, resp.Status)

	// Flete prorrateado 50/50
	assert.True(t, s.items["item-a"].AllocatedTransport.Equal(dec("15")))
	assert.True(t, s.items["item-b"].AllocatedTransport.Equal(dec("15")))

	// Nuevo costo unitario sobreescrito en el catálogo
	assert.True(t, s.products["prod-a"].UnitCost.Equal(dec("6.5")),
		"prod-a: %s", s.products["prod-a"].UnitCost)
	assert.True(t, s.products["prod-b"].UnitCost.Equal(dec("13")),
		"prod-b: %s", s.products["prod-b"].UnitCost)

	// Stock de origen descontado, destino intacto (mercadería en tránsito)
	assert.Equal(t, 0, s.products["prod-a"].StockJujuy)
	assert.Equal(t, 2, s.products["prod-a"].StockCordoba)
	assert.Equal(t, 0, s.products["prod-b"].StockJujuy)

	// Un asiento "envio" por renglón
	require.Len(t, s.movs, 2)
	for _, m := range s.movs {
		assert.Equal(t, entity.MovementTypeEnvio, m.Type)
		assert.Negative(t, m.Quantity)
		assert.Equal(t, resp.ID, m.Reference)
	}
}

// Despacho parcial de 3 sobre 10: el original queda con 7 sin asignar y
// aparece un hermano con 3 linkeado al paquete. La cantidad se conserva.
func TestCommit_DespachoParcialConserva(t *testing.T) {
	s := newFakeStore()
	s.addReceivedOrder("oc-1")
	s.addProduct("prod-c", 10, 0, dec("2"))
	s.addItem("item-c", "oc-1", "prod-c", 10, dec("2"))
	uc := shipping.NewTransferUseCase(&fakeTxRunner{s})

	resp, err := uc.Commit(context.Background(), commitRequest(
		dto.SelectedItem{ItemID: "item-c", Quantity: 3},
	))
	require.NoError(t, err)

	original := s.items["item-c"]
	assert.Equal(t, 7, original.Quantity)
	assert.False(t, original.Assigned(), "el remanente queda libre para otro paquete")

	var sibling *entity.OrderLineItem
	for id, item := range s.items {
		if id != "item-c" {
			sibling = item
		}
	}
	require.NotNil(t, sibling, "debe existir el hermano despachado")
	assert.Equal(t, 3, sibling.Quantity)
	assert.Equal(t, resp.ID, sibling.ShippingPackageID)
	assert.Equal(t, "prod-c", sibling.ProductID)
	assert.Equal(t, 10, original.Quantity+sibling.Quantity, "la cantidad total se conserva")

	assert.Equal(t, 7, s.products["prod-c"].StockJujuy)
}

// Despacho total: se linkea el original, sin clon.
func TestCommit_TotalLinkeaSinClonar(t *testing.T) {
	s := newFakeStore()
	s.addReceivedOrder("oc-1")
	s.addProduct("prod-c", 10, 0, dec("2"))
	s.addItem("item-c", "oc-1", "prod-c", 10, dec("2"))
	uc := shipping.NewTransferUseCase(&fakeTxRunner{s})

	resp, err := uc.Commit(context.Background(), commitRequest(
		dto.SelectedItem{ItemID: "item-c", Quantity: 10},
	))
	require.NoError(t, err)

	require.Len(t, s.items, 1, "no debe crearse ningún renglón nuevo")
	assert.Equal(t, resp.ID, s.items["item-c"].ShippingPackageID)
	assert.Equal(t, 10, s.items["item-c"].Quantity)
}

// La cantidad pedida se acota al stock de origen disponible.
func TestCommit_AcotaAlStockDeOrigen(t *testing.T) {
	s := newFakeStore()
	s.addReceivedOrder("oc-1")
	s.addProduct("prod-c", 4, 0, dec("2"))
	s.addItem("item-c", "oc-1", "prod-c", 10, dec("2"))
	uc := shipping.NewTransferUseCase(&fakeTxRunner{s})

	_, err := uc.Commit(context.Background(), commitRequest(
		dto.SelectedItem{ItemID: "item-c", Quantity: 8},
	))
	require.NoError(t, err)

	assert.Equal(t, 0, s.products["prod-c"].StockJujuy, "despacha solo lo que hay")
	assert.Equal(t, 6, s.items["item-c"].Quantity, "el remanente refleja lo no despachado")
}

// Formulario incompleto: rechazo antes de cualquier escritura.
func TestCommit_FormularioIncompletoNoEscribe(t *testing.T) {
	cases := []dto.CommitPackageRequest{
		{Destination: "Córdoba", Courier: "x", TransportCost: costPtr("10"), Items: []dto.SelectedItem{{ItemID: "item-a"}}},
		{Name: "b", Courier: "x", TransportCost: costPtr("10"), Items: []dto.SelectedItem{{ItemID: "item-a"}}},
		{Name: "b", Destination: "Córdoba", Courier: "x", Items: []dto.SelectedItem{{ItemID: "item-a"}}},
		{Name: "b", Destination: "Córdoba", Courier: "x", TransportCost: costPtr("10")},
	}
	for _, in := range cases {
		s := seedVector()
		uc := shipping.NewTransferUseCase(&fakeTxRunner{s})

		_, err := uc.Commit(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Empty(t, s.packages, "ningún paquete creado")
		assert.Equal(t, 10, s.products["prod-a"].StockJujuy, "stock intacto")
		assert.Empty(t, s.movs)
	}
}

func TestCommit_RenglonYaAsignado(t *testing.T) {
	s := seedVector()
	s.items["item-a"].ShippingPackageID = "pkg-previo"
	uc := shipping.NewTransferUseCase(&fakeTxRunner{s})

	_, err := uc.Commit(context.Background(), commitRequest(
		dto.SelectedItem{ItemID: "item-a", Quantity: 1},
	))
	assert.ErrorIs(t, err, domain.ErrItemAssigned)
}

func TestCommit_SinStockDeOrigen(t *testing.T) {
	s := seedVector()
	s.products["prod-a"].StockJujuy = 0
	uc := shipping.NewTransferUseCase(&fakeTxRunner{s})

	_, err := uc.Commit(context.Background(), commitRequest(
		dto.SelectedItem{ItemID: "item-a", Quantity: 1},
	))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestCommit_RenglonInexistente(t *testing.T) {
	s := seedVector()
	uc := shipping.NewTransferUseCase(&fakeTxRunner{s})

	_, err := uc.Commit(context.Background(), commitRequest(
		dto.SelectedItem{ItemID: "no-existe", Quantity: 1},
	))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Conservación de stock punta a punta: commit descuenta origen sin tocar
// destino; la entrega acredita destino y el total vuelve a su valor.
func TestCommit_ConservacionConEntrega(t *testing.T) {
	s := newFakeStore()
	s.addReceivedOrder("oc-1")
	s.addProduct("prod-c", 8, 3, dec("2"))
	s.addItem("item-c", "oc-1", "prod-c", 6, dec("2"))
	runner := &fakeTxRunner{s}
	transfer := shipping.NewTransferUseCase(runner)
	lifecycle := shipping.NewLifecycleUseCase(runner, &fakePackageRepo{s}, &fakeItemRepo{s})

	resp, err := transfer.Commit(context.Background(), commitRequest(
		dto.SelectedItem{ItemID: "item-c", Quantity: 6},
	))
	require.NoError(t, err)

	p := s.products["prod-c"]
	assert.Equal(t, 2, p.StockJujuy, "origen: 8 - 6")
	assert.Equal(t, 3, p.StockCordoba, "destino sin cambios durante el tránsito")
	assert.Equal(t, 5, p.TotalStock(), "las 6 unidades en viaje no cuentan")

	_, err = lifecycle.UpdateStatus(context.Background(), resp.ID, entity.PackageStatusInTransit)
	require.NoError(t, err)
	assert.Equal(t, 3, s.products["prod-c"].StockCordoba, "en_camino no acredita nada")

	_, err = lifecycle.UpdateStatus(context.Background(), resp.ID, entity.PackageStatusDelivered)
	require.NoError(t, err)

	p = s.products["prod-c"]
	assert.Equal(t, 2, p.StockJujuy)
	assert.Equal(t, 9, p.StockCordoba, "destino: 3 + 6")
	assert.Equal(t, 11, p.TotalStock(), "el total recupera las unidades viajadas")
}

// Dos renglones del mismo producto en un commit: el descuento es acumulado,
// no dos escrituras calculadas desde la misma foto del stock. 6 + 4 sobre
// stock 10 deja 0, no 4.
func TestCommit_MismoProductoDosRenglones(t *testing.T) {
	s := newFakeStore()
	s.addReceivedOrder("oc-1")
	s.addProduct("prod-d", 10, 0, dec("2"))
	s.addItem("item-d1", "oc-1", "prod-d", 6, dec("2"))
	s.addItem("item-d2", "oc-1", "prod-d", 4, dec("2"))
	uc := shipping.NewTransferUseCase(&fakeTxRunner{s})

	_, err := uc.Commit(context.Background(), commitRequest(
		dto.SelectedItem{ItemID: "item-d1", Quantity: 6},
		dto.SelectedItem{ItemID: "item-d2", Quantity: 4},
	))
	require.NoError(t, err)

	assert.Equal(t, 0, s.products["prod-d"].StockJujuy, "10 - 6 - 4")

	require.Len(t, s.movs, 2)
	total := 0
	for _, m := range s.movs {
		total += m.Quantity
	}
	assert.Equal(t, -10, total, "el diario refleja todo lo despachado")
}

// El tope de cada renglón descuenta lo ya reservado por renglones anteriores
// del mismo producto: la selección combinada nunca despacha más que el stock.
func TestCommit_StockCompartidoEntreRenglones(t *testing.T) {
	s := newFakeStore()
	s.addReceivedOrder("oc-1")
	s.addProduct("prod-e", 10, 0, dec("2"))
	s.addItem("item-e1", "oc-1", "prod-e", 6, dec("2"))
	s.addItem("item-e2", "oc-1", "prod-e", 6, dec("2"))
	uc := shipping.NewTransferUseCase(&fakeTxRunner{s})

	resp, err := uc.Commit(context.Background(), commitRequest(
		dto.SelectedItem{ItemID: "item-e1", Quantity: 6},
		dto.SelectedItem{ItemID: "item-e2", Quantity: 6},
	))
	require.NoError(t, err)

	// El segundo renglón se acota a las 4 unidades que quedaban
	assert.Equal(t, 0, s.products["prod-e"].StockJujuy)
	assert.Equal(t, 2, s.items["item-e2"].Quantity, "remanente del renglón acotado")

	shipped := 0
	for _, item := range s.items {
		if item.ShippingPackageID == resp.ID {
			shipped += item.Quantity
		}
	}
	assert.Equal(t, 10, shipped, "nunca viaja más que el stock de origen")
}

// Si un renglón anterior agotó el stock del producto, el siguiente falla y
// la transacción no escribe nada.
func TestCommit_SegundoRenglonSinStockRestante(t *testing.T) {
	s := newFakeStore()
	s.addReceivedOrder("oc-1")
	s.addProduct("prod-f", 6, 0, dec("2"))
	s.addItem("item-f1", "oc-1", "prod-f", 6, dec("2"))
	s.addItem("item-f2", "oc-1", "prod-f", 4, dec("2"))
	uc := shipping.NewTransferUseCase(&fakeTxRunner{s})

	_, err := uc.Commit(context.Background(), commitRequest(
		dto.SelectedItem{ItemID: "item-f1", Quantity: 6},
		dto.SelectedItem{ItemID: "item-f2", Quantity: 4},
	))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, s.packages)
	assert.Equal(t, 6, s.products["prod-f"].StockJujuy, "stock intacto")
}

// El mismo renglón repetido en la selección se rechaza antes de escribir:
// partirlo dos veces inventaría cantidad.
func TestCommit_RenglonRepetidoEnSeleccion(t *testing.T) {
	s := seedVector()
	uc := shipping.NewTransferUseCase(&fakeTxRunner{s})

	_, err := uc.Commit(context.Background(), commitRequest(
		dto.SelectedItem{ItemID: "item-a", Quantity: 3},
		dto.SelectedItem{ItemID: "item-a", Quantity: 3},
	))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	require.Len(t, s.items, 2, "ningún hermano creado")
	assert.Equal(t, 10, s.items["item-a"].Quantity, "la cantidad se conserva")
	assert.Equal(t, 10, s.products["prod-a"].StockJujuy)
	assert.Empty(t, s.packages)
}
