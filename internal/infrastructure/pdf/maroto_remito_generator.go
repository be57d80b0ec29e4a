// Package pdf implementa la generación del remito que viaja con cada
// paquete (comprobante interno de traslado entre locales).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del paquete  │  Destino + Fecha             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TRANSPORTE: empresa / N° de seguimiento                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Artículo | Costo Unit. | Flete asignado      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Valor mercadería / Flete total                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appshipping "github.com/jmfarias/traslados-api/internal/application/shipping"
	"github.com/jmfarias/traslados-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 127, Green: 50, Blue: 0}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appshipping.RemitoGenerator = (*MarotoRemitoGenerator)(nil)

// MarotoRemitoGenerator implementa shipping.RemitoGenerator usando Maroto v2.
type MarotoRemitoGenerator struct{}

// NewMarotoRemitoGenerator construye el generador.
func NewMarotoRemitoGenerator() *MarotoRemitoGenerator { return &MarotoRemitoGenerator{} }

// GenerateRemitoPDF genera el PDF y devuelve sus bytes.
func (g *MarotoRemitoGenerator) GenerateRemitoPDF(
	_ context.Context,
	pkg *entity.ShippingPackage,
	items []*entity.OrderLineItem,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Remito de traslado", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(pkg))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(courierRow(pkg))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de renglones
	m.AddRows(tableHeaderRow())
	totalValue := decimal.Zero
	for _, item := range items {
		m.AddRows(tableItemRow(item))
		totalValue = totalValue.Add(decimal.NewFromInt(int64(item.Quantity)).Mul(item.CostPerUnit))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(totalValue, pkg.TransportCost))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar remito: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del paquete (izq) y destino + fecha (der).
func headerRow(pkg *entity.ShippingPackage) core.Row {
	fecha := pkg.CreatedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("REMITO DE TRASLADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(pkg.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Top: 7,
			}),
		),
		col.New(5).Add(
			text.New("Destino: "+pkg.Destination, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New("Fecha de despacho: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// courierRow: transporte y seguimiento.
func courierRow(pkg *entity.ShippingPackage) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("TRANSPORTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Empresa: %s   |   Seguimiento: %s",
				pkg.Courier,
				nonEmpty(pkg.TrackingNumber, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de renglones.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Artículo", 6, align.Left),
		h("Costo Unit.", 2, align.Right),
		h("Flete asignado", 3, align.Right),
	)
}

// tableItemRow: una fila por renglón del paquete. Montos redondeados a dos
// decimales solo acá, en el borde de presentación.
func tableItemRow(item *entity.OrderLineItem) core.Row {
	name := item.ProductName
	if item.Color != "" {
		name += " (" + item.Color + ")"
	}
	return row.New(7).Add(
		col.New(1).Add(text.New(
			fmt.Sprintf("%d", item.Quantity),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(6).Add(text.New(
			name,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(2).Add(text.New(
			"$"+item.CostPerUnit.StringFixed(2),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(3).Add(text.New(
			"$"+item.AllocatedTransport.StringFixed(2),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(totalValue, transportCost decimal.Decimal) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}

	return row.New(18).Add(
		col.New(4), // espacio izquierdo
		col.New(4).Add(
			label("Valor mercadería:", 2),
			label("Flete total:", 8),
		),
		col.New(4).Add(
			value("$"+totalValue.StringFixed(2), 2),
			value("$"+transportCost.StringFixed(2), 8),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
