package shipping

import "github.com/jmfarias/traslados-api/internal/domain"

// SplitKind distingue despacho parcial (clonar) de despacho total (linkear).
type SplitKind int

const (
	// SplitPartial: el renglón original queda con el remanente sin asignar
	// y se crea un hermano con la cantidad despachada, linkeado al paquete.
	SplitPartial SplitKind = iota
	// SplitFull: el renglón original se linkea entero al paquete, sin clon.
	SplitFull
)

// SplitDecision es el resultado de la decisión clonar-o-linkear.
// Invariante: Shipped + Remainder == cantidad original del renglón.
type SplitDecision struct {
	Kind      SplitKind
	Shipped   int // unidades que viajan en el paquete
	Remainder int // unidades que quedan sin asignar (0 en SplitFull)
}

// DecideSplit resuelve cómo despachar qtyToShip unidades de un renglón de
// orderQty. Función pura: la aplicación de la decisión (decrementar, clonar,
// linkear) es responsabilidad del motor de transferencias.
func DecideSplit(orderQty, qtyToShip int) (SplitDecision, error) {
	if qtyToShip <= 0 || qtyToShip > orderQty {
		return SplitDecision{}, domain.ErrInvalidInput
	}
	if qtyToShip < orderQty {
		return SplitDecision{
			Kind:      SplitPartial,
			Shipped:   qtyToShip,
			Remainder: orderQty - qtyToShip,
		}, nil
	}
	return SplitDecision{Kind: SplitFull, Shipped: qtyToShip}, nil
}
