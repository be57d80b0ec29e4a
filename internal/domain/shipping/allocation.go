package shipping

import "github.com/shopspring/decimal"

// CandidateItem es un renglón candidato a despacho con su cantidad elegida.
type CandidateItem struct {
	ItemID         string
	QuantityToShip int
	CostPerUnit    decimal.Decimal
}

// CostDistributionEntry es el resultado del prorrateo para un renglón.
// Se calcula fresco en cada preview o commit, nunca se cachea, para que
// un cambio de selección o de flete total no deje valores viejos.
type CostDistributionEntry struct {
	ItemID             string
	AllocatedTransport decimal.Decimal // porción del flete total asignada al renglón
	TransportPerUnit   decimal.Decimal // AllocatedTransport / cantidad
	NewUnitCost        decimal.Decimal // CostPerUnit + TransportPerUnit
}

// Distribute prorratea el flete total entre los renglones, ponderado por el
// valor de compra de cada uno (cantidad * costo unitario):
//
//	proporción_i = (cant_i * costo_i) / Σ (cant_j * costo_j)
//
// Si todos los renglones tienen costo cero reparte en partes iguales (1/N)
// para no dividir por cero. Sin renglones devuelve lista vacía; el caller
// debe bloquear el commit en ese caso.
//
// Función pura y determinística: segura de llamar en cada edición del
// operador para el preview en vivo. Mantiene precisión completa; redondear
// recién al mostrar o persistir.
func Distribute(items []CandidateItem, totalTransportCost decimal.Decimal) []CostDistributionEntry {
	if len(items) == 0 {
		return nil
	}

	totalCost := decimal.Zero
	itemCosts := make([]decimal.Decimal, len(items))
	for i, it := range items {
		itemCosts[i] = decimal.NewFromInt(int64(it.QuantityToShip)).Mul(it.CostPerUnit)
		totalCost = totalCost.Add(itemCosts[i])
	}

	n := decimal.NewFromInt(int64(len(items)))
	entries := make([]CostDistributionEntry, len(items))
	for i, it := range items {
		var allocated decimal.Decimal
		if totalCost.IsZero() {
			// Todos los renglones gratis: reparto uniforme. Se divide el
			// total directo, no vía una proporción 1/N ya truncada, así
			// 90/3 da 30 exacto y no 29.999...
			allocated = totalTransportCost.Div(n)
		} else {
			allocated = totalTransportCost.Mul(itemCosts[i].Div(totalCost))
		}
		perUnit := allocated.Div(decimal.NewFromInt(int64(it.QuantityToShip)))
		entries[i] = CostDistributionEntry{
			ItemID:             it.ItemID,
			AllocatedTransport: allocated,
			TransportPerUnit:   perUnit,
			NewUnitCost:        it.CostPerUnit.Add(perUnit),
		}
	}
	return entries
}
