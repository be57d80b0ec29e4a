package shipping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmfarias/traslados-api/internal/domain"
	"github.com/jmfarias/traslados-api/internal/domain/shipping"
)

// Despacho parcial: 3 de 10 unidades. El remanente más lo despachado
// conserva la cantidad original.
func TestDecideSplit_Parcial(t *testing.T) {
	d, err := shipping.DecideSplit(10, 3)
	require.NoError(t, err)

	assert.Equal(t, shipping.SplitPartial, d.Kind)
	assert.Equal(t, 3, d.Shipped)
	assert.Equal(t, 7, d.Remainder)
	assert.Equal(t, 10, d.Shipped+d.Remainder, "la cantidad total se conserva")
}

// Despacho total: se linkea el renglón original, sin clon ni remanente.
func TestDecideSplit_Total(t *testing.T) {
	d, err := shipping.DecideSplit(5, 5)
	require.NoError(t, err)

	assert.Equal(t, shipping.SplitFull, d.Kind)
	assert.Equal(t, 5, d.Shipped)
	assert.Equal(t, 0, d.Remainder)
}

func TestDecideSplit_CantidadesInvalidas(t *testing.T) {
	_, err := shipping.DecideSplit(10, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = shipping.DecideSplit(10, -2)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = shipping.DecideSplit(10, 11)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "no se puede despachar más de lo comprado")
}
