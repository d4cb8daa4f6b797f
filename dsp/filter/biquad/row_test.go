package biquad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRow_NormalizesByA0(t *testing.T) {
	c, err := FromRow([6]float64{2, 4, 2, 2, -1, 0.5})
	require.NoError(t, err)

	assert.Equal(t, Coefficients{B0: 1, B1: 2, B2: 1, A1: -0.5, A2: 0.25}, c)
}

func TestFromRow_ZeroA0(t *testing.T) {
	_, err := FromRow([6]float64{1, 0, 0, 0, 1, 0})
	assert.ErrorIs(t, err, ErrZeroA0)
}

func TestNumeratorDenominator(t *testing.T) {
	c := Coefficients{B0: 0.1, B1: 0.2, B2: 0.3, A1: -0.4, A2: 0.5}

	assert.Equal(t, [3]float64{0.1, 0.2, 0.3}, c.Numerator())
	assert.Equal(t, [3]float64{1, -0.4, 0.5}, c.Denominator())
}
