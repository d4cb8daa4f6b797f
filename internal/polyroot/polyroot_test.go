package polyroot

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireRootsOf(t *testing.T, coeff []complex128, roots []complex128, tol float64) {
	t.Helper()
	require.Len(t, roots, len(coeff)-1)
	for i, r := range roots {
		assert.InDelta(t, 0, cmplx.Abs(PolyEval(coeff, r)), tol, "root %d = %v", i, r)
	}
}

func TestDurandKerner(t *testing.T) {
	tests := []struct {
		name  string
		coeff []complex128
		tol   float64
	}{
		// (z-1)(z-2)
		{"quadratic", []complex128{1, -3, 2}, 1e-10},
		// (z^2-1)(z^2-4)
		{"quartic", []complex128{1, 0, -5, 0, 4}, 1e-8},
		// z^4 + 1, roots on the unit circle at odd multiples of pi/4
		{"conjugate pairs", []complex128{1, 0, 0, 0, 1}, 1e-9},
		// (z-0.9)^2 (z-0.8)^2
		{"double roots", []complex128{1, -3.4, 4.33, -2.448, 0.5184}, 1e-6},
		// pole-like radii close to 1
		{"near unit circle", []complex128{1, -1.9, 0.9801}, 1e-10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roots, err := DurandKerner(tt.coeff)
			require.NoError(t, err)
			requireRootsOf(t, tt.coeff, roots, tt.tol)
		})
	}
}

func TestDurandKerner_Degenerate(t *testing.T) {
	_, err := DurandKerner([]complex128{1})
	assert.ErrorIs(t, err, ErrDegeneratePolynomial)

	_, err = DurandKerner([]complex128{0, 1, 2})
	assert.ErrorIs(t, err, ErrDegeneratePolynomial)
}

func TestPolyEval(t *testing.T) {
	// 2z^3 - 3z + 5 at z = 2 and z = j
	coeff := []complex128{2, 0, -3, 5}
	assert.Equal(t, complex(15, 0), PolyEval(coeff, 2))
	assert.InDelta(t, 0, cmplx.Abs(PolyEval(coeff, 1i)-complex(5, -5)), 1e-15)
}

func TestPairConjugates(t *testing.T) {
	roots := []complex128{
		complex(0.5, 0.3),
		complex(-0.2, -0.7),
		complex(0.5, -0.3),
		complex(-0.2, 0.7),
	}

	pairs, err := PairConjugates(roots)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	for _, p := range pairs {
		assert.True(t, IsConjugate(p[0], p[1], ConjugateTol), "pair %v", p)
	}

	_, err = PairConjugates([]complex128{complex(0.5, 0.3), complex(0.1, 0.2)})
	assert.ErrorIs(t, err, ErrDegeneratePolynomial)
}

func TestQuadFromRoots(t *testing.T) {
	c0, c1, c2, err := QuadFromRoots([2]complex128{complex(0.6, 0.2), complex(0.6, -0.2)})
	require.NoError(t, err)
	assert.Equal(t, 1.0, c0)
	assert.InDelta(t, -1.2, c1, 1e-15)
	assert.InDelta(t, 0.4, c2, 1e-15)

	_, _, _, err = QuadFromRoots([2]complex128{complex(0.6, 0.2), complex(0.5, -0.2)})
	assert.ErrorIs(t, err, ErrDegeneratePolynomial)
}

func TestIsConjugate(t *testing.T) {
	assert.True(t, IsConjugate(complex(1, 2), complex(1, -2), 1e-12))
	assert.True(t, IsConjugate(complex(1, 2), complex(1+1e-10, -2), 1e-9))
	assert.False(t, IsConjugate(complex(1, 2), complex(1, 2), 1e-12))
	assert.False(t, IsConjugate(complex(1, 2), complex(1.1, -2), 1e-3))
}

func TestRoots_MatchesDurandKerner(t *testing.T) {
	// 1 - 1.2 z^-1 + 0.72 z^-2 - 0.2 z^-3
	c := []float64{1, -1.2, 0.72, -0.2}

	roots, err := Roots(c)
	require.NoError(t, err)
	require.Len(t, roots, 3)

	coeff := []complex128{1, -1.2, 0.72, -0.2}
	for i, r := range roots {
		assert.InDelta(t, 0, cmplx.Abs(PolyEval(coeff, r)), 1e-10, "root %d = %v", i, r)
	}
}

func TestRoots_LeadingAndTrailingZeros(t *testing.T) {
	// 0*x^3 + x^2 - 0.25x + 0 -> roots {0.25, 0}
	roots, err := Roots([]float64{0, 1, -0.25, 0})
	require.NoError(t, err)
	require.Len(t, roots, 2)

	got := []float64{real(roots[0]), real(roots[1])}
	assert.ElementsMatch(t, []float64{0.25, 0}, roundAll(got, 1e-12))
}

func TestRoots_Constant(t *testing.T) {
	roots, err := Roots([]float64{3})
	require.NoError(t, err)
	assert.Empty(t, roots)
}

func TestRoots_AllZero(t *testing.T) {
	_, err := Roots([]float64{0, 0})
	assert.ErrorIs(t, err, ErrDegeneratePolynomial)
}

func TestFromRoots_RoundTrip(t *testing.T) {
	c := []float64{1, -0.5, 0.3, 0.1, -0.02}

	roots, err := Roots(c)
	require.NoError(t, err)

	back := FromRoots(roots)
	require.Len(t, back, len(c))

	for i := range c {
		assert.InDelta(t, c[i], back[i], 1e-10, "coefficient %d", i)
	}
}

func TestSplitRoots(t *testing.T) {
	roots := []complex128{
		complex(0.3, -0.4),
		complex(-0.9, 0),
		complex(0.3, 0.4),
		complex(0.1, 0),
	}

	pairs, reals, err := SplitRoots(roots)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Positive(t, imag(pairs[0][0]))
	assert.Equal(t, []float64{0.1, -0.9}, reals)
}

func TestSplitRoots_UnpairedComplex(t *testing.T) {
	_, _, err := SplitRoots([]complex128{complex(0.3, 0.4), complex(0.1, 0)})
	assert.ErrorIs(t, err, ErrDegeneratePolynomial)
}

func TestQuadFromRealRoots(t *testing.T) {
	c0, c1, c2 := QuadFromRealRoots(0.5, -0.25)
	assert.Equal(t, 1.0, c0)
	assert.InDelta(t, -0.25, c1, 1e-15)
	assert.InDelta(t, -0.125, c2, 1e-15)
}

func roundAll(x []float64, tol float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		if math.Abs(v) < tol {
			v = 0
		}

		out[i] = math.Round(v*1e9) / 1e9
	}

	return out
}
