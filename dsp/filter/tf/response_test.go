package tf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-grpdelay/dsp/filter/biquad"
	"github.com/cwbudde/algo-grpdelay/dsp/filter/sos"
	"github.com/cwbudde/algo-grpdelay/internal/testutil"
)

func TestImpulseResponse_TransversalEchoesCoefficients(t *testing.T) {
	r, err := ImpulseResponse([]float64{1, 2, 3}, []float64{1}, WithLength(3))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, r.Signal)
	assert.Equal(t, []float64{0, 1, 2}, r.Time)
}

func TestImpulseResponse_AutoLength(t *testing.T) {
	tests := []struct {
		name string
		b, a []float64
		want int
	}{
		{"short FIR", []float64{1, 2, 3}, nil, 3},
		{"FIR with zero feedback", []float64{1, 1}, []float64{2, 0, 0}, 2},
		{"long FIR", make([]float64, 150), []float64{1}, 100},
		{"IIR", []float64{1}, []float64{1, -0.5}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ImpulseResponse(tt.b, tt.a)
			require.NoError(t, err)
			assert.Len(t, r.Signal, tt.want)
			assert.Len(t, r.Time, tt.want)
		})
	}
}

func TestImpulseResponse_StepIsCumulativeSum(t *testing.T) {
	cases := []struct {
		b, a []float64
	}{
		{[]float64{1, 2, 3}, nil},
		{[]float64{0.2, 0.3}, []float64{1, -0.4, 0.1}},
		{[]float64{1}, []float64{1, -0.95}},
	}

	for _, c := range cases {
		imp, err := ImpulseResponse(c.b, c.a, WithLength(40))
		require.NoError(t, err)

		step, err := ImpulseResponse(c.b, c.a, WithLength(40), WithStep(true))
		require.NoError(t, err)

		want := make([]float64, len(imp.Signal))
		floats.CumSum(want, imp.Signal)
		assert.InDeltaSlice(t, want, step.Signal, 1e-12)
	}
}

func TestImpulseResponse_TimeAxis(t *testing.T) {
	r, err := ImpulseResponse([]float64{1}, []float64{1, -0.5}, WithLength(4), WithSampleRate(8))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.125, 0.25, 0.375}, r.Time)
	assert.InDeltaSlice(t, []float64{1, 0.5, 0.25, 0.125}, r.Signal, 1e-15)
}

func TestImpulseResponse_IgnoresNonPositiveSampleRate(t *testing.T) {
	r, err := ImpulseResponse([]float64{1, 1}, nil, WithSampleRate(0))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, r.Time)
}

func TestImpulseResponse_Errors(t *testing.T) {
	tests := []struct {
		name string
		b, a []float64
		want error
	}{
		{"scalar over scalar", []float64{1}, []float64{1}, ErrDegenerateFilter},
		{"scalar with default denominator", []float64{3}, nil, ErrDegenerateFilter},
		{"empty numerator", nil, []float64{1, 0.5}, ErrEmptyNumerator},
		{"zero leading denominator", []float64{1, 1}, []float64{0, 1}, ErrZeroLeadingDenominator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ImpulseResponse(tt.b, tt.a)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestImpulseResponse_MatchesFilteredImpulse(t *testing.T) {
	b, a := testutil.RandomFilter(11, 5, 0.95)

	r, err := ImpulseResponse(b, a, WithLength(64))
	require.NoError(t, err)

	y, err := Filter(b, a, testutil.Impulse(64, 0))
	require.NoError(t, err)

	d, err := testutil.MaxAbsDiff(r.Signal, y)
	require.NoError(t, err)
	assert.Zero(t, d)

	// A delayed impulse shifts the response by the same amount.
	shifted, err := Filter(b, a, testutil.Impulse(64, 3))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, shifted[:3])
	testutil.RequireSliceNearlyEqual(t, shifted[3:], r.Signal[:61], 1e-15)
}

func TestImpulseResponseSOS_MatchesTransferFunction(t *testing.T) {
	b, a := testutil.RandomFilter(5, 6, 0.9)
	sections, err := sos.FromTF(b, a)
	require.NoError(t, err)

	want, err := ImpulseResponse(b, a, WithLength(64), WithStep(true), WithSampleRate(2))
	require.NoError(t, err)

	got, err := ImpulseResponseSOS(sections, WithLength(64), WithStep(true), WithSampleRate(2))
	require.NoError(t, err)

	testutil.RequireSliceNearlyEqual(t, got.Signal, want.Signal, 1e-9)
	assert.Equal(t, want.Time, got.Time)
}

func TestImpulseResponseSOS_AutoLength(t *testing.T) {
	fir := []biquad.Coefficients{{B0: 1, B1: 1}, {B0: 1, B2: -1}}
	r, err := ImpulseResponseSOS(fir)
	require.NoError(t, err)
	// (1 + z^-1)(1 - z^-2)
	assert.InDeltaSlice(t, []float64{1, 1, -1, -1, 0}, r.Signal, 1e-15)

	iir := []biquad.Coefficients{{B0: 1, A1: -0.5}}
	r, err = ImpulseResponseSOS(iir)
	require.NoError(t, err)
	assert.Len(t, r.Signal, defaultIIRLength)
}

func TestImpulseResponseSOS_NoSections(t *testing.T) {
	_, err := ImpulseResponseSOS(nil)
	assert.ErrorIs(t, err, ErrNoSections)
}
