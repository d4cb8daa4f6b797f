package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-grpdelay/dsp/conv"
)

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// RandomFilter returns a real filter b(z)/a(z) of the given order whose
// zeros and poles lie strictly inside radius. Roots come in conjugate
// pairs, with one real root for odd orders. The same seed always yields
// the same filter.
func RandomFilter(seed int64, order int, radius float64) (b, a []float64) {
	rng := rand.New(rand.NewSource(seed))

	factors := func() [][]float64 {
		out := make([][]float64, 0, order/2+1)
		for range order / 2 {
			r := radius * math.Sqrt(0.05+0.9*rng.Float64())
			theta := 0.1 + (math.Pi-0.2)*rng.Float64()
			out = append(out, []float64{1, -2 * r * math.Cos(theta), r * r})
		}
		if order%2 == 1 {
			out = append(out, []float64{1, -radius * (1.8*rng.Float64() - 0.9)})
		}
		return out
	}

	b, err := conv.Cascade(factors()...)
	if err != nil {
		panic(err)
	}

	a, err = conv.Cascade(factors()...)
	if err != nil {
		panic(err)
	}

	gain := 0.5 + rng.Float64()
	for i := range b {
		b[i] *= gain
	}

	return b, a
}
