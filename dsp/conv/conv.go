package conv

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput  = errors.New("conv: empty input")
	ErrEmptyKernel = errors.New("conv: empty kernel")
)

// simdThreshold is the kernel length from which the vecmath kernels are used.
const simdThreshold = 4

// Direct performs direct time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
//
// This is an O(N*M) algorithm, which is the right choice for filter
// coefficient vectors.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(a)+len(b)-1)

	DirectTo(result, a, b)
	return result, nil
}

// MustDirect is like Direct but panics on empty input. It is meant for
// call sites that have already validated their coefficient vectors.
func MustDirect(a, b []float64) []float64 {
	out, err := Direct(a, b)
	if err != nil {
		panic(err)
	}

	return out
}

// DirectTo performs direct convolution, writing to a pre-allocated destination.
// dst must have length len(a) + len(b) - 1.
func DirectTo(dst, a, b []float64) {
	n := len(a)
	m := len(b)

	for i := range dst {
		dst[i] = 0
	}

	if m >= simdThreshold {
		directToSIMD(dst, a, b, n, m)
	} else {
		directToScalar(dst, a, b, n, m)
	}
}

// directToScalar performs scalar convolution for small kernels.
func directToScalar(dst, a, b []float64, n, m int) {
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			dst[i+j] += a[i] * b[j]
		}
	}
}

// directToSIMD performs SIMD-accelerated convolution for larger kernels.
// Uses vecmath operations to vectorize the inner loop.
func directToSIMD(dst, a, b []float64, n, m int) {
	temp := make([]float64, m)

	for i := 0; i < n; i++ {
		// temp = b * a[i]
		vecmath.ScaleBlock(temp, b, a[i])

		// dst[i:i+m] += temp
		vecmath.AddBlockInPlace(dst[i:i+m], temp)
	}
}

// Cascade convolves all given sequences together, i.e. multiplies the
// polynomials they represent. With no input it returns the unit sequence [1].
func Cascade(seqs ...[]float64) ([]float64, error) {
	out := []float64{1}
	for _, s := range seqs {
		next, err := Direct(out, s)
		if err != nil {
			return nil, err
		}

		out = next
	}

	return out, nil
}
