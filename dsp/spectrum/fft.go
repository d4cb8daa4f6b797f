package spectrum

import (
	"errors"
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// ErrInvalidFFTSize is returned for non-positive transform lengths.
var ErrInvalidFFTSize = errors.New("spectrum: FFT size must be > 0")

// minPlanSize is the smallest power-of-two length handed to algo-fft.
// Shorter transforms go through gonum.
const minPlanSize = 16

// FFT returns the n-point forward DFT of x,
//
//	X[k] = sum_m x[m] * exp(-2*pi*j*k*m/n)
//
// x is zero-padded when shorter than n and truncated when longer. The input
// is not modified.
func FFT(x []complex128, n int) ([]complex128, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFFTSize, n)
	}

	in := make([]complex128, n)
	copy(in, x)

	out := make([]complex128, n)

	if n >= minPlanSize && isPowerOf2(n) {
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
		}

		if err := plan.Forward(out, in); err != nil {
			return nil, err
		}

		return out, nil
	}

	return fourier.NewCmplxFFT(n).Coefficients(out, in), nil
}

// FFTReal is FFT for a real input sequence.
func FFTReal(x []float64, n int) ([]complex128, error) {
	in := make([]complex128, len(x))
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	return FFT(in, n)
}

func isPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
