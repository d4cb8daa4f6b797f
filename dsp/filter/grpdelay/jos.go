package grpdelay

import (
	"github.com/cwbudde/algo-grpdelay/dsp/conv"
	"github.com/cwbudde/algo-grpdelay/dsp/poly"
	"github.com/cwbudde/algo-grpdelay/dsp/spectrum"
)

// josDelay is the scipy algorithm with both polynomials evaluated by one
// FFT over the full circle. Only the first Points bins are kept.
//
// The analog variant uses num = a'*b - b'*a and den = a*b with ' the
// derivative in s. It is evaluated on the same FFT grid and is not a
// validated continuous-time group delay.
func josDelay(req *request) ([]float64, []int, error) {
	b, a := req.b, req.a

	var (
		numPoly, denPoly []float64
		order            float64
	)

	if req.cfg.analog {
		ab := conv.MustDirect(a, b)
		brA := conv.MustDirect(poly.Derivative(b), a)
		arB := conv.MustDirect(poly.Derivative(a), b)
		numPoly = poly.Sub(arB, brA)
		denPoly = ab
	} else {
		c, err := conv.Direct(b, poly.Reverse(a))
		if err != nil {
			return nil, nil, err
		}
		numPoly = poly.Ramp(c)
		denPoly = c
		order = float64(len(a) - 1)
	}

	m := req.grid.Bins()

	num, err := spectrum.FFTReal(wrap(numPoly, m), m)
	if err != nil {
		return nil, nil, err
	}

	den, err := spectrum.FFTReal(wrap(denPoly, m), m)
	if err != nil {
		return nil, nil, err
	}

	poles := spectrum.Below(den, minMag)
	for _, k := range poles {
		num[k] = 0
		den[k] = 1
	}

	n := req.grid.Points
	tau := make([]float64, n)
	for k := range tau {
		tau[k] = real(num[k]/den[k]) - order
	}

	var (
		singular []int
		freqs    []float64
	)
	fs := req.grid.SampleRate
	for _, k := range poles {
		if k >= n {
			break
		}
		tau[k] = 0
		singular = append(singular, k)
		freqs = append(freqs, fs*float64(k)/float64(m))
	}
	reportSingular(req.cfg, freqs)

	return tau, singular, nil
}

// wrap folds c onto m points by adding c[k] into index k mod m. The m-point
// DFT of the result samples the polynomial exactly, where truncation would
// not.
func wrap(c []float64, m int) []float64 {
	if len(c) <= m {
		return c
	}

	out := make([]float64, m)
	for k, v := range c {
		out[k%m] += v
	}

	return out
}
