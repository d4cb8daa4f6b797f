package grpdelay

import (
	"math"
	"math/cmplx"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-grpdelay/dsp/conv"
	"github.com/cwbudde/algo-grpdelay/dsp/poly"
	"github.com/cwbudde/algo-grpdelay/dsp/spectrum"
)

// scipyDelay evaluates the equivalent FIR polynomial c = b * reverse(a)
// point by point. c has the phase of b/a shifted by len(a)-1 samples.
func scipyDelay(req *request) ([]float64, []int, error) {
	c, err := conv.Direct(req.b, poly.Reverse(req.a))
	if err != nil {
		return nil, nil, err
	}

	omega := req.grid.Omega()
	tau, singular := rampedDelay(c, omega, 10*minMag, float64(len(req.a)-1))

	if len(singular) > 0 {
		f := make([]float64, len(singular))
		for i, k := range singular {
			f[i] = omega[k] / (2 * math.Pi)
		}
		reportSingular(req.cfg, f)
	}

	return tau, singular, nil
}

// rampedDelay returns Re{cr(z)/c(z)} - offset at z = exp(-j*omega), where
// cr is the ramped polynomial k*c[k]. Points with |c(z)| < threshold are
// singular and get 0.
func rampedDelay(c, omega []float64, threshold, offset float64) ([]float64, []int) {
	cr := poly.Ramp(c)

	num := make([]complex128, len(omega))
	den := make([]complex128, len(omega))
	for i, w := range omega {
		z := cmplx.Exp(complex(0, -w))
		num[i] = poly.Eval(cr, z)
		den[i] = poly.Eval(c, z)
	}

	singular := spectrum.Below(den, threshold)

	tau := make([]float64, len(omega))
	for i := range tau {
		tau[i] = real(num[i]/den[i]) - offset
	}
	for _, i := range singular {
		tau[i] = 0
	}

	return tau, singular
}

func reportSingular(cfg *config, freqs []float64) {
	if !cfg.verbose || len(freqs) == 0 {
		return
	}

	parts := make([]string, len(freqs))
	for i, f := range freqs {
		parts[i] = strconv.FormatFloat(f, 'f', 3, 64)
	}

	cfg.logger.Warn("group delay singular, setting to 0",
		"algorithm", cfg.algorithm.String(),
		"frequencies", strings.Join(parts, ", "))
}
