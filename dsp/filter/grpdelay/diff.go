package grpdelay

import (
	"github.com/cwbudde/algo-grpdelay/dsp/filter/biquad"
	"github.com/cwbudde/algo-grpdelay/dsp/filter/tf"
	"github.com/cwbudde/algo-grpdelay/dsp/spectrum"
)

// diffDelay differentiates the unwrapped phase with forward differences.
// Response samples below 10*minMag are zeroed before taking the phase. The
// result has one sample fewer than the grid, so a single-point grid yields
// an empty delay.
//
// Sections are evaluated one at a time through a biquad.Chain.
func diffDelay(req *request) ([]float64, []int, error) {
	omega := req.grid.Omega()
	if len(omega) < 2 {
		return []float64{}, nil, nil
	}

	var h []complex128
	if req.sections != nil {
		chain := biquad.NewChain(req.sections)
		h = make([]complex128, len(omega))
		for i, w := range omega {
			h[i] = chain.ResponseAt(w)
		}
	} else {
		var err error
		h, err = tf.FreqZ(req.b, req.a, omega)
		if err != nil {
			return nil, nil, err
		}
	}

	for _, k := range spectrum.Below(h, 10*minMag) {
		h[k] = 0
	}

	phase := spectrum.UnwrapPhase(spectrum.Phase(h))

	tau, err := spectrum.GroupDelayFromPhase(phase, omega)
	if err != nil {
		return nil, nil, err
	}

	return tau, nil, nil
}
