package grpdelay

import (
	"errors"
	"fmt"
	"time"

	"github.com/cwbudde/algo-grpdelay/dsp/filter/biquad"
	"github.com/cwbudde/algo-grpdelay/dsp/filter/sos"
	"github.com/cwbudde/algo-grpdelay/dsp/filter/tf"
)

// Errors returned by the group delay functions.
var (
	ErrNoSections        = errors.New("grpdelay: cannot compute group delay with no sections")
	ErrInvalidNFFT       = errors.New("grpdelay: nfft must be > 0")
	ErrInvalidSampleRate = errors.New("grpdelay: sample rate must be > 0 and finite")
	ErrUnknownAlgorithm  = errors.New("grpdelay: unknown algorithm")
)

// minMag is the denominator magnitude below which an FFT bin is singular.
// Polynomial evaluation uses 10*minMag.
const minMag = 10 * 2.220446049250313e-16

// Result is a computed group delay.
type Result struct {
	// W holds the grid frequencies in units of the sample rate.
	W []float64
	// Tau holds the delay. It has len(W) samples, or len(W)-1 for Diff.
	// Scipy, JOS and Diff report samples, Shpak reports 2*pi/fs times
	// samples.
	Tau []float64
	// Singular lists the indices into Tau that were forced to 0.
	Singular []int
	// Algorithm is the algorithm that ran, Unknown if none did.
	Algorithm Algorithm
}

type request struct {
	b, a     []float64
	sections []biquad.Coefficients
	grid     Grid
	cfg      *config
}

// Compute returns the group delay of b(z)/a(z) on the configured grid. An
// empty a means a = [1].
func Compute(b, a []float64, opts ...Option) (Result, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return Result{}, err
	}

	t, err := tf.New(b, a)
	if err != nil {
		return Result{}, err
	}

	return run(&request{b: t.B, a: t.A, grid: cfg.grid(), cfg: &cfg})
}

// ComputeSOS returns the group delay of a cascade of second-order sections.
// Shpak and Diff work on the sections directly, Scipy and JOS on the
// multiplied-out transfer function.
func ComputeSOS(sections []biquad.Coefficients, opts ...Option) (Result, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return Result{}, err
	}

	if len(sections) == 0 {
		return Result{}, ErrNoSections
	}

	req := &request{sections: sections, grid: cfg.grid(), cfg: &cfg}
	if cfg.algorithm == Scipy || cfg.algorithm == JOS {
		req.b, req.a, err = sos.ToTF(sections)
		if err != nil {
			return Result{}, err
		}
	}

	return run(req)
}

func run(req *request) (Result, error) {
	cfg := req.cfg
	start := time.Now()
	w := req.grid.Frequencies()

	h := cfg.algorithm.lookup()
	if h == nil {
		cfg.logger.Error("unknown group delay algorithm", "algorithm", cfg.name)

		res := Result{W: w, Tau: make([]float64, len(w)), Algorithm: Unknown}
		if cfg.plot != nil {
			cfg.plot(res.W, res.Tau)
		}
		return res, nil
	}

	tau, singular, err := h(req)
	if err != nil {
		return Result{}, fmt.Errorf("grpdelay: %s: %w", cfg.algorithm, err)
	}

	if cfg.verbose {
		cfg.logger.Info("group delay computed",
			"algorithm", cfg.algorithm.String(),
			"elapsed", time.Since(start))
	}

	res := Result{W: w, Tau: tau, Singular: singular, Algorithm: cfg.algorithm}
	if cfg.plot != nil {
		cfg.plot(res.W, res.Tau)
	}

	return res, nil
}

func shpakDelay(req *request) ([]float64, []int, error) {
	w := req.grid.Frequencies()
	fs := req.grid.SampleRate

	var (
		gd       []float64
		singular []int
		err      error
	)
	if req.sections != nil {
		gd, singular, err = sosDelay(req.sections, w, fs)
	} else {
		gd, singular, err = groupDelayZ(req.b, req.a, w, fs)
	}
	if err != nil {
		return nil, nil, err
	}

	if len(singular) > 0 {
		f := make([]float64, len(singular))
		for i, k := range singular {
			f[i] = w[k] / fs
		}
		reportSingular(req.cfg, f)
	}

	return gd, singular, nil
}
