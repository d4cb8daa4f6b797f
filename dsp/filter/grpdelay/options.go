package grpdelay

import (
	"fmt"
	"log/slog"
	"math"
)

const (
	defaultNFFT       = 512
	defaultSampleRate = 2 * math.Pi
)

// PlotFunc receives the frequency grid and the group delay once a
// computation has finished.
type PlotFunc func(w, tau []float64)

// Option configures Compute and ComputeSOS.
type Option func(*config) error

type config struct {
	nfft       int
	whole      bool
	analog     bool
	verbose    bool
	sampleRate float64
	algorithm  Algorithm
	name       string
	logger     *slog.Logger
	plot       PlotFunc
}

func defaultConfig() config {
	return config{
		nfft:       defaultNFFT,
		verbose:    true,
		sampleRate: defaultSampleRate,
		algorithm:  Scipy,
		name:       Scipy.String(),
	}
}

func newConfig(opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}

	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	return cfg, nil
}

func (c *config) grid() Grid {
	g := Grid{Points: c.nfft, Band: HalfBand, SampleRate: c.sampleRate}
	if c.whole {
		g.Band = FullBand
	}
	return g
}

// WithNFFT sets the number of grid points. Default is 512.
func WithNFFT(n int) Option {
	return func(cfg *config) error {
		if n <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidNFFT, n)
		}
		cfg.nfft = n
		return nil
	}
}

// WithWhole selects the full circle [0, fs) instead of [0, fs/2).
func WithWhole(whole bool) Option {
	return func(cfg *config) error {
		cfg.whole = whole
		return nil
	}
}

// WithAnalog treats b and a as polynomials in s. Only JOS honours it and
// its analog path is provisional.
func WithAnalog(analog bool) Option {
	return func(cfg *config) error {
		cfg.analog = analog
		return nil
	}
}

// WithVerbose enables the timing and singular-frequency log messages.
// Default is true.
func WithVerbose(verbose bool) Option {
	return func(cfg *config) error {
		cfg.verbose = verbose
		return nil
	}
}

// WithSampleRate sets fs, the unit of the returned frequencies.
// Default is 2*pi.
func WithSampleRate(fs float64) Option {
	return func(cfg *config) error {
		if !(fs > 0) || math.IsInf(fs, 0) {
			return fmt.Errorf("%w: %f", ErrInvalidSampleRate, fs)
		}
		cfg.sampleRate = fs
		return nil
	}
}

// WithAlgorithm selects the algorithm. Default is Scipy.
func WithAlgorithm(a Algorithm) Option {
	return func(cfg *config) error {
		cfg.algorithm = a
		cfg.name = a.String()
		return nil
	}
}

// WithAlgorithmName selects the algorithm by name. An unrecognized name is
// not an option error: Compute logs it and returns an all-zero delay.
func WithAlgorithmName(name string) Option {
	return func(cfg *config) error {
		a, err := ParseAlgorithm(name)
		if err != nil {
			a = Unknown
		}
		cfg.algorithm = a
		cfg.name = name
		return nil
	}
}

// WithLogger sets the logger. Default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) error {
		cfg.logger = l
		return nil
	}
}

// WithPlot registers a callback that receives the result.
func WithPlot(fn PlotFunc) Option {
	return func(cfg *config) error {
		cfg.plot = fn
		return nil
	}
}
