package tf

import (
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-grpdelay/dsp/filter/biquad"
)

const (
	defaultIIRLength = 100
	maxFIRLength     = 100
)

// Response holds a sampled impulse or step response and its time axis.
type Response struct {
	Signal []float64
	Time   []float64 // Time[i] = i / sample rate
}

// ResponseOption configures ImpulseResponse.
type ResponseOption func(*responseConfig)

type responseConfig struct {
	sampleRate float64
	length     int
	step       bool
}

func defaultResponseConfig() responseConfig {
	return responseConfig{sampleRate: 1}
}

// WithSampleRate sets the sample rate used for the time axis. Values <= 0
// are ignored. Default is 1.
func WithSampleRate(fs float64) ResponseOption {
	return func(cfg *responseConfig) {
		if fs > 0 {
			cfg.sampleRate = fs
		}
	}
}

// WithLength sets the number of output samples. Zero or negative selects
// the automatic length: 100 for IIR filters, min(len(b), 100) for FIR.
func WithLength(n int) ResponseOption {
	return func(cfg *responseConfig) { cfg.length = n }
}

// WithStep requests the step response, the running sum of the impulse
// response.
func WithStep(step bool) ResponseOption {
	return func(cfg *responseConfig) { cfg.step = step }
}

// ImpulseResponse computes the impulse response of b(z)/a(z) by running a
// unit impulse through the direct-form recursion.
//
// A filter whose numerator and denominator are both single coefficients is
// rejected with ErrDegenerateFilter.
func ImpulseResponse(b, a []float64, opts ...ResponseOption) (Response, error) {
	cfg := newResponseConfig(opts)

	t, err := New(b, a)
	if err != nil {
		return Response{}, err
	}

	if len(t.A) == 1 && len(t.B) == 1 {
		return Response{}, ErrDegenerateFilter
	}

	f, err := NewDirect(t)
	if err != nil {
		return Response{}, err
	}

	n := cfg.length
	if n <= 0 {
		n = defaultIIRLength
		if t.IsFIR() {
			n = min(len(t.B), maxFIRLength)
		}
	}

	sig := make([]float64, n)
	sig[0] = 1
	f.ProcessBlock(sig)

	return cfg.response(sig), nil
}

// ImpulseResponseSOS computes the impulse response of a cascade of
// second-order sections, running the sections one after another instead of
// the multiplied-out recursion. The automatic length is
// 100 samples, or the cascade order + 1 (at most 100) when every section
// is FIR.
func ImpulseResponseSOS(sections []biquad.Coefficients, opts ...ResponseOption) (Response, error) {
	if len(sections) == 0 {
		return Response{}, ErrNoSections
	}

	cfg := newResponseConfig(opts)

	n := cfg.length
	if n <= 0 {
		n = defaultIIRLength
		if sectionsFIR(sections) {
			n = min(2*len(sections)+1, maxFIRLength)
		}
	}

	return cfg.response(biquad.NewChain(sections).ImpulseResponse(n)), nil
}

func sectionsFIR(sections []biquad.Coefficients) bool {
	for i := range sections {
		if sections[i].A1 != 0 || sections[i].A2 != 0 {
			return false
		}
	}
	return true
}

func newResponseConfig(opts []ResponseOption) responseConfig {
	cfg := defaultResponseConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// response turns an impulse response into the configured Response.
func (cfg *responseConfig) response(sig []float64) Response {
	if cfg.step {
		floats.CumSum(sig, sig)
	}

	tm := make([]float64, len(sig))
	for i := range tm {
		tm[i] = float64(i) / cfg.sampleRate
	}

	return Response{Signal: sig, Time: tm}
}
