package sos

import (
	"fmt"

	"github.com/cwbudde/algo-grpdelay/dsp/filter/biquad"
	"github.com/cwbudde/algo-grpdelay/internal/polyroot"
)

// ZPK is the zero/pole/gain form of a digital filter
//
//	H(z) = Gain * z^-Delay * prod(1 - Zeros[i]*z^-1) / prod(1 - Poles[i]*z^-1)
//
// Delay counts the leading zero numerator coefficients, which have no
// finite root.
type ZPK struct {
	Zeros []complex128
	Poles []complex128
	Gain  float64
	Delay int
}

// TFToZPK factors b(z)/a(z) into zeros, poles and gain.
func TFToZPK(b, a []float64) (ZPK, error) {
	if len(a) == 0 {
		a = []float64{1}
	}
	if a[0] == 0 {
		return ZPK{}, ErrZeroA0
	}

	delay := 0
	for delay < len(b) && b[delay] == 0 {
		delay++
	}
	if delay == len(b) {
		return ZPK{}, fmt.Errorf("sos: numerator: %w", polyroot.ErrDegeneratePolynomial)
	}

	zeros, err := polyroot.Roots(b)
	if err != nil {
		return ZPK{}, fmt.Errorf("sos: numerator: %w", err)
	}

	poles, err := polyroot.Roots(a)
	if err != nil {
		return ZPK{}, fmt.Errorf("sos: denominator: %w", err)
	}

	return ZPK{
		Zeros: zeros,
		Poles: poles,
		Gain:  b[delay] / a[0],
		Delay: delay,
	}, nil
}

// SOSToZPK collects the zeros and poles of every section. A section with a
// zero B0 contributes to Delay instead of producing a root at infinity.
func SOSToZPK(sections []biquad.Coefficients) ZPK {
	z := ZPK{Gain: 1, Poles: biquad.NewChain(sections).Poles()}

	for i := range sections {
		s := &sections[i]

		switch {
		case s.B0 != 0:
			r := s.Zeros()
			z.Zeros = append(z.Zeros, r[0], r[1])
			z.Gain *= s.B0
		case s.B1 != 0:
			z.Zeros = append(z.Zeros, complex(-s.B2/s.B1, 0))
			z.Gain *= s.B1
			z.Delay++
		case s.B2 != 0:
			z.Gain *= s.B2
			z.Delay += 2
		default:
			z.Gain = 0
		}
	}

	return z
}
