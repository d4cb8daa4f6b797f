package sos

import (
	"github.com/cwbudde/algo-grpdelay/dsp/filter/biquad"
	"github.com/cwbudde/algo-grpdelay/internal/polyroot"
)

// FromTF factors b(z)/a(z) into cascaded second-order sections.
//
// Each conjugate root pair becomes one quadratic, real roots are paired in
// order of magnitude and a leftover real root gives a first-order factor.
// Numerator and denominator factors are matched by index and the shorter
// list is padded with unit sections. The gain is folded into the first
// numerator. A pure delay becomes (0, 0, 1) or (0, 1, 0) numerators.
func FromTF(b, a []float64) ([]biquad.Coefficients, error) {
	z, err := TFToZPK(b, a)
	if err != nil {
		return nil, err
	}

	return FromZPK(z)
}

// FromZPK builds cascaded sections from a zero/pole/gain description.
func FromZPK(z ZPK) ([]biquad.Coefficients, error) {
	nums, err := quadratics(z.Zeros)
	if err != nil {
		return nil, err
	}

	dens, err := quadratics(z.Poles)
	if err != nil {
		return nil, err
	}

	for d := z.Delay; d > 0; d -= 2 {
		if d >= 2 {
			nums = append(nums, [3]float64{0, 0, 1})
		} else {
			nums = append(nums, [3]float64{0, 1, 0})
		}
	}

	n := max(len(nums), len(dens), 1)
	sections := make([]biquad.Coefficients, n)
	for i := range sections {
		num := [3]float64{1, 0, 0}
		if i < len(nums) {
			num = nums[i]
		}

		den := [3]float64{1, 0, 0}
		if i < len(dens) {
			den = dens[i]
		}

		sections[i] = biquad.Coefficients{
			B0: num[0], B1: num[1], B2: num[2],
			A1: den[1], A2: den[2],
		}
	}

	s := &sections[0]
	s.B0 *= z.Gain
	s.B1 *= z.Gain
	s.B2 *= z.Gain

	return sections, nil
}

// quadratics groups roots into monic quadratics (1, c1, c2) in z^-1.
func quadratics(roots []complex128) ([][3]float64, error) {
	pairs, reals, err := polyroot.SplitRoots(roots)
	if err != nil {
		return nil, err
	}

	out := make([][3]float64, 0, len(pairs)+(len(reals)+1)/2)
	for _, p := range pairs {
		c0, c1, c2, err := polyroot.QuadFromRoots(p)
		if err != nil {
			return nil, err
		}
		out = append(out, [3]float64{c0, c1, c2})
	}

	for i := 0; i+1 < len(reals); i += 2 {
		c0, c1, c2 := polyroot.QuadFromRealRoots(reals[i], reals[i+1])
		out = append(out, [3]float64{c0, c1, c2})
	}

	if len(reals)%2 == 1 {
		out = append(out, [3]float64{1, -reals[len(reals)-1], 0})
	}

	return out, nil
}
