package grpdelay

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-grpdelay/dsp/filter/biquad"
	"github.com/cwbudde/algo-grpdelay/dsp/filter/sos"
	"github.com/cwbudde/algo-grpdelay/dsp/filter/tf"
)

// SOSGroupDelay sums the group delay of a cascade: for every section the
// delay of its numerator minus the delay of its denominator. Frequencies
// where any section quadratic vanishes get 0.
func SOSGroupDelay(sections []biquad.Coefficients, w []float64, fs float64) ([]float64, error) {
	gd, _, err := sosDelay(sections, w, fs)
	return gd, err
}

func sosDelay(sections []biquad.Coefficients, w []float64, fs float64) ([]float64, []int, error) {
	if len(sections) == 0 {
		return nil, nil, ErrNoSections
	}

	mark := make([]bool, len(w))
	gd := make([]float64, len(w))
	for i := range sections {
		vecmath.AddBlockInPlace(gd, quadDelay(sections[i].Numerator(), w, fs, mark))
		sub(gd, quadDelay(sections[i].Denominator(), w, fs, mark))
	}

	return gd, clearMarked(gd, mark), nil
}

// ZPKGroupDelay sums RootGroupDelay over the zeros and subtracts it over the
// poles. The gain carries no phase and is ignored; a pure delay adds
// 2*pi/fs per sample. Frequencies on a unit-circle root get 0.
func ZPKGroupDelay(z sos.ZPK, w []float64, fs float64) []float64 {
	mark := make([]bool, len(w))
	gd := make([]float64, len(w))
	for _, r := range z.Zeros {
		vecmath.AddBlockInPlace(gd, rootDelay(r, w, fs, mark))
	}
	for _, p := range z.Poles {
		sub(gd, rootDelay(p, w, fs, mark))
	}

	if z.Delay != 0 {
		d := float64(z.Delay) * 2 * math.Pi / fs
		for i := range gd {
			gd[i] += d
		}
	}

	clearMarked(gd, mark)

	return gd
}

// GroupDelayZ returns the group delay of b(z)/a(z) at w. A filter with a
// scalar denominator is evaluated directly from its ramped polynomial,
// anything else is factored into second-order sections first. Frequencies
// where the response vanishes get 0.
func GroupDelayZ(b, a, w []float64, fs float64) ([]float64, error) {
	gd, _, err := groupDelayZ(b, a, w, fs)
	return gd, err
}

func groupDelayZ(b, a, w []float64, fs float64) ([]float64, []int, error) {
	t, err := tf.New(b, a)
	if err != nil {
		return nil, nil, err
	}

	if len(t.A) > 1 {
		sections, err := sos.FromTF(t.B, t.A)
		if err != nil {
			return nil, nil, err
		}
		return sosDelay(sections, w, fs)
	}

	gd, singular := rampedDelay(t.B, normalize(w, fs), 10*minMag, 0)
	vecmath.ScaleBlock(gd, gd, 2*math.Pi/fs)

	return gd, singular, nil
}

func sub(dst, src []float64) {
	for i, v := range src {
		dst[i] -= v
	}
}

// clearMarked zeroes gd at the marked points and returns their indices.
func clearMarked(gd []float64, mark []bool) []int {
	var idx []int
	for i, m := range mark {
		if m {
			gd[i] = 0
			idx = append(idx, i)
		}
	}
	return idx
}
