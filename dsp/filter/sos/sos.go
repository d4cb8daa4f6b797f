package sos

import (
	"errors"

	"github.com/cwbudde/algo-grpdelay/dsp/conv"
	"github.com/cwbudde/algo-grpdelay/dsp/filter/biquad"
)

// Errors returned by the representation conversions.
var (
	ErrZeroA0        = biquad.ErrZeroA0
	ErrEmptySections = errors.New("sos: no sections")
)

// FromRows normalizes raw (b0, b1, b2, a0, a1, a2) rows into sections.
func FromRows(rows [][6]float64) ([]biquad.Coefficients, error) {
	if len(rows) == 0 {
		return nil, ErrEmptySections
	}

	sections := make([]biquad.Coefficients, len(rows))
	for i, row := range rows {
		c, err := biquad.FromRow(row)
		if err != nil {
			return nil, err
		}
		sections[i] = c
	}

	return sections, nil
}

// ToTF multiplies out a cascade into a single numerator and denominator.
// Both have length 2*len(sections)+1.
func ToTF(sections []biquad.Coefficients) (b, a []float64, err error) {
	if len(sections) == 0 {
		return nil, nil, ErrEmptySections
	}

	nums := make([][]float64, len(sections))
	dens := make([][]float64, len(sections))
	for i, s := range sections {
		num := s.Numerator()
		den := s.Denominator()
		nums[i] = num[:]
		dens[i] = den[:]
	}

	b, err = conv.Cascade(nums...)
	if err != nil {
		return nil, nil, err
	}

	a, err = conv.Cascade(dens...)
	if err != nil {
		return nil, nil, err
	}

	return b, a, nil
}
