package biquad

import "errors"

// ErrZeroA0 is returned when a raw section row has a zero leading
// denominator coefficient and cannot be normalized.
var ErrZeroA0 = errors.New("biquad: a0 must be non-zero")

// Coefficients holds the transfer function coefficients for a single
// second-order section (biquad). a0 is normalized to 1 and not stored.
//
// The sign convention follows Direct Form II Transposed:
//
//	y  = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// FromRow normalizes a raw (b0, b1, b2, a0, a1, a2) section row by a0.
func FromRow(row [6]float64) (Coefficients, error) {
	a0 := row[3]
	if a0 == 0 {
		return Coefficients{}, ErrZeroA0
	}

	return Coefficients{
		B0: row[0] / a0,
		B1: row[1] / a0,
		B2: row[2] / a0,
		A1: row[4] / a0,
		A2: row[5] / a0,
	}, nil
}

// Numerator returns (B0, B1, B2).
func (c Coefficients) Numerator() [3]float64 {
	return [3]float64{c.B0, c.B1, c.B2}
}

// Denominator returns (1, A1, A2).
func (c Coefficients) Denominator() [3]float64 {
	return [3]float64{1, c.A1, c.A2}
}

// Section is one biquad with its Direct Form II Transposed delay line. The
// zero value is a silent section; Chain builds its sections in place.
type Section struct {
	Coefficients

	d0, d1 float64
}

// ProcessSample runs one sample through the section.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.d0
	s.d0 = s.B1*x - s.A1*y + s.d1
	s.d1 = s.B2*x - s.A2*y

	return y
}

// Reset zeroes the delay line.
func (s *Section) Reset() {
	s.d0, s.d1 = 0, 0
}

// State returns the delay line (d0, d1).
func (s *Section) State() [2]float64 {
	return [2]float64{s.d0, s.d1}
}

// SetState overwrites the delay line.
func (s *Section) SetState(state [2]float64) {
	s.d0, s.d1 = state[0], state[1]
}
