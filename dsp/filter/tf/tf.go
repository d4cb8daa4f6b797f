package tf

import (
	"errors"
	"math/cmplx"

	"github.com/cwbudde/algo-grpdelay/dsp/poly"
)

// Errors returned by transfer function constructors and responses.
var (
	ErrEmptyNumerator         = errors.New("tf: empty numerator")
	ErrZeroLeadingDenominator = errors.New("tf: leading denominator coefficient is zero")
	ErrDegenerateFilter       = errors.New("tf: numerator and denominator are both scalars")
	ErrNoSections             = errors.New("tf: no sections")
)

// TransferFunction is a rational transfer function b(z)/a(z).
type TransferFunction struct {
	B []float64
	A []float64
}

// New returns a TransferFunction holding copies of b and a. An empty a is
// replaced by [1].
func New(b, a []float64) (TransferFunction, error) {
	if len(b) == 0 {
		return TransferFunction{}, ErrEmptyNumerator
	}

	t := TransferFunction{
		B: append([]float64(nil), b...),
		A: []float64{1},
	}
	if len(a) > 0 {
		t.A = append([]float64(nil), a...)
	}

	return t, nil
}

// IsFIR reports whether the filter has no feedback: a has a single
// coefficient, or a non-zero a[0] followed only by zeros.
func (t TransferFunction) IsFIR() bool {
	return poly.IsTrivialDenominator(t.A)
}

// Normalized returns the transfer function scaled so that a[0] == 1.
func (t TransferFunction) Normalized() (TransferFunction, error) {
	a0 := t.A[0]
	if a0 == 0 {
		return TransferFunction{}, ErrZeroLeadingDenominator
	}

	out := TransferFunction{
		B: make([]float64, len(t.B)),
		A: make([]float64, len(t.A)),
	}
	for i, v := range t.B {
		out.B[i] = v / a0
	}
	for i, v := range t.A {
		out.A[i] = v / a0
	}

	return out, nil
}

// Order returns the larger of the numerator and denominator orders.
func (t TransferFunction) Order() int {
	return max(poly.Order(t.B), poly.Order(t.A))
}

// ResponseAt evaluates H(e^jw) at w in rad/sample. At an exact pole the
// result is the complex infinity produced by the division.
func (t TransferFunction) ResponseAt(w float64) complex128 {
	z := cmplx.Exp(complex(0, -w))
	return poly.Eval(t.B, z) / poly.Eval(t.A, z)
}
