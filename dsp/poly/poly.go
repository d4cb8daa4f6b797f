// Package poly provides the coefficient-vector manipulations used by the
// group delay algorithms.
//
// A coefficient vector c holds a polynomial in ascending powers of its
// variable, c[0] + c[1]*x + ... + c[n]*x^n. For digital filters the variable
// is z^-1, for analog filters it is s.
package poly

import (
	"gonum.org/v1/gonum/floats"
)

// Reverse returns a reversed copy of c. For a real polynomial of order N in
// z^-1 this is z^-N * c(1/z), the flip-conjugate used to build the
// equivalent FIR polynomial of an IIR filter.
func Reverse(c []float64) []float64 {
	out := make([]float64, len(c))
	copy(out, c)
	floats.Reverse(out)
	return out
}

// Ramp returns c[k]*k, the "ramped" polynomial. On the unit circle,
// d/dw c(e^-jw) = -j * Ramp(c)(e^-jw).
func Ramp(c []float64) []float64 {
	switch len(c) {
	case 0:
		return nil
	case 1:
		return []float64{0}
	}

	out := make([]float64, len(c))
	floats.Span(out, 0, float64(len(c)-1))
	floats.Mul(out, c)
	return out
}

// Derivative returns (k+1)*c[k+1], the coefficients of dc/dx. A constant
// polynomial yields [0].
func Derivative(c []float64) []float64 {
	if len(c) < 2 {
		return []float64{0}
	}

	out := make([]float64, len(c)-1)
	for k := range out {
		out[k] = float64(k+1) * c[k+1]
	}

	return out
}

// Sub returns a - b, zero-padding the shorter operand.
func Sub(a, b []float64) []float64 {
	n := max(len(a), len(b))
	out := make([]float64, n)
	copy(out, a)
	for i, v := range b {
		out[i] -= v
	}

	return out
}

// Eval evaluates sum_k c[k] * x^k with Horner's scheme.
func Eval(c []float64, x complex128) complex128 {
	var v complex128
	for k := len(c) - 1; k >= 0; k-- {
		v = v*x + complex(c[k], 0)
	}

	return v
}

// Order returns len(c)-1, the nominal polynomial order. An empty vector has
// order 0.
func Order(c []float64) int {
	if len(c) == 0 {
		return 0
	}

	return len(c) - 1
}

// IsTrivialDenominator reports whether a describes no feedback: a single
// coefficient, or a non-zero a[0] followed only by zeros.
func IsTrivialDenominator(a []float64) bool {
	if len(a) <= 1 {
		return true
	}

	if a[0] == 0 {
		return false
	}

	for _, v := range a[1:] {
		if v != 0 {
			return false
		}
	}

	return true
}
