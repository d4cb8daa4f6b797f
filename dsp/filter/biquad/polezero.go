package biquad

import (
	"math"
	"math/cmplx"
)

// Poles returns the z-plane roots of 1 + A1*z^-1 + A2*z^-2. A first-order
// section (A2 == 0) reports its second pole at the origin.
func (c *Coefficients) Poles() [2]complex128 {
	return quadraticRoots(1, c.A1, c.A2)
}

// Zeros returns the z-plane roots of B0 + B1*z^-1 + B2*z^-2. B0 must be
// non-zero for both zeros to be finite; with B0 == 0 the single finite
// zero is reported first.
func (c *Coefficients) Zeros() [2]complex128 {
	return quadraticRoots(c.B0, c.B1, c.B2)
}

// IsStable reports whether both poles lie strictly inside the unit circle.
func (c *Coefficients) IsStable() bool {
	// Stability triangle of the monic quadratic.
	return math.Abs(c.A2) < 1 && math.Abs(c.A1) < 1+c.A2
}

// Poles returns the poles of every section in order.
func (c *Chain) Poles() []complex128 {
	out := make([]complex128, 0, 2*len(c.sections))
	for i := range c.sections {
		p := c.sections[i].Coefficients.Poles()
		out = append(out, p[0], p[1])
	}
	return out
}

// IsStable reports whether every section is stable.
func (c *Chain) IsStable() bool {
	for i := range c.sections {
		if !c.sections[i].Coefficients.IsStable() {
			return false
		}
	}
	return true
}

// quadraticRoots solves a*x^2 + b*x + c = 0. Real roots use the
// q = -(b + sign(b)*sqrt(disc))/2 form so neither root loses precision to
// cancellation. Complex pairs come back positive-imaginary first.
func quadraticRoots(a, b, c float64) [2]complex128 {
	if a == 0 {
		if b == 0 {
			return [2]complex128{}
		}
		return [2]complex128{complex(-c/b, 0), 0}
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		re := -b / (2 * a)
		im := math.Sqrt(-disc) / (2 * math.Abs(a))
		return [2]complex128{complex(re, im), complex(re, -im)}
	}

	q := -(b + math.Copysign(math.Sqrt(disc), b)) / 2
	if q == 0 {
		return [2]complex128{}
	}

	r := [2]complex128{complex(q/a, 0), complex(c/q, 0)}
	if cmplx.Abs(r[0]) < cmplx.Abs(r[1]) {
		r[0], r[1] = r[1], r[0]
	}
	return r
}
