package biquad

import "math/cmplx"

// ResponseAt returns H(e^jw) of the section at w in rad/sample.
func (c *Coefficients) ResponseAt(w float64) complex128 {
	z1 := cmplx.Exp(complex(0, -w))
	z2 := z1 * z1

	num := complex(c.B0, 0) + complex(c.B1, 0)*z1 + complex(c.B2, 0)*z2
	den := 1 + complex(c.A1, 0)*z1 + complex(c.A2, 0)*z2

	return num / den
}

// ResponseAt returns the cascade response at w in rad/sample, the product
// of the section responses.
func (c *Chain) ResponseAt(w float64) complex128 {
	h := complex(1, 0)
	for i := range c.sections {
		h *= c.sections[i].ResponseAt(w)
	}

	return h
}
