package biquad

// Chain runs a cascade of sections in series. The overall gain of a cascade
// is carried by the section numerators.
type Chain struct {
	sections []Section
}

// NewChain returns a cascade of the given sections with zero state.
func NewChain(coeffs []Coefficients) *Chain {
	c := &Chain{sections: make([]Section, len(coeffs))}
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
	}

	return c
}

// ProcessSample feeds x through every section in order.
func (c *Chain) ProcessSample(x float64) float64 {
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}

	return x
}

// Reset zeroes every delay line.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// State returns a copy of every section's delay line.
func (c *Chain) State() [][2]float64 {
	out := make([][2]float64, len(c.sections))
	for i := range c.sections {
		out[i] = c.sections[i].State()
	}

	return out
}

// SetState restores delay lines returned by State. It panics if states is
// shorter than the cascade.
func (c *Chain) SetState(states [][2]float64) {
	for i := range c.sections {
		c.sections[i].SetState(states[i])
	}
}

// ImpulseResponse returns the first n samples of the cascade's impulse
// response, or nil for n <= 0. The delay lines are left as they were.
func (c *Chain) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	saved := c.State()
	defer c.SetState(saved)
	c.Reset()

	ir := make([]float64, n)
	ir[0] = c.ProcessSample(1)
	for i := 1; i < n; i++ {
		ir[i] = c.ProcessSample(0)
	}

	return ir
}
