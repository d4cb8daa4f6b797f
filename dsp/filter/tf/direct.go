package tf

// Direct is a Direct Form II Transposed realization of an arbitrary-order
// transfer function. It generalizes the biquad section to N states:
//
//	y      = b[0]*x + d[0]
//	d[k-1] = b[k]*x - a[k]*y + d[k]
//
// with the coefficients normalized so a[0] == 1.
type Direct struct {
	b, a []float64
	d    []float64
}

// NewDirect creates a filter runtime for t. Numerator and denominator are
// zero-padded to the same length and divided by a[0].
func NewDirect(t TransferFunction) (*Direct, error) {
	norm, err := t.Normalized()
	if err != nil {
		return nil, err
	}

	n := max(len(norm.B), len(norm.A))
	f := &Direct{
		b: make([]float64, n),
		a: make([]float64, n),
		d: make([]float64, n),
	}
	copy(f.b, norm.B)
	copy(f.a, norm.A)

	return f, nil
}

// ProcessSample filters one input sample and returns the output.
func (f *Direct) ProcessSample(x float64) float64 {
	y := f.b[0]*x + f.d[0]

	last := len(f.d) - 1
	for k := 1; k <= last; k++ {
		f.d[k-1] = f.b[k]*x - f.a[k]*y + f.d[k]
	}
	// d[last] is never written, it stays zero and terminates the chain.

	return y
}

// ProcessBlock filters a block of samples in-place.
func (f *Direct) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// Reset clears the delay line to zero.
func (f *Direct) Reset() {
	for i := range f.d {
		f.d[i] = 0
	}
}

// Order returns the number of delay elements.
func (f *Direct) Order() int {
	return len(f.d) - 1
}

// Filter runs x through b(z)/a(z) from rest and returns a new slice of the
// same length. The recurrence is the one of scipy's lfilter.
func Filter(b, a, x []float64) ([]float64, error) {
	t, err := New(b, a)
	if err != nil {
		return nil, err
	}

	f, err := NewDirect(t)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(x))
	copy(out, x)
	f.ProcessBlock(out)

	return out, nil
}
