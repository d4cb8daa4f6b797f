package tf

// FreqZ evaluates H(e^jw) of b(z)/a(z) at each angular frequency in w
// (rad/sample). An empty a means a = [1].
func FreqZ(b, a, w []float64) ([]complex128, error) {
	t, err := New(b, a)
	if err != nil {
		return nil, err
	}

	h := make([]complex128, len(w))
	for i, wi := range w {
		h[i] = t.ResponseAt(wi)
	}

	return h, nil
}
