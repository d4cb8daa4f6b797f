package grpdelay

import "math"

// Band selects the part of the unit circle covered by a Grid.
type Band int

const (
	// HalfBand covers [0, fs/2).
	HalfBand Band = iota
	// FullBand covers [0, fs).
	FullBand
)

// Grid is a uniform frequency grid of Points samples over Band.
type Grid struct {
	Points     int
	Band       Band
	SampleRate float64
}

// Bins returns the number of bins on the full circle that the grid's
// spacing implies, twice the point count for a half band.
func (g Grid) Bins() int {
	if g.Band == FullBand {
		return g.Points
	}
	return 2 * g.Points
}

// Frequencies returns fs*k/Bins() for k < Points.
func (g Grid) Frequencies() []float64 {
	m := float64(g.Bins())
	w := make([]float64, g.Points)
	for k := range w {
		w[k] = g.SampleRate * float64(k) / m
	}
	return w
}

// Omega returns the grid as angular frequencies 2*pi*k/Bins() in
// rad/sample.
func (g Grid) Omega() []float64 {
	m := float64(g.Bins())
	w := make([]float64, g.Points)
	for k := range w {
		w[k] = 2 * math.Pi * float64(k) / m
	}
	return w
}

// normalize converts frequencies in units of fs to rad/sample.
func normalize(w []float64, fs float64) []float64 {
	out := make([]float64, len(w))
	for i, v := range w {
		out[i] = 2 * math.Pi * v / fs
	}
	return out
}
