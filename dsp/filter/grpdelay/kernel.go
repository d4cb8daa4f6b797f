package grpdelay

import (
	"math"
	"math/cmplx"
)

// QuadGroupDelay returns the group delay of the quadratic
// b[0] + b[1]*z^-1 + b[2]*z^-2 at the frequencies w (units of fs).
//
// With u = b^2 and v = (b0*b1, b1*b2, b2*b0):
//
//	num = (u1 + 2*u2) + (v0 + 3*v1)*cos(W) + 2*v2*cos(2W)
//	den = (u0 + u1 + u2) + 2*(v0 + v1)*cos(W) + 2*v2*cos(2W)
//
// and the result is 2*pi/fs * num/den with W = 2*pi*w/fs. den is the
// squared magnitude of the quadratic; where a zero on the unit circle makes
// it vanish the delay is 0.
func QuadGroupDelay(b [3]float64, w []float64, fs float64) []float64 {
	return quadDelay(b, w, fs, nil)
}

// quadDelay is QuadGroupDelay that also sets mark[i] for every vanishing
// point. mark may be nil.
func quadDelay(b [3]float64, w []float64, fs float64, mark []bool) []float64 {
	u0, u1, u2 := b[0]*b[0], b[1]*b[1], b[2]*b[2]
	v0, v1, v2 := b[0]*b[1], b[1]*b[2], b[2]*b[0]
	scale := 2 * math.Pi / fs

	gd := make([]float64, len(w))
	for i, wi := range w {
		x := 2 * math.Pi * wi / fs
		c1, c2 := math.Cos(x), math.Cos(2*x)

		den := (u0 + u1 + u2) + 2*(v0+v1)*c1 + 2*v2*c2
		if math.Abs(den) < 10*minMag {
			if mark != nil {
				mark[i] = true
			}
			continue
		}

		num := (u1 + 2*u2) + (v0+3*v1)*c1 + 2*v2*c2
		gd[i] = scale * num / den
	}

	return gd
}

// RootGroupDelay returns the group delay of the factor 1 - root*z^-1,
//
//	2*pi/fs * (r^2 - r*cos(W - phi)) / (r^2 + 1 - 2*r*cos(W - phi))
//
// where root = r*e^(j*phi) and W = 2*pi*w/fs. At fs = 1 this is the
// familiar 2*pi*(...) form; at the default fs = 2*pi it is in samples.
// A root at the origin contributes nothing, and a root on the unit circle
// gives 0 at its own frequency.
func RootGroupDelay(root complex128, w []float64, fs float64) []float64 {
	return rootDelay(root, w, fs, nil)
}

func rootDelay(root complex128, w []float64, fs float64, mark []bool) []float64 {
	r, phi := cmplx.Polar(root)
	r2 := r * r
	scale := 2 * math.Pi / fs

	gd := make([]float64, len(w))
	for i, wi := range w {
		c := r * math.Cos(2*math.Pi*wi/fs-phi)

		den := r2 + 1 - 2*c
		if math.Abs(den) < 10*minMag {
			if mark != nil {
				mark[i] = true
			}
			continue
		}

		gd[i] = scale * (r2 - c) / den
	}

	return gd
}
