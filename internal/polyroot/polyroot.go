// Package polyroot provides polynomial root-finding and root-pairing
// utilities shared by the filter representation conversions.
package polyroot

import (
	"errors"
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// ErrDegeneratePolynomial is returned when a polynomial has degenerate
// coefficients (all zero, convergence failure, unpaired complex roots, etc.).
var ErrDegeneratePolynomial = errors.New("polyroot: degenerate polynomial")

// ConjugateTol is the relative tolerance for conjugate pair matching.
const ConjugateTol = 1e-7

// Roots returns the roots of the polynomial
//
//	c[0]*x^n + c[1]*x^(n-1) + ... + c[n]
//
// For filter coefficients in ascending powers of z^-1 this is exactly the
// set of z-plane roots r_i with c(z) = c[0] * prod(1 - r_i*z^-1).
//
// Leading zero coefficients are dropped (they lower the degree); trailing
// zero coefficients yield roots at the origin. The roots are the eigenvalues
// of the companion matrix. If the eigen decomposition does not converge the
// Durand-Kerner iteration is used instead.
func Roots(c []float64) ([]complex128, error) {
	start := 0
	for start < len(c) && c[start] == 0 {
		start++
	}

	if start == len(c) {
		return nil, ErrDegeneratePolynomial
	}

	c = c[start:]

	end := len(c)
	for end > 1 && c[end-1] == 0 {
		end--
	}

	atOrigin := len(c) - end
	c = c[:end]

	roots := make([]complex128, 0, len(c)-1+atOrigin)

	n := len(c) - 1
	if n > 0 {
		found, err := companionRoots(c)
		if err != nil {
			return nil, err
		}

		roots = append(roots, found...)
	}

	for range atOrigin {
		roots = append(roots, 0)
	}

	return roots, nil
}

func companionRoots(c []float64) ([]complex128, error) {
	n := len(c) - 1
	lead := c[0]

	comp := mat.NewDense(n, n, nil)
	for j := range n {
		comp.Set(0, j, -c[j+1]/lead)
	}

	for i := 1; i < n; i++ {
		comp.Set(i, i-1, 1)
	}

	var eig mat.Eigen
	if eig.Factorize(comp, mat.EigenNone) {
		return eig.Values(nil), nil
	}

	coeff := make([]complex128, len(c))
	for i, v := range c {
		coeff[i] = complex(v, 0)
	}

	return DurandKerner(coeff)
}

// FromRoots expands prod(x - r_i) into monic real coefficients in
// descending powers of x. Imaginary residue from conjugate pairs is dropped.
func FromRoots(roots []complex128) []float64 {
	poly := []complex128{1}
	for _, r := range roots {
		next := make([]complex128, len(poly)+1)
		for i, p := range poly {
			next[i] += p
			next[i+1] -= p * r
		}

		poly = next
	}

	out := make([]float64, len(poly))
	for i, p := range poly {
		out[i] = real(p)
	}

	return out
}

// SplitRoots separates a root set into real roots (imaginary part within
// ConjugateTol) and conjugate pairs. Each pair is ordered with the
// positive-imaginary root first. Real roots are returned sorted by
// magnitude so neighbouring reals end up in the same section.
func SplitRoots(roots []complex128) ([][2]complex128, []float64, error) {
	var (
		reals  []float64
		paired []complex128
	)

	for _, r := range roots {
		if math.Abs(imag(r)) <= ConjugateTol*math.Max(1, math.Abs(real(r))) {
			reals = append(reals, real(r))
			continue
		}

		paired = append(paired, r)
	}

	pairs, err := PairConjugates(paired)
	if err != nil {
		return nil, nil, err
	}

	for i := range pairs {
		if imag(pairs[i][0]) < 0 {
			pairs[i][0], pairs[i][1] = pairs[i][1], pairs[i][0]
		}
	}

	sort.Slice(reals, func(i, j int) bool { return math.Abs(reals[i]) < math.Abs(reals[j]) })

	return pairs, reals, nil
}

// QuadFromRoots expands a conjugate root pair into monic second-order
// polynomial coefficients. Given roots (a+jb) and (a-jb), it returns the
// coefficients of z^2 - 2a*z + (a^2 + b^2) as (1, -2a, a^2+b^2).
func QuadFromRoots(pair [2]complex128) (float64, float64, float64, error) {
	root1 := pair[0]
	root2 := pair[1]

	if !IsConjugate(root1, root2, ConjugateTol) {
		return 0, 0, 0, ErrDegeneratePolynomial
	}

	a := real(root1)
	b := math.Abs(imag(root1))

	return 1.0, -2 * a, a*a + b*b, nil
}

// QuadFromRealRoots returns (1, -(r1+r2), r1*r2), the monic quadratic with
// real roots r1 and r2.
func QuadFromRealRoots(r1, r2 float64) (float64, float64, float64) {
	return 1, -(r1 + r2), r1 * r2
}

// PairConjugates groups a slice of complex roots into conjugate pairs. For
// each unused root, it finds the closest match to the expected conjugate and
// validates the pairing within ConjugateTol.
func PairConjugates(roots []complex128) ([][2]complex128, error) {
	used := make([]bool, len(roots))
	pairs := make([][2]complex128, 0, len(roots)/2)

	for i := range roots {
		if used[i] {
			continue
		}

		root := roots[i]
		conj := complex(real(root), -imag(root))
		best := -1
		bestDist := math.MaxFloat64

		for j := range roots {
			if i == j || used[j] {
				continue
			}

			d := cmplx.Abs(roots[j] - conj)
			if d < bestDist {
				bestDist = d
				best = j
			}
		}

		if best == -1 || !IsConjugate(root, roots[best], ConjugateTol) {
			return nil, ErrDegeneratePolynomial
		}

		used[i] = true
		used[best] = true
		pairs = append(pairs, [2]complex128{root, roots[best]})
	}

	return pairs, nil
}

// DurandKerner finds all roots of a polynomial using the Durand-Kerner
// (Weierstrass) simultaneous iteration method. Coefficients are in descending
// power order: coeff[0]*z^n + coeff[1]*z^(n-1) + ... + coeff[n].
//
//nolint:cyclop
func DurandKerner(coeff []complex128) ([]complex128, error) {
	if len(coeff) < 2 {
		return nil, ErrDegeneratePolynomial
	}

	lead := coeff[0]
	if lead == 0 {
		return nil, ErrDegeneratePolynomial
	}

	n := len(coeff) - 1

	norm := make([]complex128, len(coeff))
	for i := range coeff {
		norm[i] = coeff[i] / lead
	}

	radius := 0.0
	for i := 1; i <= n; i++ {
		if r := cmplx.Abs(norm[i]); r > radius {
			radius = r
		}
	}

	if radius < 1 {
		radius = 1
	}

	roots := make([]complex128, n)
	for i := range n {
		angle := 2*math.Pi*float64(i)/float64(n) + 0.3
		r := radius * (1 + 0.1*float64(i)/float64(n))
		roots[i] = complex(r*math.Cos(angle), r*math.Sin(angle))
	}

	const (
		maxIter = 500
		tol     = 1e-12
	)

	for range maxIter {
		maxDelta := 0.0

		for i := range n {
			den := complex(1, 0)

			for j := range n {
				if i == j {
					continue
				}

				den *= roots[i] - roots[j]
			}

			if cmplx.Abs(den) == 0 {
				roots[i] += complex(1e-10, 1e-10)
				continue
			}

			f := PolyEval(norm, roots[i])
			delta := f / den

			roots[i] -= delta
			if d := cmplx.Abs(delta); d > maxDelta {
				maxDelta = d
			}
		}

		if maxDelta < tol {
			return roots, nil
		}
	}

	maxResidual := 0.0

	for _, r := range roots {
		res := cmplx.Abs(PolyEval(norm, r))
		if res > maxResidual {
			maxResidual = res
		}
	}

	if maxResidual < 1e-6 {
		return roots, nil
	}

	return nil, ErrDegeneratePolynomial
}

// PolyEval evaluates a polynomial at x using Horner's method. Coefficients
// are in descending power order: coeff[0]*x^n + ... + coeff[n].
func PolyEval(coeff []complex128, x complex128) complex128 {
	v := coeff[0]
	for i := 1; i < len(coeff); i++ {
		v = v*x + coeff[i]
	}

	return v
}

// IsConjugate checks whether a and b are complex conjugates within tolerance.
func IsConjugate(a, b complex128, tol float64) bool {
	if math.Abs(real(a)-real(b)) > tol*math.Max(1, math.Abs(real(a))) {
		return false
	}

	if math.Abs(imag(a)+imag(b)) > tol*math.Max(1, math.Abs(imag(a))) {
		return false
	}

	return true
}
