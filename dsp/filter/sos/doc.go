// Package sos converts between the three representations of a rational
// filter: transfer function coefficients (b, a), cascaded second-order
// sections ([]biquad.Coefficients) and zeros/poles/gain ([ZPK]).
//
// Factoring goes through polynomial roots. Conjugate root pairs become one
// real quadratic each, real roots are paired by magnitude, and the overall
// gain is folded into the first section.
package sos
