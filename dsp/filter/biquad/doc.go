// Package biquad provides the second-order section (biquad) representation
// used for cascaded filters.
//
// [Coefficients] holds one section with a0 folded to 1; a cascade is simply
// a []Coefficients. The group delay aggregator consumes the numerator and
// denominator triplets of each section. [Chain] evaluates the cascade
// response section by section and runs it in Direct Form II Transposed to
// produce impulse responses, which keeps high-order filters out of the
// badly conditioned multiplied-out polynomial.
package biquad
