// Package tf provides the rational transfer function representation
//
//	H(z) = (b[0] + b[1]*z^-1 + ... + b[M]*z^-M) / (a[0] + a[1]*z^-1 + ... + a[N]*z^-N)
//
// together with its direct-form runtime ([Direct], [Filter]), frequency
// response evaluation ([FreqZ]) and the impulse and step responses
// ([ImpulseResponse], and [ImpulseResponseSOS] for second-order section
// cascades).
//
// Coefficient vectors are real and hold ascending powers of z^-1. A nil or
// empty denominator means a = [1], so a scalar is always a single-element
// vector.
package tf
