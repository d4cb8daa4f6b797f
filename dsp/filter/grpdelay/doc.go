// Package grpdelay computes the group delay of digital filters,
//
//	tau(w) = -d arg H(e^jw) / dw
//
// [Compute] and [ComputeSOS] evaluate it on a uniform [Grid] with one of
// four algorithms:
//
//   - [Scipy] evaluates the equivalent FIR polynomial c = b * reverse(a) and
//     its ramp k*c[k] with Horner's scheme at every grid point.
//   - [JOS] evaluates the same polynomials with one FFT each (J. O. Smith).
//   - [Diff] differentiates the unwrapped phase of H numerically. The result
//     has one sample fewer than the grid.
//   - [Shpak] factors the filter into second-order sections and sums the
//     closed-form delay of every numerator and denominator quadratic.
//
// Frequencies that make the denominator response vanish are singular. Their
// delay is set to 0 and, when verbose, they are logged as a warning.
//
// The lower-level functions [QuadGroupDelay], [RootGroupDelay],
// [SOSGroupDelay], [ZPKGroupDelay] and [GroupDelayZ] take the frequency
// points explicitly, in the units of fs, and return 2*pi/fs times the delay
// in samples. With the default fs = 2*pi that is samples.
package grpdelay
