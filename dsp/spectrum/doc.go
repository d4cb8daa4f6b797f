// Package spectrum provides the frequency-domain primitives the group delay
// algorithms are built on: a zero-padded or truncated FFT, bin magnitude and
// phase, phase unwrapping, and phase differentiation.
//
// Power-of-two transforms of 16 points or more run on algo-fft plans; other
// lengths fall back to gonum's mixed-radix transform.
package spectrum
