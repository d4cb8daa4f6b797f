// Package conv provides linear convolution of coefficient sequences.
//
// Convolving two coefficient vectors multiplies the polynomials they
// represent, which is how cascaded filter sections collapse into a single
// transfer function and how the equivalent FIR polynomial of an IIR filter
// is formed:
//
//	c := conv.MustDirect(b, poly.Reverse(a))
package conv
