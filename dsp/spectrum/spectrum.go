package spectrum

import (
	"fmt"
	"math"
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// This function uses SIMD-optimized implementations when available (AVX2, SSE2, NEON).
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Below returns the indices of bins whose magnitude is below threshold.
func Below(in []complex128, threshold float64) []int {
	var idx []int
	for i, m := range Magnitude(in) {
		if m < threshold {
			idx = append(idx, i)
		}
	}
	return idx
}

// Phase returns arg(X[k]) for each complex spectrum bin in radians.
func Phase(in []complex128) []float64 {
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// UnwrapPhase returns a new phase slice with +/-2*pi discontinuities removed.
func UnwrapPhase(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}
	out := make([]float64, len(phase))
	out[0] = phase[0]
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		switch {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}
		out[i] = phase[i] + offset
	}
	return out
}

// GroupDelayFromPhase differentiates an unwrapped phase with forward
// differences,
//
//	tau[i] = -(phase[i+1] - phase[i]) / (w[i+1] - w[i])
//
// The result has one sample fewer than the input. With w in rad/sample the
// delay is in samples.
func GroupDelayFromPhase(unwrapped, w []float64) ([]float64, error) {
	if len(unwrapped) < 2 {
		return nil, fmt.Errorf("group delay requires at least 2 phase points: %d", len(unwrapped))
	}
	if len(unwrapped) != len(w) {
		return nil, fmt.Errorf("group delay phase/frequency length mismatch: %d != %d", len(unwrapped), len(w))
	}
	out := make([]float64, len(unwrapped)-1)
	for i := range out {
		dw := w[i+1] - w[i]
		if !(dw > 0) {
			return nil, fmt.Errorf("group delay frequencies must be strictly increasing at index %d", i+1)
		}
		out[i] = -(unwrapped[i+1] - unwrapped[i]) / dw
	}
	return out, nil
}
