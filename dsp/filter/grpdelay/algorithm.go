package grpdelay

import (
	"fmt"
	"strings"
)

// Algorithm selects how the group delay is computed.
type Algorithm int

const (
	// Unknown marks an unrecognized algorithm. Compute returns an all-zero
	// delay for it.
	Unknown Algorithm = iota
	// Scipy evaluates the equivalent FIR polynomial with Horner's scheme.
	Scipy
	// JOS evaluates the equivalent FIR polynomial with the FFT.
	JOS
	// Diff differentiates the unwrapped phase response.
	Diff
	// Shpak sums closed-form delays of second-order sections.
	Shpak
)

var algorithmNames = [...]string{
	Unknown: "unknown",
	Scipy:   "scipy",
	JOS:     "jos",
	Diff:    "diff",
	Shpak:   "shpak",
}

func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm. "shpakh" is
// accepted as a spelling of "shpak".
func ParseAlgorithm(name string) (Algorithm, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "shpakh" {
		return Shpak, nil
	}

	for a, n := range algorithmNames {
		if Algorithm(a) != Unknown && n == s {
			return Algorithm(a), nil
		}
	}

	return Unknown, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// handler computes the delay on req.grid. singular lists the grid indices
// whose delay was forced to 0.
type handler func(req *request) (tau []float64, singular []int, err error)

var handlers = [...]handler{
	Scipy: scipyDelay,
	JOS:   josDelay,
	Diff:  diffDelay,
	Shpak: shpakDelay,
}

func (a Algorithm) lookup() handler {
	if a <= Unknown || int(a) >= len(handlers) {
		return nil
	}
	return handlers[a]
}
