// Command grpdelay prints the group delay, the impulse response or the
// zeros and poles of a digital filter given as numerator and denominator
// coefficients or as second-order sections.
//
// Usage:
//
//	grpdelay [flags]
//
// Examples:
//
//	grpdelay -b 1,2,3
//	grpdelay -b 0.2,0.4,0.2 -a 1,-0.5,0.3 -alg jos -nfft 16
//	grpdelay -b 1 -a 1,-0.9 -fs 48000 -whole
//	grpdelay -b 1 -a 1,-0.5 -impulse -n 8
//	grpdelay -b 1,1,1 -step
//	grpdelay -sos "1,2,1,1,-0.5,0; 1,0,0,1,0.3,0.2" -alg shpak
//	grpdelay -b 1,0.5 -a 1,-1.2,0.5 -roots
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/cmplx"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-grpdelay/dsp/filter/biquad"
	"github.com/cwbudde/algo-grpdelay/dsp/filter/grpdelay"
	"github.com/cwbudde/algo-grpdelay/dsp/filter/sos"
	"github.com/cwbudde/algo-grpdelay/dsp/filter/tf"
)

var (
	errNoNumerator  = errors.New("missing -b or -sos coefficients")
	errTwoForms     = errors.New("-sos cannot be combined with -b/-a")
	errSectionWidth = errors.New("each section needs 6 coefficients b0,b1,b2,a0,a1,a2")
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	b, a     []float64
	sections []biquad.Coefficients
	roots    bool
	alg      string
	nfft     int
	whole    bool
	fs       float64
	impulse  bool
	step     bool
	n        int
	quiet    bool
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var (
		opts   options
		bStr   string
		aStr   string
		sosStr string
	)

	fs := flag.NewFlagSet("grpdelay", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&bStr, "b", "", "numerator coefficients, comma separated")
	fs.StringVar(&aStr, "a", "", "denominator coefficients, comma separated (default 1)")
	fs.StringVar(&sosStr, "sos", "", "second-order sections b0,b1,b2,a0,a1,a2 separated by ';'")
	fs.BoolVar(&opts.roots, "roots", false, "print zeros and poles instead")
	fs.StringVar(&opts.alg, "alg", "scipy", "algorithm: scipy, jos, diff or shpak")
	fs.IntVar(&opts.nfft, "nfft", 512, "number of frequency points")
	fs.BoolVar(&opts.whole, "whole", false, "evaluate the full circle [0, fs)")
	fs.Float64Var(&opts.fs, "fs", 0, "sample rate (0 means normalized, 2*pi)")
	fs.BoolVar(&opts.impulse, "impulse", false, "print the impulse response instead")
	fs.BoolVar(&opts.step, "step", false, "print the step response instead")
	fs.IntVar(&opts.n, "n", 0, "response length (0 picks one automatically)")
	fs.BoolVar(&opts.quiet, "quiet", false, "suppress log output")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: grpdelay [flags]\n\n")
		fmt.Fprintf(stderr, "Prints the group delay of b(z)/a(z) or of a section cascade, its\nimpulse/step response, or its zeros and poles.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  grpdelay -b 1,2,3\n")
		fmt.Fprintf(stderr, "  grpdelay -b 0.2,0.4,0.2 -a 1,-0.5,0.3 -alg jos -nfft 16\n")
		fmt.Fprintf(stderr, "  grpdelay -b 1 -a 1,-0.5 -impulse -n 8\n")
		fmt.Fprintf(stderr, "  grpdelay -sos \"1,2,1,1,-0.5,0; 1,0,0,1,0.3,0.2\" -alg shpak\n")
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	hasTF := strings.TrimSpace(bStr) != "" || strings.TrimSpace(aStr) != ""
	hasSOS := strings.TrimSpace(sosStr) != ""

	var err error
	switch {
	case hasTF && hasSOS:
		return options{}, errTwoForms
	case hasSOS:
		if opts.sections, err = parseSections(sosStr); err != nil {
			return options{}, fmt.Errorf("-sos: %w", err)
		}
	case strings.TrimSpace(bStr) == "":
		return options{}, errNoNumerator
	default:
		if opts.b, err = parseCoefficients(bStr); err != nil {
			return options{}, fmt.Errorf("-b: %w", err)
		}
		if opts.a, err = parseCoefficients(aStr); err != nil {
			return options{}, fmt.Errorf("-a: %w", err)
		}
	}

	return opts, nil
}

func parseSections(s string) ([]biquad.Coefficients, error) {
	var rows [][6]float64
	for _, part := range strings.Split(s, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}

		c, err := parseCoefficients(part)
		if err != nil {
			return nil, err
		}
		if len(c) != 6 {
			return nil, fmt.Errorf("%w: got %d", errSectionWidth, len(c))
		}

		rows = append(rows, [6]float64(c))
	}

	return sos.FromRows(rows)
}

func parseCoefficients(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	level := slog.LevelInfo
	if opts.quiet {
		level = slog.LevelError + 1
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	warnUnstable(logger, opts)

	switch {
	case opts.roots:
		err = printRoots(stdout, opts)
	case opts.impulse || opts.step:
		err = printResponse(stdout, opts)
	default:
		err = printGroupDelay(stdout, logger, opts)
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	return 0
}

func printGroupDelay(out io.Writer, logger *slog.Logger, opts options) error {
	gopts := []grpdelay.Option{
		grpdelay.WithAlgorithmName(opts.alg),
		grpdelay.WithNFFT(opts.nfft),
		grpdelay.WithWhole(opts.whole),
		grpdelay.WithVerbose(!opts.quiet),
		grpdelay.WithLogger(logger),
	}
	if opts.fs > 0 {
		gopts = append(gopts, grpdelay.WithSampleRate(opts.fs))
	}

	var (
		res grpdelay.Result
		err error
	)
	if opts.sections != nil {
		res, err = grpdelay.ComputeSOS(opts.sections, gopts...)
	} else {
		res, err = grpdelay.Compute(opts.b, opts.a, gopts...)
	}
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "f\ttau (%s)\n", res.Algorithm)
	// Diff yields one value fewer than the grid.
	for i, tau := range res.Tau {
		fmt.Fprintf(w, "%.6g\t%.6g\n", res.W[i], tau)
	}
	return w.Flush()
}

func printResponse(out io.Writer, opts options) error {
	ropts := []tf.ResponseOption{tf.WithStep(opts.step)}
	if opts.n > 0 {
		ropts = append(ropts, tf.WithLength(opts.n))
	}
	if opts.fs > 0 {
		ropts = append(ropts, tf.WithSampleRate(opts.fs))
	}

	var (
		r   tf.Response
		err error
	)
	if opts.sections != nil {
		r, err = tf.ImpulseResponseSOS(opts.sections, ropts...)
	} else {
		r, err = tf.ImpulseResponse(opts.b, opts.a, ropts...)
	}
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "t\th\n")
	for i, v := range r.Signal {
		fmt.Fprintf(w, "%.6g\t%.6g\n", r.Time[i], v)
	}
	return w.Flush()
}

func printRoots(out io.Writer, opts options) error {
	var z sos.ZPK
	if opts.sections != nil {
		z = sos.SOSToZPK(opts.sections)
	} else {
		var err error
		if z, err = sos.TFToZPK(opts.b, opts.a); err != nil {
			return err
		}
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "kind\tre\tim\t|r|\n")
	for _, r := range z.Zeros {
		fmt.Fprintf(w, "zero\t%.6g\t%.6g\t%.6g\n", real(r), imag(r), cmplx.Abs(r))
	}
	for _, p := range z.Poles {
		fmt.Fprintf(w, "pole\t%.6g\t%.6g\t%.6g\n", real(p), imag(p), cmplx.Abs(p))
	}
	fmt.Fprintf(w, "gain\t%.6g\t\t\n", z.Gain)
	if z.Delay > 0 {
		fmt.Fprintf(w, "delay\t%d\t\t\n", z.Delay)
	}
	return w.Flush()
}

// warnUnstable logs when a pole lies on or outside the unit circle. Transfer
// functions that cannot be factored are left to the computation to report.
func warnUnstable(logger *slog.Logger, opts options) {
	sections := opts.sections
	if sections == nil {
		if len(opts.a) < 2 {
			return
		}
		var err error
		if sections, err = sos.FromTF(opts.b, opts.a); err != nil {
			return
		}
	}

	if !biquad.NewChain(sections).IsStable() {
		logger.Warn("filter is unstable", "sections", len(sections))
	}
}
