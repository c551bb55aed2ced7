// Command igminfo prints intergalactic-medium transmission tables.
//
// Usage:
//
//	igminfo [flags]
//
// The table lists observed wavelength, optical depth and transmission of the
// Inoue+2014 IGM model for a source at the given redshift.
//
// Examples:
//
//	igminfo --z 3
//	igminfo --z 4.2341 --min 4000 --max 6500 --step 50
//	igminfo --z 6 --components
//	igminfo --transitions
package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-spectro/spectro/igm"
	"github.com/spf13/pflag"
)

// maxRows bounds the table length.
const maxRows = 1 << 20

type options struct {
	z           float64
	min         float64
	max         float64
	step        float64
	scale       float64
	components  bool
	transitions bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var o options
	fs := pflag.NewFlagSet("igminfo", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Float64Var(&o.z, "z", 3, "source redshift")
	fs.Float64Var(&o.min, "min", 3000, "first observed wavelength [Angstrom]")
	fs.Float64Var(&o.max, "max", 6000, "last observed wavelength [Angstrom]")
	fs.Float64Var(&o.step, "step", 100, "wavelength step [Angstrom]")
	fs.Float64Var(&o.scale, "scale", 1, "optical depth scale factor")
	fs.BoolVar(&o.components, "components", false, "print the four optical depth contributions")
	fs.BoolVar(&o.transitions, "transitions", false, "list the Lyman series transitions and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: igminfo [flags]\n\n")
		fmt.Fprintf(stderr, "Prints Inoue+2014 IGM transmission for a source redshift.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  igminfo --z 3\n")
		fmt.Fprintf(stderr, "  igminfo --z 4.2341 --min 4000 --max 6500 --step 50\n")
		fmt.Fprintf(stderr, "  igminfo --z 6 --components\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if o.transitions {
		if err := printTransitions(stdout); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	wave, err := grid(o.min, o.max, o.step)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	if o.components {
		err = printComponents(stdout, o.z, wave)
	} else {
		err = printTransmission(stdout, o.z, wave, o.scale)
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func grid(lo, hi, step float64) ([]float64, error) {
	switch {
	case math.IsNaN(lo) || math.IsNaN(hi) || math.IsNaN(step):
		return nil, errors.New("wavelength range contains NaN")
	case step <= 0:
		return nil, fmt.Errorf("step must be positive, got %g", step)
	case hi < lo:
		return nil, fmt.Errorf("max (%g) below min (%g)", hi, lo)
	}
	steps := math.Floor((hi-lo)/step + 1e-9)
	if !(steps < maxRows) {
		return nil, fmt.Errorf("range %g..%g with step %g exceeds %d rows", lo, hi, step, maxRows)
	}
	n := int(steps) + 1
	wave := make([]float64, n)
	for i := range wave {
		wave[i] = lo + float64(i)*step
	}
	return wave, nil
}

func printTransmission(w io.Writer, z float64, wave []float64, scale float64) error {
	tau := igm.OpticalDepth(z, wave)
	trans := igm.Transmission(z, wave, scale)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Wave [A]\tRest [A]\tTau\tTransmission\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "--------\t--------\t---\t------------\n"); err != nil {
		return err
	}
	for i, wl := range wave {
		if _, err := fmt.Fprintf(tw, "%.2f\t%.2f\t%.5g\t%.6f\n",
			wl, wl/(1+z), tau[i]*scale, trans[i]); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func printComponents(w io.Writer, z float64, wave []float64) error {
	comps := igm.Decompose(z, wave)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Wave [A]\tLS LAF\tLS DLA\tLC DLA\tLC LAF\tTotal\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "--------\t------\t------\t------\t------\t-----\n"); err != nil {
		return err
	}
	for i, c := range comps {
		if _, err := fmt.Fprintf(tw, "%.2f\t%.5g\t%.5g\t%.5g\t%.5g\t%.5g\n",
			wave[i], c.SeriesLAF, c.SeriesDLA, c.ContinuumDLA, c.ContinuumLAF, c.Total()); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func printTransitions(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Upper\tRest [A]\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "-----\t--------\n"); err != nil {
		return err
	}
	for _, t := range igm.Transitions() {
		if _, err := fmt.Fprintf(tw, "%d\t%.2f\n", t.Upper, t.Rest); err != nil {
			return err
		}
	}
	return tw.Flush()
}
