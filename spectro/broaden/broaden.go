package broaden

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectro/internal/fftconv"
	"github.com/cwbudde/algo-spectro/spectro/core"
)

var (
	// ErrInvalidGrid indicates non-positive or empty grid bounds or step.
	ErrInvalidGrid = errors.New("broaden: invalid grid parameters")
	// ErrNotLogUniform indicates a grid without constant d(ln lambda).
	ErrNotLogUniform = errors.New("broaden: grid is not log-uniform")
)

// logUniformTolerance is the allowed relative spread of d(ln lambda).
const logUniformTolerance = 1e-6

// LogGrid returns wavelengths from lo up to at most hi with a constant
// velocity spacing of velocityStep km/s.
func LogGrid(lo, hi, velocityStep float64) ([]float64, error) {
	if !(lo > 0) || !(hi > lo) || !(velocityStep > 0) {
		return nil, fmt.Errorf("%w: lo=%v hi=%v step=%v", ErrInvalidGrid, lo, hi, velocityStep)
	}

	dln := velocityStep / core.SpeedOfLight
	n := int(math.Floor(math.Log(hi/lo)/dln)) + 1
	if n < 2 {
		return nil, fmt.Errorf("%w: step %v km/s wider than range", ErrInvalidGrid, velocityStep)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = lo * math.Exp(dln*float64(i))
	}
	return out, nil
}

// VelocityStep returns the pixel size of a log-uniform grid in km/s.
func VelocityStep(grid []float64) (float64, error) {
	if err := core.CheckMinLength(grid, 2); err != nil {
		return 0, err
	}

	dln := math.Log(grid[len(grid)-1]/grid[0]) / float64(len(grid)-1)
	if !(dln > 0) {
		return 0, ErrNotLogUniform
	}
	for i := 1; i < len(grid); i++ {
		d := math.Log(grid[i] / grid[i-1])
		if math.Abs(d-dln) > logUniformTolerance*dln {
			return 0, fmt.Errorf("%w: step %d is %v, mean %v", ErrNotLogUniform, i, d, dln)
		}
	}
	return dln * core.SpeedOfLight, nil
}

// Rebin linearly interpolates (wave, flux) onto grid. Grid points outside
// [wave[0], wave[len-1]] receive zero flux. wave must be non-decreasing;
// repeated wavelengths take the flux of their last sample.
func Rebin(wave, flux, grid []float64) ([]float64, error) {
	if err := core.CheckSameLength(wave, flux); err != nil {
		return nil, err
	}
	if err := core.CheckMinLength(wave, 2); err != nil {
		return nil, err
	}

	lin, err := core.NewLinear(wave, flux)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(grid))
	for i, g := range grid {
		if lin.Covers(g) {
			out[i] = lin.Predict(g)
		}
	}
	return out, nil
}

// Kernel returns a unit-sum Gaussian of sigmaPix pixels truncated at
// nsig sigmas. sigmaPix <= 0 yields the identity kernel.
func Kernel(sigmaPix, nsig float64) []float64 {
	if !(sigmaPix > 0) {
		return []float64{1}
	}

	half := int(math.Ceil(nsig * sigmaPix))
	k := make([]float64, 2*half+1)
	sum := 0.0
	for i := range k {
		x := float64(i-half) / sigmaPix
		k[i] = math.Exp(-x * x / 2)
		sum += k[i]
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

// Velocity convolves flux, sampled on the log-uniform grid wave, with a
// Gaussian of sigmaKms km/s truncated at nsig sigmas.
func Velocity(wave, flux []float64, sigmaKms, nsig float64) ([]float64, error) {
	if err := core.CheckSameLength(wave, flux); err != nil {
		return nil, err
	}
	step, err := VelocityStep(wave)
	if err != nil {
		return nil, err
	}
	if !(nsig > 0) {
		nsig = 5
	}

	kernel := Kernel(sigmaKms/step, nsig)
	if len(kernel) == 1 {
		return append([]float64(nil), flux...), nil
	}

	oa, err := fftconv.NewOverlapAdd(kernel, 0)
	if err != nil {
		return nil, err
	}
	return oa.Same(flux)
}
