package line

import (
	"errors"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-spectro/spectro/core"
	"github.com/cwbudde/algo-spectro/spectro/gauss"
)

// ErrNoLines is returned by SampleLines when the line list is empty.
var ErrNoLines = errors.New("line: empty line list")

// Line is an emission line at Center (same units as the grid) with
// integrated flux Flux.
type Line struct {
	Center float64
	Flux   float64
}

// ResolutionAt linearly interpolates resolution at w. Outside the grid the
// nearest edge value is returned. wave must be non-decreasing; repeated
// wavelengths take the resolution of their last sample.
func ResolutionAt(wave, resolution []float64, w float64) (float64, error) {
	if err := core.CheckSameLength(wave, resolution); err != nil {
		return 0, err
	}
	if err := core.CheckMinLength(wave, 2); err != nil {
		return 0, err
	}

	lin, err := core.NewLinear(wave, resolution)
	if err != nil {
		return 0, err
	}
	return lin.Predict(w), nil
}

// Width returns the Gaussian sigma of a line at center observed with the
// given resolution curve and velocity dispersion (km/s).
func Width(wave, resolution []float64, center, velocitySigma float64) (float64, error) {
	rw, err := ResolutionAt(wave, resolution, center)
	if err != nil {
		return 0, err
	}
	return core.KernelSigma(center, rw, velocitySigma), nil
}

// SampleGaussian returns a pixel-integrated Gaussian emission line with
// total flux lineFlux centred on lineCenter, sampled on wave.
func SampleGaussian(wave, resolution []float64, lineCenter, lineFlux, velocitySigma float64) ([]float64, error) {
	dw, err := Width(wave, resolution, lineCenter, velocitySigma)
	if err != nil {
		return nil, err
	}
	return gauss.PixelIntegrated(wave, lineCenter, dw, lineFlux, nil)
}

// SampleLines sums SampleGaussian over lines, all sharing one velocity
// dispersion.
func SampleLines(wave, resolution []float64, lines []Line, velocitySigma float64) ([]float64, error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}

	dx, err := gauss.PixelWidths(wave)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(wave))
	tmp := make([]float64, len(wave))
	for _, l := range lines {
		dw, err := Width(wave, resolution, l.Center, velocitySigma)
		if err != nil {
			return nil, err
		}
		if err := gauss.PixelIntegratedTo(tmp, wave, l.Center, dw, l.Flux, dx); err != nil {
			return nil, err
		}
		floats.Add(out, tmp)
	}
	return out, nil
}
