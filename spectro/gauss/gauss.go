package gauss

import (
	"math"

	"github.com/cwbudde/algo-spectro/spectro/core"
)

// PixelWidths returns the width of every sample of x: (x[i+1]-x[i-1])/2 for
// interior samples, x[1]-x[0] for the first and x[n-1]-x[n-2] for the last.
func PixelWidths(x []float64) ([]float64, error) {
	if err := core.CheckMinLength(x, 2); err != nil {
		return nil, err
	}

	n := len(x)
	dx := make([]float64, n)
	for i := 1; i < n-1; i++ {
		dx[i] = (x[i+1] - x[i-1]) / 2
	}
	dx[0] = x[1] - x[0]
	dx[n-1] = x[n-1] - x[n-2]

	return dx, nil
}

// UniformWidths returns n copies of dx, for grids with one pixel width.
func UniformWidths(n int, dx float64) []float64 {
	out := make([]float64, n)
	core.Fill(out, dx)
	return out
}

// PixelIntegrated samples a Gaussian of centre mu and width sigma over the
// pixels centred on x. dx gives explicit pixel widths; pass nil to derive
// them with PixelWidths.
func PixelIntegrated(x []float64, mu, sigma, normalization float64, dx []float64) ([]float64, error) {
	out := make([]float64, len(x))
	if err := integrate(out, x, mu, func(int) float64 { return sigma }, normalization, dx); err != nil {
		return nil, err
	}
	return out, nil
}

// PixelIntegratedSigmas is PixelIntegrated with a separate width per sample.
func PixelIntegratedSigmas(x []float64, mu float64, sigmas []float64, normalization float64, dx []float64) ([]float64, error) {
	if err := core.CheckSameLength(x, sigmas); err != nil {
		return nil, err
	}
	out := make([]float64, len(x))
	if err := integrate(out, x, mu, func(i int) float64 { return sigmas[i] }, normalization, dx); err != nil {
		return nil, err
	}
	return out, nil
}

// PixelIntegratedTo writes the PixelIntegrated profile into dst, which must
// have the same length as x.
func PixelIntegratedTo(dst, x []float64, mu, sigma, normalization float64, dx []float64) error {
	if err := core.CheckSameLength(dst, x); err != nil {
		return err
	}
	return integrate(dst, x, mu, func(int) float64 { return sigma }, normalization, dx)
}

func integrate(dst, x []float64, mu float64, sigma func(int) float64, normalization float64, dx []float64) error {
	if dx == nil {
		var err error
		if dx, err = PixelWidths(x); err != nil {
			return err
		}
	} else if err := core.CheckSameLength(x, dx); err != nil {
		return err
	}

	for i := range x {
		x0 := x[i] - mu
		s2 := math.Sqrt2 * sigma(i)
		half := dx[i] / 2
		left := math.Erf((x0 - half) / s2)
		right := math.Erf((x0 + half) / s2)
		dst[i] = (right - left) / 2 / dx[i] * normalization
	}

	return nil
}
