package core

import "math"

const (
	// SpeedOfLight is the speed of light in km/s as used by the kernel width
	// calculation.
	SpeedOfLight = 3.0e5

	// FWHMToSigma converts a resolving power quoted as FWHM into the
	// equivalent Gaussian sigma denominator.
	FWHMToSigma = 2.35
)

// KernelSigma returns the Gaussian sigma, in wavelength units, of a line at
// wave broadened by velocitySigma (km/s) and by an instrument with resolving
// power resolution (lambda/dlambda, FWHM). The two terms add in quadrature.
func KernelSigma(wave, resolution, velocitySigma float64) float64 {
	v := velocitySigma / SpeedOfLight
	r := 1 / FWHMToSigma / resolution
	return math.Sqrt(v*v+r*r) * wave
}

// KernelSigmas fills dst with KernelSigma for every pixel of wave.
// dst, wave and resolution must have the same length.
func KernelSigmas(dst, wave, resolution []float64, velocitySigma float64) error {
	if err := CheckSameLength(wave, resolution); err != nil {
		return err
	}
	if err := CheckSameLength(dst, wave); err != nil {
		return err
	}
	for i := range wave {
		dst[i] = KernelSigma(wave[i], resolution[i], velocitySigma)
	}
	return nil
}
