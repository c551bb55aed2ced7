package igm

import (
	"math"

	"github.com/cwbudde/algo-spectro/spectro/core"
)

const (
	// Redshift regime boundaries of the Lyman-alpha forest and DLA fits.
	z1LAF = 1.2
	z2LAF = 4.7
	z1DLA = 2.0

	// lymanLimit is the rest-frame Lyman limit in Angstrom.
	lymanLimit = 911.8

	// maxRest is the rest wavelength redward of which nothing absorbs.
	maxRest = 1300.0
)

// Transition describes one Lyman-series line of the model.
type Transition struct {
	Upper int     // upper level, 2 for Lyman-alpha
	Rest  float64 // rest-frame wavelength in Angstrom
}

// Transitions returns the Lyman-series lines of the model, Lyman-alpha first.
func Transitions() []Transition {
	out := make([]Transition, len(inoue14))
	for i, s := range inoue14 {
		out[i] = Transition{Upper: s.upper, Rest: s.rest}
	}
	return out
}

// Transmission returns exp(-scaleTau*tau) for source redshift z at each
// observed-frame wavelength in wave (Angstrom).
func Transmission(z float64, wave []float64, scaleTau float64) []float64 {
	out := make([]float64, len(wave))
	transmission(out, z, wave, scaleTau)
	return out
}

// TransmissionTo writes Transmission into dst, which must match wave in length.
func TransmissionTo(dst []float64, z float64, wave []float64, scaleTau float64) error {
	if err := core.CheckSameLength(dst, wave); err != nil {
		return err
	}
	transmission(dst, z, wave, scaleTau)
	return nil
}

// OpticalDepth returns the total IGM optical depth tau at each wavelength.
func OpticalDepth(z float64, wave []float64) []float64 {
	out := make([]float64, len(wave))
	for i, w := range wave {
		out[i] = tau(z, w)
	}
	return out
}

func transmission(dst []float64, z float64, wave []float64, scaleTau float64) {
	for i, w := range wave {
		dst[i] = math.Exp(-scaleTau * tau(z, w))
	}
}

func tau(z, w float64) float64 {
	zp1 := 1 + z
	if w > maxRest*zp1 {
		return 0
	}

	t := 0.0
	for j := range inoue14 {
		t += seriesLAF(&inoue14[j], w, zp1)
		t += seriesDLA(&inoue14[j], w, zp1)
	}
	t += continuumDLA(w, z)
	t += continuumLAF(w, z)
	return t
}

func seriesLAF(s *lymanSeries, w, zp1 float64) float64 {
	if w >= s.rest*zp1 {
		return 0
	}
	x := w / s.rest
	switch {
	case w < s.rest*(1+z1LAF):
		return s.laf1 * math.Pow(x, 1.2)
	case w < s.rest*(1+z2LAF):
		return s.laf2 * math.Pow(x, 3.7)
	default:
		return s.laf3 * math.Pow(x, 5.5)
	}
}

func seriesDLA(s *lymanSeries, w, zp1 float64) float64 {
	if w >= s.rest*zp1 {
		return 0
	}
	x := w / s.rest
	if w < s.rest*(1+z1DLA) {
		return s.dla1 * math.Pow(x, 2)
	}
	return s.dla2 * math.Pow(x, 3)
}

func continuumDLA(w, z float64) float64 {
	zp1 := 1 + z
	if w >= lymanLimit*zp1 {
		return 0
	}
	x := w / lymanLimit

	if z < z1DLA {
		return 0.2113*math.Pow(zp1, 2) -
			0.07661*math.Pow(zp1, 2.3)*math.Pow(x, -0.3) -
			0.1347*math.Pow(x, 2)
	}
	if w >= lymanLimit*(1+z1DLA) {
		return 0.04696*math.Pow(zp1, 3) -
			0.01779*math.Pow(zp1, 3.3)*math.Pow(x, -0.3) -
			0.02916*math.Pow(x, 3)
	}
	return 0.6340 +
		0.04696*math.Pow(zp1, 3) -
		0.01779*math.Pow(zp1, 3.3)*math.Pow(x, -0.3) -
		0.1347*math.Pow(x, 2) -
		0.2905*math.Pow(x, -0.3)
}

func continuumLAF(w, z float64) float64 {
	zp1 := 1 + z
	if w >= lymanLimit*zp1 {
		return 0
	}
	x := w / lymanLimit

	switch {
	case z < z1LAF:
		return 0.3248 * (math.Pow(x, 1.2) - math.Pow(zp1, -0.9)*math.Pow(x, 2.1))
	case z < z2LAF:
		if w >= lymanLimit*(1+z1LAF) {
			return 2.545e-2 * (math.Pow(zp1, 1.6)*math.Pow(x, 2.1) - math.Pow(x, 3.7))
		}
		return 2.545e-2*math.Pow(zp1, 1.6)*math.Pow(x, 2.1) +
			0.3248*math.Pow(x, 1.2) -
			0.2496*math.Pow(x, 2.1)
	}

	// z >= z2LAF. A wavelength exactly on lymanLimit*(1+z2LAF) matches no
	// branch and contributes nothing.
	switch {
	case w > lymanLimit*(1+z2LAF):
		return 5.221e-4 * (math.Pow(zp1, 3.4)*math.Pow(x, 2.1) - math.Pow(x, 5.5))
	case w >= lymanLimit*(1+z1LAF) && w < lymanLimit*(1+z2LAF):
		return 5.221e-4*math.Pow(zp1, 3.4)*math.Pow(x, 2.1) +
			0.2182*math.Pow(x, 2.1) -
			2.545e-2*math.Pow(x, 3.7)
	case w < lymanLimit*(1+z1LAF):
		return 5.221e-4*math.Pow(zp1, 3.4)*math.Pow(x, 2.1) +
			0.3248*math.Pow(x, 1.2) -
			3.140e-2*math.Pow(x, 2.1)
	}
	return 0
}
