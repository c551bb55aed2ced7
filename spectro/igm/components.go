package igm

// Components holds the optical depth of each absorption process at one
// wavelength. Their sum equals OpticalDepth up to floating-point rounding.
type Components struct {
	SeriesLAF    float64
	SeriesDLA    float64
	ContinuumDLA float64
	ContinuumLAF float64
}

// Total returns the summed optical depth.
func (c Components) Total() float64 {
	return c.SeriesLAF + c.SeriesDLA + c.ContinuumDLA + c.ContinuumLAF
}

// Decompose returns the optical depth of each process at every wavelength.
func Decompose(z float64, wave []float64) []Components {
	out := make([]Components, len(wave))
	zp1 := 1 + z
	for i, w := range wave {
		if w > maxRest*zp1 {
			continue
		}
		c := &out[i]
		for j := range inoue14 {
			c.SeriesLAF += seriesLAF(&inoue14[j], w, zp1)
			c.SeriesDLA += seriesDLA(&inoue14[j], w, zp1)
		}
		c.ContinuumDLA = continuumDLA(w, z)
		c.ContinuumLAF = continuumLAF(w, z)
	}
	return out
}
