package testutil

import (
	"math"
	"math/rand"
)

// LinearGrid returns n wavelengths evenly spaced over [lo, hi].
func LinearGrid(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	return out
}

// ConstantResolution returns a resolving-power array of length n.
func ConstantResolution(r float64, n int) []float64 {
	return Constant(r, n)
}

// Constant generates a constant-valued flux array.
func Constant(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// DeterministicNoise generates uniform noise in [-amplitude, amplitude] with
// a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Spike returns a flux array that is zero except for the sample of wave
// nearest to center, which holds area/dx so the spike integrates to area.
func Spike(wave []float64, center, area float64) []float64 {
	out := make([]float64, len(wave))
	if len(wave) < 2 {
		return out
	}
	best := 0
	for i := range wave {
		if math.Abs(wave[i]-center) < math.Abs(wave[best]-center) {
			best = i
		}
	}
	lo, hi := best-1, best+1
	if lo < 0 {
		lo = 0
	}
	if hi > len(wave)-1 {
		hi = len(wave) - 1
	}
	dx := (wave[hi] - wave[lo]) / float64(hi-lo)
	out[best] = area / dx
	return out
}
