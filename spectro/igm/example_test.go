package igm_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectro/spectro/igm"
)

func ExampleTransmission() {
	const z = 4.2341

	wave := []float64{4000, 6000, 6400, 8000}
	tr := igm.Transmission(z, wave, 1.0)

	for i, w := range wave {
		fmt.Printf("%.0f A: absorbed=%t\n", w, tr[i] < 1)
	}

	// Output:
	// 4000 A: absorbed=true
	// 6000 A: absorbed=true
	// 6400 A: absorbed=false
	// 8000 A: absorbed=false
}

func ExampleDecompose() {
	c := igm.Decompose(3, []float64{4500})[0]

	fmt.Printf("series LAF > 0: %t\n", c.SeriesLAF > 0)
	fmt.Printf("continuum: %.1f %.1f\n", c.ContinuumDLA, c.ContinuumLAF)

	// Output:
	// series LAF > 0: true
	// continuum: 0.0 0.0
}
