// Package broaden applies constant-velocity Gaussian broadening to spectra
// sampled on log-uniform wavelength grids.
//
// On a grid with constant d(ln lambda) a fixed velocity dispersion is a
// fixed number of pixels, so broadening becomes an ordinary convolution
// that is evaluated with FFT overlap-add. Typical use:
//
//	grid, _ := broaden.LogGrid(3000, 30000, 10)      // 10 km/s pixels
//	flux, _ := broaden.Rebin(templWave, templFlux, grid)
//	smooth, _ := broaden.Velocity(grid, flux, 150, 5) // sigma = 150 km/s
//
// The convolution treats flux beyond the grid ends as zero, so the first
// and last nsig*sigma of the output are attenuated.
package broaden
