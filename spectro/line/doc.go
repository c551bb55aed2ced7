// Package line synthesises pixel-integrated Gaussian emission lines on an
// observed wavelength grid.
//
// The line width combines the kinematic velocity dispersion with the
// instrumental resolution interpolated at the line centre:
//
//	dw = center * sqrt((sigma_v/c)^2 + (1/(2.35*R))^2)
//
// The profile is then integrated exactly over each pixel with
// [gauss.PixelIntegrated], so the returned flux densities sum (times the
// pixel widths) to the line flux when the grid covers the line.
package line
