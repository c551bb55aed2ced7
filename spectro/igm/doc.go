// Package igm computes intergalactic-medium transmission with the analytic
// model of Inoue et al. (2014, MNRAS 442, 1805).
//
// The optical depth at an observed wavelength is the sum of four parts:
//   - Lyman-series absorption by the Lyman-alpha forest (LAF)
//   - Lyman-series absorption by damped Lyman-alpha systems (DLA)
//   - Lyman-continuum absorption by DLA
//   - Lyman-continuum absorption by the LAF
//
// Each part is a fixed piecewise power law in (1+z) and wavelength, with
// coefficients compiled into the package. Wavelengths above 1300*(1+z)
// Angstrom are never absorbed.
//
// [Transmission] returns exp(-scale*tau) per wavelength. The series terms
// are accumulated transition by transition, LAF before DLA, followed by the
// continuum DLA and continuum LAF terms, so results are reproducible to the
// last bit across implementations that keep this order.
package igm
