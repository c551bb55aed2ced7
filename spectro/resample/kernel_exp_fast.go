//go:build fastmath

package resample

import "github.com/meko-christian/algo-approx"

// kernelExp computes e^x using fast approximation.
// Kernel weights are always in (0, 1], where the approximation error is
// well below the quadrature error.
func kernelExp(x float64) float64 {
	return approx.FastExp(x)
}
