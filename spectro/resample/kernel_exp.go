//go:build !fastmath

package resample

import "math"

// kernelExp computes e^x using standard library math.
func kernelExp(x float64) float64 {
	return math.Exp(x)
}
