package core

import (
	"errors"
	"fmt"
	"sort"
)

// Errors shared by the spectral kernels. They describe caller contract
// violations; degenerate numeric situations never produce an error.
var (
	ErrLengthMismatch = errors.New("spectro: array length mismatch")
	ErrTooShort       = errors.New("spectro: grid too short")
	ErrUnsorted       = errors.New("spectro: wavelength grid not sorted ascending")
)

// CheckSameLength returns ErrLengthMismatch if a and b differ in length.
func CheckSameLength(a, b []float64) error {
	if len(a) != len(b) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
	return nil
}

// CheckMinLength returns ErrTooShort if x has fewer than n samples.
func CheckMinLength(x []float64, n int) error {
	if len(x) < n {
		return fmt.Errorf("%w: need at least %d samples, got %d", ErrTooShort, n, len(x))
	}
	return nil
}

// CheckSorted returns ErrUnsorted if x is not non-decreasing.
// The kernels never call this implicitly; it is an O(N) debug pass.
func CheckSorted(x []float64) error {
	if !sort.Float64sAreSorted(x) {
		return ErrUnsorted
	}
	return nil
}

// CheckStrictlyIncreasing returns ErrUnsorted unless every sample of x is
// greater than the one before it.
func CheckStrictlyIncreasing(x []float64) error {
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return fmt.Errorf("%w: x[%d]=%v after %v", ErrUnsorted, i, x[i], x[i-1])
		}
	}
	return nil
}
