package core

import "gonum.org/v1/gonum/interp"

// Linear is a clamped piecewise-linear interpolant over a non-decreasing
// grid. Repeated knots are collapsed onto the last sample of each run, so a
// query on or right of a tie sees the same value np.interp would.
type Linear struct {
	pl     interp.PiecewiseLinear
	lo, hi float64
	single bool
	y0     float64
}

// NewLinear fits x, y. x must be non-decreasing and hold at least one
// sample.
func NewLinear(x, y []float64) (*Linear, error) {
	if err := CheckSameLength(x, y); err != nil {
		return nil, err
	}
	if err := CheckMinLength(x, 1); err != nil {
		return nil, err
	}
	xs, ys, err := CollapseTies(x, y)
	if err != nil {
		return nil, err
	}

	l := &Linear{lo: xs[0], hi: xs[len(xs)-1]}
	if len(xs) == 1 {
		l.single = true
		l.y0 = ys[0]
		return l, nil
	}
	// Fit panics rather than erroring on non-increasing knots.
	if err := CheckStrictlyIncreasing(xs); err != nil {
		return nil, err
	}
	if err := l.pl.Fit(xs, ys); err != nil {
		return nil, err
	}
	return l, nil
}

// Predict returns the interpolated value at v, clamped to the edge values
// outside the grid.
func (l *Linear) Predict(v float64) float64 {
	if l.single {
		return l.y0
	}
	return l.pl.Predict(v)
}

// Covers reports whether v lies within the knot range.
func (l *Linear) Covers(v float64) bool {
	return v >= l.lo && v <= l.hi
}

// CollapseTies returns x and y with runs of equal x merged into one knot
// carrying the last y of the run. It returns ErrUnsorted if x decreases
// anywhere. The inputs are not modified.
func CollapseTies(x, y []float64) (xs, ys []float64, err error) {
	if err := CheckSameLength(x, y); err != nil {
		return nil, nil, err
	}
	xs = make([]float64, 0, len(x))
	ys = make([]float64, 0, len(y))
	for i, v := range x {
		n := len(xs)
		switch {
		case n == 0 || v > xs[n-1]:
			xs = append(xs, v)
			ys = append(ys, y[i])
		case v == xs[n-1]:
			ys[n-1] = y[i]
		default:
			return nil, nil, ErrUnsorted
		}
	}
	return xs, ys, nil
}
