// Package gauss evaluates Gaussian profiles integrated exactly over the
// width of each sample.
//
// A point-sampled Gaussian misrepresents lines whose width is comparable to
// the pixel size. [PixelIntegrated] instead returns, for every sample centre
// x[i], the mean of the normalised Gaussian over the interval
// [x[i]-dx[i]/2, x[i]+dx[i]/2], computed in closed form with the error
// function and scaled by a normalisation:
//
//	out[i] = (erf((x0+dx/2)/(sqrt2*sigma)) - erf((x0-dx/2)/(sqrt2*sigma))) / 2 / dx * norm
//
// where x0 = x[i] - mu. Multiplying out[i] by dx[i] and summing therefore
// recovers norm when the grid covers the profile.
//
// When dx is nil the widths come from [PixelWidths]: centred differences for
// interior samples and one-sided differences at both ends. A single width
// shared by every pixel is passed as [UniformWidths](len(x), dx).
//
// Preconditions, not checked: x sorted ascending, every dx[i] > 0 and every
// sigma > 0. Violations produce NaN or Inf rather than an error.
package gauss
