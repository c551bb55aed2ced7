// Package resample convolves a finely sampled model spectrum with a
// wavelength-dependent Gaussian line-spread function and samples it on an
// instrument's observed wavelength grid.
//
// For every observed pixel i the kernel width is
//
//	dw[i] = wave[i] * sqrt((sigma_v/c)^2 + (1/(2.35*R[i]))^2)
//
// and the output is the trapezoidal integral of template flux times the
// normalised Gaussian over the template samples within nsig*dw[i] of
// wave[i] (plus the first sample below the window).
//
// The window is found with two indices into the template grid that only ever
// move forward, so a full pass costs O(N+M). Both grids must therefore be
// sorted ascending. This is not re-checked on every call; enable
// [WithSortCheck] to validate once per call while debugging. Unsorted input
// without the check gives undefined results and may panic in the quadrature.
//
// Edge policy:
//   - pixels whose window starts at or before the first template sample keep
//     the fill value
//   - a window that contains no template sample takes the nearest template
//     flux to its right
//   - once the lower index is pinned on the last template sample the pass
//     stops and every remaining pixel keeps the fill value
//
// Common workflows:
//   - Template(wave, R, templWave, templFlux, opts...) for one-shot use
//   - New(wave, R, opts...) then Process/ProcessTo for many templates
//   - Batch(ctx, r, templates, workers) to fan out over templates
//
// Build with -tags fastmath to evaluate kernel weights with an approximate
// exponential.
package resample
