package resample

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/integrate"

	"github.com/cwbudde/algo-spectro/spectro/core"
)

// ErrNilResampler is returned by Batch when no resampler is given.
var ErrNilResampler = errors.New("resample: nil resampler")

// Resampler holds an observed wavelength grid and its per-pixel kernel
// widths. It does not mutate after New and is safe for concurrent use.
type Resampler struct {
	wave []float64
	dw   []float64
	cfg  config
}

// New creates a resampler for the observed grid wave with resolving power
// resolution (lambda/dlambda, FWHM) at every pixel.
func New(wave, resolution []float64, opts ...Option) (*Resampler, error) {
	if err := core.CheckSameLength(wave, resolution); err != nil {
		return nil, err
	}

	cfg := applyOptions(opts)
	if cfg.checkSorted {
		if err := core.CheckSorted(wave); err != nil {
			return nil, fmt.Errorf("observed grid: %w", err)
		}
	}

	r := &Resampler{
		wave: append([]float64(nil), wave...),
		dw:   make([]float64, len(wave)),
		cfg:  cfg,
	}
	if err := core.KernelSigmas(r.dw, r.wave, resolution, cfg.velocitySigma); err != nil {
		return nil, err
	}

	return r, nil
}

// Len returns the number of observed pixels.
func (r *Resampler) Len() int {
	return len(r.wave)
}

// KernelWidths returns a copy of the per-pixel Gaussian sigmas.
func (r *Resampler) KernelWidths() []float64 {
	return append([]float64(nil), r.dw...)
}

// VelocitySigma returns the configured velocity dispersion in km/s.
func (r *Resampler) VelocitySigma() float64 {
	return r.cfg.velocitySigma
}

// NSigma returns the window half-width in kernel sigmas.
func (r *Resampler) NSigma() float64 {
	return r.cfg.nsig
}

// FillValue returns the value used for pixels without coverage.
func (r *Resampler) FillValue() float64 {
	return r.cfg.fill
}

// Process resamples the template (templWave, templFlux) onto the observed
// grid. Returns a new slice of length Len().
func (r *Resampler) Process(templWave, templFlux []float64) ([]float64, error) {
	out := make([]float64, len(r.wave))
	if err := r.ProcessTo(out, templWave, templFlux); err != nil {
		return nil, err
	}
	return out, nil
}

// ProcessTo resamples the template into dst, which must have length Len().
func (r *Resampler) ProcessTo(dst, templWave, templFlux []float64) error {
	if len(dst) != len(r.wave) {
		return fmt.Errorf("%w: dst %d, grid %d", core.ErrLengthMismatch, len(dst), len(r.wave))
	}
	if err := core.CheckSameLength(templWave, templFlux); err != nil {
		return err
	}
	if err := core.CheckMinLength(templWave, 2); err != nil {
		return err
	}
	if r.cfg.checkSorted {
		if err := core.CheckSorted(templWave); err != nil {
			return fmt.Errorf("template grid: %w", err)
		}
	}

	core.Fill(dst, r.cfg.fill)

	nt := len(templWave)
	var buf []float64

	ilo, ihi := 0, 1
	for i, w := range r.wave {
		half := r.cfg.nsig * r.dw[i]

		lo := w - half
		for templWave[ilo] < lo && ilo < nt-1 {
			ilo++
		}

		// No template sample below the window.
		if ilo == 0 {
			continue
		}

		exhausted := ilo == nt-1
		ilo--

		hi := w + half
		for ihi < nt && templWave[ihi] < hi {
			ihi++
		}

		if ilo >= ihi {
			dst[i] = templFlux[ihi]
			continue
		}

		// TODO: this abandons every remaining pixel rather than only the
		// current one; review whether a per-pixel skip is intended.
		if exhausted {
			break
		}

		buf = core.EnsureLen(buf, ihi-ilo)
		dst[i] = windowIntegral(buf, templWave[ilo:ihi], templFlux[ilo:ihi], w, r.dw[i])
	}

	return nil
}

// windowIntegral integrates flux times a normalised Gaussian centred on w
// with width dw over the template samples lw. buf is scratch of len(lw).
func windowIntegral(buf, lw, flux []float64, w, dw float64) float64 {
	if len(lw) < 2 {
		return 0
	}

	v := dw * dw
	norm := 1 / math.Sqrt(2*math.Pi*v)
	for k, x := range lw {
		d := x - w
		buf[k] = kernelExp(-d*d/2/v) * norm
	}
	vecmath.MulBlockInPlace(buf, flux)

	return integrate.Trapezoidal(lw, buf)
}

// Template is a one-shot helper for New followed by Process.
func Template(wave, resolution, templWave, templFlux []float64, opts ...Option) ([]float64, error) {
	r, err := New(wave, resolution, opts...)
	if err != nil {
		return nil, err
	}
	return r.Process(templWave, templFlux)
}
