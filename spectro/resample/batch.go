package resample

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Spectrum is a template sampled at Wave with flux densities Flux.
type Spectrum struct {
	Wave []float64
	Flux []float64
}

// Batch resamples every template onto r's grid using up to workers
// goroutines (workers <= 0 means one per template). Results are in template
// order. The first error or a cancelled ctx aborts the batch.
func Batch(ctx context.Context, r *Resampler, templates []Spectrum, workers int) ([][]float64, error) {
	if r == nil {
		return nil, ErrNilResampler
	}

	out := make([][]float64, len(templates))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, tpl := range templates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := r.Process(tpl.Wave, tpl.Flux)
			if err != nil {
				return fmt.Errorf("resample: template %d: %w", i, err)
			}
			out[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
