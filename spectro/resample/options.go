package resample

const (
	defaultVelocitySigma = 100.0
	defaultNSigma        = 5.0
)

type config struct {
	velocitySigma float64
	nsig          float64
	fill          float64
	checkSorted   bool
}

// Option configures the resampler.
type Option func(*config)

// WithVelocitySigma sets the kinematic velocity dispersion in km/s.
// Negative values are ignored.
func WithVelocitySigma(v float64) Option {
	return func(cfg *config) {
		if v >= 0 {
			cfg.velocitySigma = v
		}
	}
}

// WithNSigma sets the half-width of the integration window in kernel sigmas.
func WithNSigma(n float64) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.nsig = n
		}
	}
}

// WithFillValue sets the value left in pixels without template coverage.
// NaN is allowed.
func WithFillValue(v float64) Option {
	return func(cfg *config) {
		cfg.fill = v
	}
}

// WithSortCheck enables an O(N+M) check that both grids are ascending.
func WithSortCheck(enabled bool) Option {
	return func(cfg *config) {
		cfg.checkSorted = enabled
	}
}

func defaultConfig() config {
	return config{
		velocitySigma: defaultVelocitySigma,
		nsig:          defaultNSigma,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
