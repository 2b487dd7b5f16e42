package builder

import "math/rand"

// Constructor fills in the N×N matrix it is given. n is the matrix's
// dimension (len(matrix)); cfg is the resolved builder configuration.
// A Constructor must not assume zero-initialized rows beyond what Build
// already provides.
type Constructor func(matrix [][]int64, n int, cfg config) error

// Option customizes a Build call by mutating the resolved config before
// the Constructor runs.
type Option func(cfg *config)

// config holds resolved, immutable-for-the-call builder settings.
type config struct {
	rng       *rand.Rand
	maxWeight int64
}

const defaultMaxWeight = 1000

func newConfig(opts ...Option) config {
	cfg := config{maxWeight: defaultMaxWeight}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeed seeds a deterministic *rand.Rand for the call.
func WithSeed(seed int64) Option {
	return func(cfg *config) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies an explicit RNG. A nil rng is a no-op, leaving whatever
// the config already had (including "none").
func WithRand(rng *rand.Rand) Option {
	return func(cfg *config) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithMaxWeight sets the inclusive upper bound used by constructors that
// sample random edge weights. Non-positive values are ignored.
func WithMaxWeight(max int64) Option {
	return func(cfg *config) {
		if max > 0 {
			cfg.maxWeight = max
		}
	}
}

// Build allocates an n×n zero matrix, resolves opts over the defaults, and
// runs ctor to fill it in.
func Build(n int, ctor Constructor, opts ...Option) ([][]int64, error) {
	cfg := newConfig(opts...)
	matrix := make([][]int64, n)
	for i := range matrix {
		matrix[i] = make([]int64, n)
	}
	if err := ctor(matrix, n, cfg); err != nil {
		return nil, err
	}
	return matrix, nil
}
