package builder

import "fmt"

// RandomSparseFlows returns a Constructor that samples an Erdős–Rényi-style
// random commuting matrix over n nodes: each ordered pair (i,j) (including
// i==j, i.e. self-loops/local flow) independently gets a nonzero flow with
// probability density, in ascending (i,j) trial order for determinism given
// a fixed RNG. Sampled weights are uniform in [1, cfg.maxWeight].
//
// density must lie in [0,1] (else ErrInvalidDensity). An RNG is required
// whenever density is strictly between 0 and 1; density 0 or 1 are
// deterministic (respectively the empty and complete matrix) and do not
// require one.
func RandomSparseFlows(density float64) Constructor {
	return func(matrix [][]int64, n int, cfg config) error {
		if density < 0 || density > 1 {
			return fmt.Errorf("builder: density=%.6f not in [0,1]: %w", density, ErrInvalidDensity)
		}
		if cfg.rng == nil && density > 0 && density < 1 {
			return fmt.Errorf("builder: density=%.6f: %w", density, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				include := density == 1
				if !include && density > 0 && cfg.rng != nil {
					include = cfg.rng.Float64() < density
				}
				if !include {
					continue
				}
				w := cfg.maxWeight
				if cfg.rng != nil {
					w = 1 + cfg.rng.Int63n(cfg.maxWeight)
				}
				matrix[i][j] = w
			}
		}
		return nil
	}
}
