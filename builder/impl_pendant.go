package builder

import "fmt"

// Pendant returns a Constructor for the 3-node pendant-absorption fixture
// of spec.md §8 scenario 4: nodes 0 and 1 exchange hubWeight in both
// directions, and node 2 exchanges a much smaller pendantWeight with node 0
// only. n must be exactly 3 (else ErrBadSize).
func Pendant(hubWeight, pendantWeight int64) Constructor {
	return func(matrix [][]int64, n int, cfg config) error {
		if n != 3 {
			return fmt.Errorf("builder: n=%d, want 3: %w", n, ErrBadSize)
		}
		matrix[0][1] = hubWeight
		matrix[1][0] = hubWeight
		matrix[0][2] = pendantWeight
		matrix[2][0] = pendantWeight
		return nil
	}
}
