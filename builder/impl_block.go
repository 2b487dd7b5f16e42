package builder

import "fmt"

// BlockCommunities returns a Constructor that builds a block-diagonal
// commuting matrix: len(blockSizes) disjoint, fully-connected communities,
// each internally uniform at intraWeight (including the diagonal — local
// flow). Every pair of nodes in different blocks gets interWeight in both
// directions; pass 0 for fully disconnected communities (the fixture of
// scenario 2).
//
// n passed to Build must equal the sum of blockSizes (else ErrBadSize).
func BlockCommunities(blockSizes []int, intraWeight, interWeight int64) Constructor {
	return func(matrix [][]int64, n int, cfg config) error {
		sum := 0
		for _, sz := range blockSizes {
			if sz < 1 {
				return fmt.Errorf("builder: block size %d < 1: %w", sz, ErrTooFewNodes)
			}
			sum += sz
		}
		if sum != n {
			return fmt.Errorf("builder: block sizes sum to %d, want %d: %w", sum, n, ErrBadSize)
		}

		blockOf := make([]int, n)
		idx := 0
		for b, sz := range blockSizes {
			for k := 0; k < sz; k++ {
				blockOf[idx] = b
				idx++
			}
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if blockOf[i] == blockOf[j] {
					matrix[i][j] = intraWeight
				} else {
					matrix[i][j] = interWeight
				}
			}
		}
		return nil
	}
}
