package builder

import "errors"

// Sentinel errors for the builder package. Callers should branch on these
// with errors.Is; messages are not part of the contract.
var (
	// ErrTooFewNodes indicates a requested size parameter is below the
	// constructor's minimum.
	ErrTooFewNodes = errors.New("builder: too few nodes")

	// ErrInvalidDensity indicates a probability/density parameter outside
	// the closed interval [0,1].
	ErrInvalidDensity = errors.New("builder: density out of range")

	// ErrNeedRandSource indicates a stochastic constructor was invoked
	// without an RNG and without a degenerate (0 or 1) density that would
	// make the outcome deterministic anyway.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrBadSize indicates a node count the constructor cannot build, e.g. a
	// block-size list that does not sum to the requested node count, or an
	// odd node count for CommuterChain.
	ErrBadSize = errors.New("builder: invalid size parameter")
)
