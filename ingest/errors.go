package ingest

import "errors"

// Sentinel errors for CSV adjacency ingest. Callers should branch on these
// with errors.Is; messages are not part of the contract.
var (
	// ErrEmptyInput indicates the reader produced no rows at all (not even
	// a header).
	ErrEmptyInput = errors.New("ingest: input has no rows")

	// ErrRowLength indicates a data row's column count is not N+1 (one code
	// column plus N flow columns), where N is the number of data rows; the
	// header row's length is not checked.
	ErrRowLength = errors.New("ingest: row length does not match node count")

	// ErrParseWeight indicates a flow column could not be parsed as a
	// base-10 integer. Negative values parse and are returned as-is.
	ErrParseWeight = errors.New("ingest: could not parse flow value")
)
