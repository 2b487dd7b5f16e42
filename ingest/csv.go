package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// ReadAdjacencyMatrix reads the CSV adjacency-matrix format from r: a
// header row (discarded) followed by one row per node, the first field a
// string identifier (returned in codes, in row order) and the remaining
// fields the node's outgoing flow to each other node in row order.
//
// The returned matrix is square (len(matrix) == len(matrix[i]) == len(codes))
// and suitable for graph.FromAdjacencyMatrix.
func ReadAdjacencyMatrix(r io.Reader) (codes []string, matrix [][]int64, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // validated manually, against N not len(header)

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("ingest: reading csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, ErrEmptyInput
	}

	dataRows := rows[1:] // discard header
	n := len(dataRows)

	codes = make([]string, n)
	matrix = make([][]int64, n)

	for i, row := range dataRows {
		if len(row) != n+1 {
			return nil, nil, fmt.Errorf("ingest: row %d has %d fields, want %d: %w", i, len(row), n+1, ErrRowLength)
		}
		codes[i] = row[0]
		matrix[i] = make([]int64, n)
		for j, field := range row[1:] {
			w, perr := strconv.ParseInt(field, 10, 64)
			if perr != nil {
				return nil, nil, fmt.Errorf("ingest: row %d col %d value %q: %w", i, j, field, ErrParseWeight)
			}
			matrix[i][j] = w
		}
	}

	return codes, matrix, nil
}
