// Package ingest reads the adjacency-matrix CSV format this toolkit
// consumes: a header row followed by one row per node, the first column a
// string identifier and the remaining N columns the node's outgoing flow
// to each node in row order (column j is the node on data row j; the
// header's contents are not read).
package ingest
