// Package ttwa partitions a weighted directed commuting graph into
// travel-to-work areas.
//
// A travel-to-work area groups spatial units (postcodes, municipalities,
// census tracts — anything a row of a commuting-flow matrix can represent)
// into regions that are large enough and self-contained enough that most of
// the people who live there also work there. This module builds that
// partition from an adjacency matrix of commuting flows by iteratively
// dissolving the worst-scoring area and re-homing its members into
// neighbouring areas, until every remaining area clears a size and
// self-containment threshold or cannot be improved by dissolution, or an
// iteration ceiling is reached.
//
// Everything is organized under a handful of subpackages:
//
//	graph/      — immutable weighted directed multigraph built from a matrix
//	area/       — AreaCollection and the Fit dissolve/reassign engine
//	builder/    — deterministic synthetic commuting-matrix generators
//	ingest/     — CSV adjacency-matrix reader
//	report/     — CSV, JSON, summary-statistics and SVG output
//	cmd/ttwa/   — the `ttwa` command-line tool
//
// The algorithm itself lives entirely in area.AreaCollection.Fit; everything
// else exists to get a matrix in and a partition out.
//
//	go get github.com/jwhandley/ttwa
package ttwa
