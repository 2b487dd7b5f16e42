// Package report renders a finished area.Partition to the output formats
// this toolkit supports: the CSV assignment table, a JSON snapshot, summary
// statistics, and an SVG size histogram.
package report
