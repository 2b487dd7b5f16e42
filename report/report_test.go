package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jwhandley/ttwa/area"
	"github.com/jwhandley/ttwa/builder"
	"github.com/jwhandley/ttwa/graph"
	"github.com/jwhandley/ttwa/report"
	"github.com/stretchr/testify/require"
)

func fixture(t *testing.T) ([]string, *area.AreaCollection, area.Partition) {
	t.Helper()
	m, err := builder.Build(3, builder.Pendant(1000, 10))
	require.NoError(t, err)
	g, err := graph.FromAdjacencyMatrix(m)
	require.NoError(t, err)
	codes := []string{"alpha", "beta", "gamma"}

	ac := area.NewAreaCollection(g)
	partition, err := ac.Fit(50)
	require.NoError(t, err)
	return codes, ac, partition
}

func TestWriteAssignments(t *testing.T) {
	codes, ac, _ := fixture(t)

	var buf bytes.Buffer
	require.NoError(t, report.WriteAssignments(&buf, codes, ac))

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Equal(t, "code,area,self_containment,population,workforce", lines[0])
	require.Len(t, lines, 4) // header + 3 nodes
}

func TestWriteJSON(t *testing.T) {
	codes, _, partition := fixture(t)

	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf, codes, partition))
	require.Contains(t, buf.String(), `"areas"`)
	require.Contains(t, buf.String(), `"iterations"`)
}

func TestSummary(t *testing.T) {
	_, _, partition := fixture(t)

	stats := report.Summary(partition)
	require.Equal(t, len(partition.Areas), stats.AreaCount)
	require.GreaterOrEqual(t, stats.MeanSize, 0.0)
}

func TestSummary_EmptyPartition(t *testing.T) {
	stats := report.Summary(area.Partition{})
	require.Equal(t, report.Stats{}, stats)
}

func TestSummary_SingleAreaStdDevIsZeroNotNaN(t *testing.T) {
	g, err := graph.FromAdjacencyMatrix([][]int64{{5}})
	require.NoError(t, err)
	ac := area.NewAreaCollection(g)
	partition, err := ac.Fit(100)
	require.NoError(t, err)

	stats := report.Summary(partition)
	require.Equal(t, 1, stats.AreaCount)
	require.Equal(t, 0.0, stats.StdDevSize)
	require.Equal(t, 0.0, stats.StdDevContainment)
}

func TestWriteSizeHistogramSVG(t *testing.T) {
	_, _, partition := fixture(t)

	var buf bytes.Buffer
	require.NoError(t, report.WriteSizeHistogramSVG(&buf, partition))
	require.Contains(t, buf.String(), "<svg")
}
