package report

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/jwhandley/ttwa/area"
)

// Stats summarizes the size and self-containment distribution of a
// finished partition's present areas.
type Stats struct {
	AreaCount            int
	MeanSize             float64
	StdDevSize           float64
	MedianSize           float64
	MeanSelfContainment  float64
	StdDevContainment    float64
	MedianContainment    float64
}

// Summary computes Stats over partition.Areas. Returns the zero Stats if
// the partition has no present areas.
func Summary(partition area.Partition) Stats {
	n := len(partition.Areas)
	if n == 0 {
		return Stats{}
	}

	sizes := make([]float64, n)
	containments := make([]float64, n)
	for i, a := range partition.Areas {
		sizes[i] = float64(a.FlowFromArea())
		containments[i] = a.SelfContainmentFraction()
	}

	sortedSizes := append([]float64(nil), sizes...)
	sortedContainments := append([]float64(nil), containments...)
	sort.Float64s(sortedSizes)
	sort.Float64s(sortedContainments)

	var stdDevSize, stdDevContainment float64
	if n >= 2 {
		stdDevSize = stat.StdDev(sizes, nil)
		stdDevContainment = stat.StdDev(containments, nil)
	}

	return Stats{
		AreaCount:           n,
		MeanSize:            stat.Mean(sizes, nil),
		StdDevSize:          stdDevSize,
		MedianSize:          stat.Quantile(0.5, stat.Empirical, sortedSizes, nil),
		MeanSelfContainment: stat.Mean(containments, nil),
		StdDevContainment:   stdDevContainment,
		MedianContainment:   stat.Quantile(0.5, stat.Empirical, sortedContainments, nil),
	}
}
