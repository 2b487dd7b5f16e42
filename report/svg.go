package report

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/jwhandley/ttwa/area"
)

const (
	histBucketCount = 10
	histBarWidth    = 48
	histBarGap      = 12
	histHeight      = 220
	histMargin      = 40
)

// WriteSizeHistogramSVG renders a bar chart of the final partition's
// area-size (flow_from_area) distribution, bucketed into histBucketCount
// equal-width buckets between the smallest and largest present area.
func WriteSizeHistogramSVG(w io.Writer, partition area.Partition) error {
	n := len(partition.Areas)
	width := histMargin*2 + histBucketCount*(histBarWidth+histBarGap)
	canvas := svg.New(w)
	canvas.Start(width, histHeight+histMargin*2)
	canvas.Rect(0, 0, width, histHeight+histMargin*2, "fill:#ffffff")
	canvas.Text(histMargin, 20, "area size distribution", "fill:#222222;font-size:14px;font-family:monospace;font-weight:bold")

	if n == 0 {
		canvas.Text(histMargin, histMargin+20, "no areas in partition", "fill:#888888;font-size:12px;font-family:monospace")
		canvas.End()
		return nil
	}

	minSize, maxSize := partition.Areas[0].FlowFromArea(), partition.Areas[0].FlowFromArea()
	for _, a := range partition.Areas {
		if s := a.FlowFromArea(); s < minSize {
			minSize = s
		} else if s > maxSize {
			maxSize = s
		}
	}

	buckets := make([]int, histBucketCount)
	span := maxSize - minSize
	for _, a := range partition.Areas {
		idx := 0
		if span > 0 {
			idx = int(float64(a.FlowFromArea()-minSize) / float64(span) * float64(histBucketCount))
		}
		if idx < 0 {
			idx = 0
		}
		if idx >= histBucketCount {
			idx = histBucketCount - 1
		}
		buckets[idx]++
	}

	maxCount := 1
	for _, c := range buckets {
		if c > maxCount {
			maxCount = c
		}
	}

	baseline := histMargin + histHeight
	for i, c := range buckets {
		barHeight := int(float64(c) / float64(maxCount) * float64(histHeight-20))
		x := histMargin + i*(histBarWidth+histBarGap)
		y := baseline - barHeight
		canvas.Rect(x, y, histBarWidth, barHeight, "fill:#4c78a8;stroke:#2c4a6e;stroke-width:1")
		canvas.Text(x, baseline+16, fmt.Sprintf("%d", c), "fill:#444444;font-size:11px;font-family:monospace")
	}

	canvas.End()
	return nil
}
