package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/jwhandley/ttwa/area"
)

// WriteAssignments writes one row per node of the final partition: the
// node's own code, the code of the area it was assigned to (an area's code
// is the code of the node whose id the area kept, since area ids are never
// reused), the area's self-containment fraction, its population
// (flow_from_area, the supply side: residents commuting out of the area)
// and its workforce (flow_to_area, the demand side: jobs located in the
// area).
func WriteAssignments(w io.Writer, codes []string, ac *area.AreaCollection) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"code", "area", "self_containment", "population", "workforce"}); err != nil {
		return fmt.Errorf("report: writing header: %w", err)
	}

	n := ac.Graph().N()
	for v := 0; v < n; v++ {
		areaID := ac.NodeArea(v)
		if areaID < 0 || areaID >= len(codes) {
			return fmt.Errorf("report: node %d has no resolved area", v)
		}
		a := ac.Area(areaID)
		row := []string{
			codes[v],
			codes[areaID],
			strconv.FormatFloat(a.SelfContainmentFraction(), 'f', 6, 64),
			strconv.FormatInt(a.FlowFromArea(), 10),
			strconv.FormatInt(a.FlowToArea(), 10),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("report: writing row for node %d: %w", v, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("report: flushing csv: %w", err)
	}
	return nil
}
