package report

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/jwhandley/ttwa/area"
)

// AreaJSON is the JSON rendering of a single area.Area.
type AreaJSON struct {
	Code                    string   `json:"code"`
	Members                 []string `json:"members"`
	Size                    int      `json:"size"`
	FlowToArea              int64    `json:"flow_to_area"`
	FlowFromArea            int64    `json:"flow_from_area"`
	SelfContainment         int64    `json:"self_containment"`
	SelfContainmentFraction float64  `json:"self_containment_fraction"`
}

// PartitionJSON is the JSON rendering of an area.Partition.
type PartitionJSON struct {
	Areas            []AreaJSON `json:"areas"`
	Iterations       int        `json:"iterations"`
	IterLimitReached bool       `json:"iter_limit_reached"`
}

// WriteJSON renders partition as JSON to w, resolving member and area
// identity through codes (codes[i] is node i's external identifier, and an
// area's code is the code of the node whose id it kept).
func WriteJSON(w io.Writer, codes []string, partition area.Partition) error {
	doc := PartitionJSON{
		Iterations:       partition.Iterations,
		IterLimitReached: partition.IterLimitReached,
	}
	for _, a := range partition.Areas {
		members := a.Members()
		memberCodes := make([]string, len(members))
		for i, v := range members {
			if v < 0 || v >= len(codes) {
				return fmt.Errorf("report: member %d out of range for codes", v)
			}
			memberCodes[i] = codes[v]
		}
		doc.Areas = append(doc.Areas, AreaJSON{
			Code:                    codes[a.ID()],
			Members:                 memberCodes,
			Size:                    a.Size(),
			FlowToArea:              a.FlowToArea(),
			FlowFromArea:            a.FlowFromArea(),
			SelfContainment:         a.SelfContainment(),
			SelfContainmentFraction: a.SelfContainmentFraction(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("report: encoding json: %w", err)
	}
	return nil
}
