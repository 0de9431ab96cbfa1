package stats

import (
	"github.com/hupe1980/peergo/dataset"
	"github.com/hupe1980/peergo/model"
)

// Point is one correlation sample drawn from two numeric fields of a
// single record.
type Point struct {
	X     int64  `json:"x"`
	Y     int64  `json:"y"`
	Label string `json:"label"`
}

// LabelFunc derives a point label from a record.
type LabelFunc func(*model.Network) string

// Pairs projects two numeric fields into a point set for joint analysis.
//
// A record is included only when both fields are present; a record with one
// present and one absent is excluded rather than padded with a default.
// Collection order is preserved and labels are not deduplicated. The result
// is unbounded here; truncation for display is the caller's concern.
//
// A nil label falls back to the network display name (empty when absent).
func Pairs(snap *dataset.Snapshot, x, y model.MetricField, label LabelFunc) []Point {
	if label == nil {
		label = (*model.Network).DisplayName
	}

	var points []Point
	for _, n := range snap.Networks() {
		xv, ok := n.Metric(x)
		if !ok {
			continue
		}
		yv, ok := n.Metric(y)
		if !ok {
			continue
		}
		points = append(points, Point{X: xv, Y: yv, Label: label(&n)})
	}
	return points
}
