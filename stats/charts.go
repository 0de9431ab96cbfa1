package stats

import (
	"github.com/hupe1980/peergo/dataset"
	"github.com/hupe1980/peergo/model"
)

const (
	// MaxLabelRunes is the display width names are truncated to on the
	// chart-facing projections.
	MaxLabelRunes = 30

	// DefaultPrefixLimit keeps the prefix-distribution chart readable.
	DefaultPrefixLimit = 15
)

// PrefixDistribution is chart-ready data for the per-protocol advertised
// prefix counts: three parallel slices indexed by network.
type PrefixDistribution struct {
	Networks []string `json:"networks"`
	IPv4     []int64  `json:"ipv4"`
	IPv6     []int64  `json:"ipv6"`
}

// Prefixes builds the prefix-distribution projection.
//
// A record is included only when both per-protocol prefix counts are
// present. Labels are the network names truncated to MaxLabelRunes.
// limit caps the number of networks; limit <= 0 applies DefaultPrefixLimit.
func Prefixes(snap *dataset.Snapshot, limit int) PrefixDistribution {
	if limit <= 0 {
		limit = DefaultPrefixLimit
	}

	dist := PrefixDistribution{
		Networks: []string{},
		IPv4:     []int64{},
		IPv6:     []int64{},
	}

	for _, n := range snap.Networks() {
		if len(dist.Networks) == limit {
			break
		}
		v4, ok := n.Metric(model.FieldInfoPrefixes4)
		if !ok {
			continue
		}
		v6, ok := n.Metric(model.FieldInfoPrefixes6)
		if !ok {
			continue
		}
		dist.Networks = append(dist.Networks, TruncateLabel(n.DisplayName(), MaxLabelRunes))
		dist.IPv4 = append(dist.IPv4, v4)
		dist.IPv6 = append(dist.IPv6, v6)
	}
	return dist
}

// TruncateLabel shortens s to at most maxRunes characters, appending an
// ellipsis marker when anything was cut. Truncation is rune-aware so
// multi-byte names are never split mid-character.
func TruncateLabel(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}
