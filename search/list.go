package search

import (
	"strconv"
	"strings"

	"github.com/hupe1980/peergo/dataset"
	"github.com/hupe1980/peergo/model"
)

// ListQuery holds the optional listing filters.
//
// Unlike Query, the criteria combine as an AND and an empty ListQuery
// matches the whole collection: listing narrows a browse view, search
// answers a lookup.
type ListQuery struct {
	// Q is free text matched case-insensitively as a substring of the
	// name, the decimal form of the ASN, or the aka aliases.
	Q string

	// InfoType, Policy, and Status filter by case-insensitive equality
	// on the corresponding field. Empty means no filter.
	InfoType string
	Policy   string
	Status   string
}

// IsZero reports whether no filter is set.
func (q ListQuery) IsZero() bool {
	return q.Q == "" && q.InfoType == "" && q.Policy == "" && q.Status == ""
}

// List returns the records matching every set filter, in collection order.
//
// A record without a filtered field never matches that filter; an empty
// query returns the whole collection unchanged.
func List(snap *dataset.Snapshot, q ListQuery) []model.Network {
	if q.IsZero() {
		return snap.Networks()
	}

	text := strings.ToLower(q.Q)

	var results []model.Network
	for _, n := range snap.Networks() {
		if text != "" && !matchText(&n, text) {
			continue
		}
		if !matchCategory(n.InfoType, q.InfoType) {
			continue
		}
		if !matchCategory(n.PolicyGeneral, q.Policy) {
			continue
		}
		if !matchCategory(n.Status, q.Status) {
			continue
		}
		results = append(results, n)
	}
	return results
}

// matchText matches lowered free text against name, ASN digits, or aka.
func matchText(n *model.Network, text string) bool {
	if n.Name != nil && strings.Contains(strings.ToLower(*n.Name), text) {
		return true
	}
	if n.ASN != nil && strings.Contains(strconv.FormatInt(*n.ASN, 10), text) {
		return true
	}
	if n.AKA != nil && strings.Contains(strings.ToLower(*n.AKA), text) {
		return true
	}
	return false
}

func matchCategory(field *string, want string) bool {
	if want == "" {
		return true
	}
	return field != nil && strings.EqualFold(*field, want)
}
