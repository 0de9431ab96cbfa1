// Package search filters a snapshot by exact ASN and/or partial name.
package search

import (
	"strings"

	"github.com/hupe1980/peergo/dataset"
	"github.com/hupe1980/peergo/model"
)

// maxNameQueryRunes caps the name query length; longer input cannot match
// anything a 30-character display truncation would ever show anyway.
const maxNameQueryRunes = 100

// Query holds the optional search criteria. A nil ASN means no ASN
// criterion; an empty Name means no name criterion.
type Query struct {
	ASN  *int64
	Name string
}

// IsZero reports whether no criterion is set.
func (q Query) IsZero() bool {
	return q.ASN == nil && q.Name == ""
}

// Networks returns the records matching the query, in collection order.
//
// The two criteria combine as an asymmetric OR: a record is included when
// the ASN criterion is set and matches exactly, or when the name criterion
// is set and is a case-insensitive substring of the record's name. A record
// without the queried field never matches. With no criteria set the result
// is empty, not the whole collection: "no query" is deliberately distinct
// from "universal query".
func Networks(snap *dataset.Snapshot, q Query) []model.Network {
	if q.IsZero() {
		return nil
	}

	name := q.Name
	if runes := []rune(name); len(runes) > maxNameQueryRunes {
		name = string(runes[:maxNameQueryRunes])
	}
	name = strings.ToLower(name)

	var results []model.Network
	for _, n := range snap.Networks() {
		matchASN := q.ASN != nil && n.ASN != nil && *n.ASN == *q.ASN
		matchName := name != "" && n.Name != nil && strings.Contains(strings.ToLower(*n.Name), name)
		if matchASN || matchName {
			results = append(results, n)
		}
	}
	return results
}
