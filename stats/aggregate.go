package stats

import (
	"github.com/hupe1980/peergo/dataset"
	"github.com/hupe1980/peergo/model"
)

// Bucket is one value of a category axis with its record count.
type Bucket struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// CountBy returns the frequency table of one category axis.
//
// Buckets appear in first-seen order over the collection, so output is
// reproducible for a given load order. Records with the axis absent
// contribute to no bucket; the sum of counts equals the number of records
// carrying the axis.
func CountBy(snap *dataset.Snapshot, f model.CategoryField) []Bucket {
	values := snap.Values(f)
	if len(values) == 0 {
		return nil
	}

	buckets := make([]Bucket, 0, len(values))
	for _, v := range values {
		buckets = append(buckets, Bucket{Value: v, Count: snap.Count(f, v)})
	}
	return buckets
}

// Overview is the dashboard stats block: total record count plus the three
// independent category frequency tables.
type Overview struct {
	TotalNetworks int      `json:"total_networks"`
	NetworkTypes  []Bucket `json:"network_types"`
	PolicyTypes   []Bucket `json:"policy_types"`
	Scopes        []Bucket `json:"scopes"`
}

// Summarize computes the dashboard overview. Each axis is an independent
// CountBy call, not a joint aggregation.
func Summarize(snap *dataset.Snapshot) Overview {
	return Overview{
		TotalNetworks: snap.Len(),
		NetworkTypes:  CountBy(snap, model.FieldInfoType),
		PolicyTypes:   CountBy(snap, model.FieldPolicyGeneral),
		Scopes:        CountBy(snap, model.FieldInfoScope),
	}
}
