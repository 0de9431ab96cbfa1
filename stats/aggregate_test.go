package stats

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/peergo/dataset"
	"github.com/hupe1980/peergo/model"
)

func loadSnapshot(t *testing.T, payload string) *dataset.Snapshot {
	t.Helper()
	snap, report := dataset.Load([]byte(payload))
	require.NoError(t, report.Err)
	return snap
}

func TestCountBy(t *testing.T) {
	// 12 records: 5 Content, 7 with info_type absent.
	snap := loadSnapshot(t, `{"data":[
		{"id":1,"info_type":"Content"},
		{"id":2},
		{"id":3,"info_type":"Content"},
		{"id":4},
		{"id":5,"info_type":"Content"},
		{"id":6},
		{"id":7,"info_type":"Content"},
		{"id":8},
		{"id":9,"info_type":"Content"},
		{"id":10},
		{"id":11},
		{"id":12}
	]}`)

	buckets := CountBy(snap, model.FieldInfoType)
	require.Equal(t, []Bucket{{Value: "Content", Count: 5}}, buckets)
}

func TestCountBy_FirstSeenOrder(t *testing.T) {
	snap := loadSnapshot(t, `{"data":[
		{"id":1,"policy_general":"Selective"},
		{"id":2,"policy_general":"Open"},
		{"id":3,"policy_general":"Selective"},
		{"id":4,"policy_general":"Restrictive"},
		{"id":5,"policy_general":"Open"}
	]}`)

	buckets := CountBy(snap, model.FieldPolicyGeneral)
	require.Equal(t, []Bucket{
		{Value: "Selective", Count: 2},
		{Value: "Open", Count: 2},
		{Value: "Restrictive", Count: 1},
	}, buckets)
}

func TestCountBy_SumEqualsPresentRecords(t *testing.T) {
	snap := loadSnapshot(t, `{"data":[
		{"id":1,"info_scope":"Global"},
		{"id":2,"info_scope":"Regional"},
		{"id":3},
		{"id":4,"info_scope":"Global"},
		{"id":5,"info_scope":""},
		{"id":6}
	]}`)

	present := 0
	for _, n := range snap.Networks() {
		if _, ok := n.Category(model.FieldInfoScope); ok {
			present++
		}
	}

	sum := 0
	for _, b := range CountBy(snap, model.FieldInfoScope) {
		sum += b.Count
	}
	require.Equal(t, present, sum)
	require.Equal(t, 4, sum)
}

func TestCountBy_EmptySnapshot(t *testing.T) {
	require.Nil(t, CountBy(dataset.Empty(), model.FieldInfoType))
}

func TestSummarize(t *testing.T) {
	snap := loadSnapshot(t, `{"data":[
		{"id":1,"info_type":"Content","policy_general":"Open","info_scope":"Global"},
		{"id":2,"info_type":"NSP","policy_general":"Open"},
		{"id":3,"info_type":"Content"}
	]}`)

	overview := Summarize(snap)
	require.Equal(t, 3, overview.TotalNetworks)
	require.Equal(t, []Bucket{{Value: "Content", Count: 2}, {Value: "NSP", Count: 1}}, overview.NetworkTypes)
	require.Equal(t, []Bucket{{Value: "Open", Count: 2}}, overview.PolicyTypes)
	require.Equal(t, []Bucket{{Value: "Global", Count: 1}}, overview.Scopes)
}
