package dataset

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/peergo/model"
)

func strp(s string) *string { return &s }

func TestSnapshot_CategoryIndex(t *testing.T) {
	networks := []model.Network{
		{ID: 1, InfoType: strp("Content")},
		{ID: 2, InfoType: strp("NSP")},
		{ID: 3, InfoType: strp("Content")},
		{ID: 4}, // axis absent: in no posting list
		{ID: 5, InfoType: strp("Cable/DSL/ISP")},
		{ID: 6, InfoType: strp("NSP")},
	}
	snap := newSnapshot(networks)

	// First-seen order, absent records excluded.
	require.Equal(t, []string{"Content", "NSP", "Cable/DSL/ISP"}, snap.Values(model.FieldInfoType))
	require.Equal(t, 2, snap.Count(model.FieldInfoType, "Content"))
	require.Equal(t, 2, snap.Count(model.FieldInfoType, "NSP"))
	require.Equal(t, 1, snap.Count(model.FieldInfoType, "Cable/DSL/ISP"))
	require.Zero(t, snap.Count(model.FieldInfoType, "Route Server"))

	// Axes are independent: nothing was indexed for the other two here.
	require.Empty(t, snap.Values(model.FieldPolicyGeneral))
	require.Empty(t, snap.Values(model.FieldInfoScope))
}

func TestSnapshot_EmptyStringIsAValue(t *testing.T) {
	// A present-but-empty classification is still a value; only absence is
	// excluded from the index.
	snap := newSnapshot([]model.Network{
		{ID: 1, InfoScope: strp("")},
		{ID: 2},
	})

	require.Equal(t, []string{""}, snap.Values(model.FieldInfoScope))
	require.Equal(t, 1, snap.Count(model.FieldInfoScope, ""))
}

func TestEmpty(t *testing.T) {
	snap := Empty()
	require.Zero(t, snap.Len())
	require.Empty(t, snap.Networks())
	require.Empty(t, snap.Values(model.FieldInfoType))
}
