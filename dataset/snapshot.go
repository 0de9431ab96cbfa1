package dataset

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/peergo/model"
)

// categoryAxes are the classification fields indexed at load time.
var categoryAxes = []model.CategoryField{
	model.FieldInfoType,
	model.FieldPolicyGeneral,
	model.FieldInfoScope,
}

// Snapshot is one immutable, atomically-published version of the record
// collection. All accessors are safe for concurrent use; callers must not
// modify returned slices.
type Snapshot struct {
	networks   []model.Network
	categories map[model.CategoryField]*categoryIndex
}

// categoryIndex is an inverted index over one classification axis:
// value -> bitmap of record positions. Records with the axis absent appear
// in no posting list. order preserves first occurrence for reproducible
// aggregation output.
type categoryIndex struct {
	order    []string
	postings map[string]*roaring.Bitmap
}

func newSnapshot(networks []model.Network) *Snapshot {
	s := &Snapshot{
		networks:   networks,
		categories: make(map[model.CategoryField]*categoryIndex, len(categoryAxes)),
	}

	for _, axis := range categoryAxes {
		idx := &categoryIndex{postings: make(map[string]*roaring.Bitmap)}
		for i := range networks {
			value, ok := networks[i].Category(axis)
			if !ok {
				continue
			}
			bm, exists := idx.postings[value]
			if !exists {
				bm = roaring.New()
				idx.postings[value] = bm
				idx.order = append(idx.order, value)
			}
			bm.Add(uint32(i))
		}
		s.categories[axis] = idx
	}

	return s
}

// Empty returns a snapshot with no records.
func Empty() *Snapshot {
	return newSnapshot(nil)
}

// Len returns the number of records in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.networks)
}

// Networks returns the record collection in load order.
// The returned slice is shared and read-only.
func (s *Snapshot) Networks() []model.Network {
	return s.networks
}

// At returns the record at position i.
func (s *Snapshot) At(i int) *model.Network {
	return &s.networks[i]
}

// Values returns the distinct values of a category axis in first-seen order.
func (s *Snapshot) Values(f model.CategoryField) []string {
	idx, ok := s.categories[f]
	if !ok {
		return nil
	}
	return idx.order
}

// Count returns the number of records carrying the given value on a
// category axis. Records with the axis absent are never counted.
func (s *Snapshot) Count(f model.CategoryField, value string) int {
	idx, ok := s.categories[f]
	if !ok {
		return 0
	}
	bm, ok := idx.postings[value]
	if !ok {
		return 0
	}
	return int(bm.GetCardinality())
}
