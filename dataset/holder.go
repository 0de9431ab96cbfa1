package dataset

import "sync/atomic"

// Holder owns the current snapshot pointer.
//
// Publishing is a single atomic store: a reload builds a complete Snapshot
// first and swaps it in whole, never patching the live collection. Current
// never returns nil; before the first publish it returns an empty snapshot.
type Holder struct {
	cur atomic.Pointer[Snapshot]
}

// NewHolder creates a Holder seeded with an empty snapshot.
func NewHolder() *Holder {
	h := &Holder{}
	h.cur.Store(Empty())
	return h
}

// Current returns the currently published snapshot.
func (h *Holder) Current() *Snapshot {
	return h.cur.Load()
}

// Publish atomically replaces the current snapshot.
// A nil snapshot publishes the empty one.
func (h *Holder) Publish(s *Snapshot) {
	if s == nil {
		s = Empty()
	}
	h.cur.Store(s)
}
