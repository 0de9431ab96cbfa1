// Package dataset loads registry snapshots and publishes them atomically.
//
// A Snapshot is the full in-memory record collection decoded from one
// snapshot blob, plus derived category indexes built at load time. It is
// immutable after construction: query components share it read-only and
// never coordinate.
//
// A Holder owns the current snapshot pointer. Reloads build a complete new
// Snapshot and publish it with a single atomic store, so readers in flight
// keep the snapshot they already hold and new readers observe either the
// fully-old or fully-new collection, never a mix.
//
// The loader never performs network access; fetching raw bytes is the
// acquisition collaborator's job (see package fetch).
package dataset
