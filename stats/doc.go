// Package stats computes aggregations and projections over a snapshot.
//
// Every function is a pure read of the snapshot it is handed: no caching,
// no mutation, no coordination. Results are deterministic for a given
// snapshot, with categorical output in first-seen order; callers that want
// frequency-sorted output sort explicitly.
package stats
