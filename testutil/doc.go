// Package testutil provides helpers for generating synthetic registry
// datasets in tests and benchmarks.
package testutil
