// Package model defines core types used throughout peergo.
//
// # Network
//
// Network is one registry entry. Every field except ID is optional and
// modeled as a pointer: a nil pointer means the source record did not carry
// the field, which is distinct from a present zero or empty value. Query
// components state their missing-field policy against this distinction
// instead of coercing absent values to defaults.
//
// # Field Selectors
//
//   - CategoryField: selects a string classification axis (info_type,
//     policy_general, info_scope) for aggregation
//   - MetricField: selects a numeric count field (prefixes, IX/facility
//     membership, ASN) for correlation and exact matching
package model
