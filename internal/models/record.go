// Package models defines the plain data shapes shared across the planning pipeline.
package models

// Record is a loosely typed user document (profile or query) as decoded from
// JSON. Values keep whatever type the caller supplied; the normalizer raises
// recognized fields to canonical form and the validator flags the rest.
type Record map[string]any
