// Package model defines the on-disk and wire schemas shared across the
// repository manager: configuration, the archive-derived origin identity,
// per-module track state, and the published index. All types round-trip
// through JSON with unknown-field tolerance and snake_case wire names.
package model
