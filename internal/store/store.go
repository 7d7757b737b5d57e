// Package store implements Postgres-backed access to the fixture catalog
// (real_matches) and the per-user tracking records (matches), plus the small
// supporting collections (locations, league_settings).
//
// All reads run through prepared statements registered in internal/db. Store
// failures are returned unchanged so callers decide retry policy; this layer
// performs no retries.
package store

import "errors"

var (
	// ErrNotFound is returned when a row the caller addressed does not exist
	// or is not owned by the caller.
	ErrNotFound = errors.New("store: not found")

	// ErrDuplicate is returned when inserting a tracking record that already
	// exists for the same (fixture, username) pair.
	ErrDuplicate = errors.New("store: duplicate")
)
