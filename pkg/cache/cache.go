// Package cache provides caching for the deck build pipeline.
//
// Three content classes are cached: fetched playlist snapshots, computed
// page plans, and rendered artifacts. Each class carries its own TTL, and
// keys embed every option that affects the cached bytes so a changed option
// can never produce a stale hit.
//
// Backends:
//   - FileCache: entries on the local filesystem (default for CLI runs)
//   - RedisCache: entries in Redis, for sharing between machines
//   - NullCache: caching disabled
package cache

import (
	"context"
	"time"
)

// TTLs per content class. Playlists drift as their owners edit them, so
// snapshots expire quickly; plans and artifacts are pure functions of their
// inputs and only expire to bound disk usage.
const (
	TTLPlaylist = 6 * time.Hour
	TTLPlan     = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache stores and retrieves binary entries with per-entry TTLs.
//
// Implementations must treat a missing key as a miss, not an error, and
// must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero TTL stores without expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the backend.
	Close() error
}
