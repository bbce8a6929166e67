// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"time"
)

// KeyValueStore is the contract handlers consume. The persistent calls (Get,
// Set) propagate connection failures once retries are exhausted; the cache
// calls degrade instead, so a cache outage looks like a cache miss and a
// failed cache write is a silent no-op.
type KeyValueStore interface {
	// Get returns the value at key, or ok=false when the key does not exist.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value at key with no expiry.
	Set(ctx context.Context, key, value string) error

	// CacheGet returns the cached value, or ok=false on miss or store outage.
	CacheGet(ctx context.Context, key string) (value string, ok bool)

	// CacheSet stores value with a TTL, best-effort.
	CacheSet(ctx context.Context, key, value string, ttl time.Duration)

	// Flush clears all state. Test and setup use only.
	Flush(ctx context.Context) error
}
