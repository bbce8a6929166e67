// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store provides the key-value store collaborator.

# Contract

KeyValueStore separates persistent reads/writes from cache reads/writes:

	Get, Set          - propagate failures once retries are exhausted
	CacheGet, CacheSet - degrade: outage reads miss, outage writes no-op
	Flush             - test/setup only

# Implementations

RedisStore wraps a go-redis client with a per-call timeout and bounded
exponential-backoff retries:

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	st := store.NewRedisStore(rdb, store.WithRetries(5))

MemStore is an in-process map with TTL support, used by tests and dev mode.
*/
package store
