// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements KeyValueStore on a Redis client. Every call gets a
// per-call timeout and transient failures are retried with bounded
// exponential backoff before the degrade-or-propagate rule applies.
type RedisStore struct {
	rdb     *redis.Client
	retry   retryPolicy
	timeout time.Duration
}

type RedisOption func(*RedisStore)

// WithTimeout sets the per-call timeout.
func WithTimeout(d time.Duration) RedisOption {
	return func(s *RedisStore) { s.timeout = d }
}

// WithRetries sets how many times a failed call is retried.
func WithRetries(n int) RedisOption {
	return func(s *RedisStore) { s.retry.attempts = n }
}

// WithBackoff sets the initial and maximum retry delays.
func WithBackoff(initial, max time.Duration) RedisOption {
	return func(s *RedisStore) {
		s.retry.delay = initial
		s.retry.maxDelay = max
	}
}

func NewRedisStore(rdb *redis.Client, opts ...RedisOption) *RedisStore {
	s := &RedisStore{
		rdb:     rdb,
		retry:   defaultRetryPolicy(),
		timeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, ok, err := s.get(ctx, key)
	if err != nil {
		return "", false, fmt.Errorf("store get %q: %w", key, err)
	}
	return value, ok, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	err := s.retry.run(ctx, func(ctx context.Context) error {
		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()
		return s.rdb.Set(callCtx, key, value, 0).Err()
	})
	if err != nil {
		return fmt.Errorf("store set %q: %w", key, err)
	}
	return nil
}

func (s *RedisStore) CacheGet(ctx context.Context, key string) (string, bool) {
	value, ok, err := s.get(ctx, key)
	if err != nil {
		// Cache outage is indistinguishable from a miss.
		slog.Warn("cache get failed", "key", key, "error", err)
		return "", false
	}
	return value, ok
}

func (s *RedisStore) CacheSet(ctx context.Context, key, value string, ttl time.Duration) {
	err := s.retry.run(ctx, func(ctx context.Context) error {
		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()
		return s.rdb.Set(callCtx, key, value, ttl).Err()
	})
	if err != nil {
		slog.Warn("cache set failed", "key", key, "error", err)
	}
}

func (s *RedisStore) Flush(ctx context.Context) error {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.rdb.FlushDB(callCtx).Err(); err != nil {
		return fmt.Errorf("store flush: %w", err)
	}
	return nil
}

func (s *RedisStore) get(ctx context.Context, key string) (string, bool, error) {
	var value string
	var ok bool
	err := s.retry.run(ctx, func(ctx context.Context) error {
		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()
		v, err := s.rdb.Get(callCtx, key).Result()
		if errors.Is(err, redis.Nil) {
			value, ok = "", false
			return nil
		}
		if err != nil {
			return err
		}
		value, ok = v, true
		return nil
	})
	return value, ok, err
}
