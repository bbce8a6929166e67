// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"sync"
	"time"
)

// MemStore is an in-process KeyValueStore for tests and development. It
// never fails, so the cache calls behave like the persistent ones.
type MemStore struct {
	mu      sync.Mutex
	entries map[string]memEntry
}

type memEntry struct {
	value     string
	expiresAt time.Time // zero = no expiry
}

func NewMemStore() *MemStore {
	return &MemStore{entries: make(map[string]memEntry)}
}

func (s *MemStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ent, ok := s.entries[key]
	if !ok {
		return "", false, nil
	}
	if !ent.expiresAt.IsZero() && time.Now().After(ent.expiresAt) {
		delete(s.entries, key)
		return "", false, nil
	}
	return ent.value, true, nil
}

func (s *MemStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = memEntry{value: value}
	return nil
}

func (s *MemStore) CacheGet(ctx context.Context, key string) (string, bool) {
	value, ok, _ := s.Get(ctx, key)
	return value, ok
}

func (s *MemStore) CacheSet(ctx context.Context, key, value string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ent := memEntry{value: value}
	if ttl > 0 {
		ent.expiresAt = time.Now().Add(ttl)
	}
	s.entries[key] = ent
}

func (s *MemStore) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]memEntry)
	return nil
}
