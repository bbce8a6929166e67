// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"testing"
	"time"
)

func TestMemStoreGetSet(t *testing.T) {
	st := NewMemStore()
	ctx := context.Background()

	if _, ok, err := st.Get(ctx, "missing"); err != nil || ok {
		t.Errorf("Get(missing) = ok=%v err=%v, want miss", ok, err)
	}

	if err := st.Set(ctx, "key", "123"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	v, ok, err := st.Get(ctx, "key")
	if err != nil || !ok || v != "123" {
		t.Errorf("Get(key) = %q ok=%v err=%v, want 123", v, ok, err)
	}

	// Overwrite
	if err := st.Set(ctx, "key", "456"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if v, _, _ := st.Get(ctx, "key"); v != "456" {
		t.Errorf("Get(key) after overwrite = %q, want 456", v)
	}
}

func TestMemStoreCacheTTL(t *testing.T) {
	st := NewMemStore()
	ctx := context.Background()

	st.CacheSet(ctx, "key", "123", 10*time.Millisecond)
	if v, ok := st.CacheGet(ctx, "key"); !ok || v != "123" {
		t.Errorf("CacheGet() = %q ok=%v, want fresh hit", v, ok)
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := st.CacheGet(ctx, "key"); ok {
		t.Error("CacheGet() hit after TTL expiry")
	}
}

func TestMemStoreCacheNoTTL(t *testing.T) {
	st := NewMemStore()
	ctx := context.Background()

	st.CacheSet(ctx, "key", "123", 0)
	if _, ok := st.CacheGet(ctx, "key"); !ok {
		t.Error("CacheGet() missed a zero-TTL entry")
	}
}

func TestMemStoreFlush(t *testing.T) {
	st := NewMemStore()
	ctx := context.Background()

	st.Set(ctx, "a", "1")
	st.CacheSet(ctx, "b", "2", time.Hour)

	if err := st.Flush(ctx); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if _, ok, _ := st.Get(ctx, "a"); ok {
		t.Error("Get() hit after Flush")
	}
	if _, ok := st.CacheGet(ctx, "b"); ok {
		t.Error("CacheGet() hit after Flush")
	}
}
