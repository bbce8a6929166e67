// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"scoring-api/models"
	"scoring-api/store"
)

const cacheTTL = time.Hour

// Score computes the online score for a validated payload, consulting the
// cache first. A cached value of exactly 0 reads as a miss and is recomputed.
func Score(ctx context.Context, st store.KeyValueStore, req *models.OnlineScoreRequest) (float64, error) {
	key := cacheKey(req)
	if v, ok := st.CacheGet(ctx, key); ok {
		if cached, err := strconv.ParseFloat(v, 64); err == nil && cached != 0 {
			return cached, nil
		}
	}

	var score float64
	if present(req.Phone) {
		score += 1.5
	}
	if present(req.Email) {
		score += 1.5
	}
	if present(req.Birthday) && req.Gender != nil && *req.Gender != 0 {
		score += 1.5
	}
	if present(req.FirstName) && present(req.LastName) {
		score += 0.5
	}

	st.CacheSet(ctx, key, strconv.FormatFloat(score, 'f', -1, 64), cacheTTL)
	return score, nil
}

// Interests fetches the interest list stored for one client id. A missing
// entry is an empty list, not an error.
func Interests(ctx context.Context, st store.KeyValueStore, clientID string) ([]string, error) {
	v, ok, err := st.Get(ctx, "i:"+clientID)
	if err != nil {
		return nil, err
	}
	if !ok || v == "" {
		return []string{}, nil
	}
	var interests []string
	if err := json.Unmarshal([]byte(v), &interests); err != nil {
		return nil, fmt.Errorf("interests for client %s: %w", clientID, err)
	}
	return interests, nil
}

// cacheKey derives the score cache key. Email and gender are deliberately
// left out: they change the score but not the cached identity.
func cacheKey(req *models.OnlineScoreRequest) string {
	var b strings.Builder
	for _, part := range []*string{req.FirstName, req.LastName, req.Phone, req.Birthday} {
		if part != nil {
			b.WriteString(*part)
		}
	}
	sum := md5.Sum([]byte(b.String()))
	return "uid:" + hex.EncodeToString(sum[:])
}

func present(s *string) bool {
	return s != nil && *s != ""
}
