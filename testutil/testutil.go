// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"scoring-api/auth"
	"scoring-api/cliparse"
	"scoring-api/models"
	"scoring-api/store"
)

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:      8080,
		RedisAddr: "localhost:6379",
		Salt:      "test-salt",
		AdminSalt: "test-admin-salt",
		RateRPS:   0, // disabled in tests
	}
}

// SetupTestStore creates a fresh in-memory store
func SetupTestStore(t *testing.T) *store.MemStore {
	t.Helper()
	return store.NewMemStore()
}

// SeedInterests stores an interest list for a client id
func SeedInterests(t *testing.T, st store.KeyValueStore, clientID string, interests []string) {
	t.Helper()
	data, err := json.Marshal(interests)
	if err != nil {
		t.Fatalf("Failed to marshal interests: %v", err)
	}
	if err := st.Set(context.Background(), "i:"+clientID, string(data)); err != nil {
		t.Fatalf("Failed to seed interests: %v", err)
	}
}

// SetValidAuth fills in the token a request body needs to pass auth,
// matching the digest rules for admin and non-admin logins.
func SetValidAuth(body map[string]any, cfg cliparse.Config) {
	login, _ := body["login"].(string)
	if login == models.AdminLogin {
		body["token"] = auth.AdminToken(time.Now(), cfg.AdminSalt)
		return
	}
	account, _ := body["account"].(string)
	body["token"] = auth.Token(account, login, cfg.Salt)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
