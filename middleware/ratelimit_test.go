// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRateLimitBlocksBurstOverflow(t *testing.T) {
	limited := RateLimit(1, 1)(okHandler)

	first := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/method", nil)
	req.RemoteAddr = "10.0.0.1:5000"
	limited(first, req)
	if first.Code != http.StatusOK {
		t.Fatalf("first request status = %d", first.Code)
	}

	second := httptest.NewRecorder()
	limited(second, req)
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", second.Code)
	}
	if second.Header().Get("Retry-After") == "" {
		t.Error("missing Retry-After header on rejection")
	}
}

func TestRateLimitIsPerClient(t *testing.T) {
	limited := RateLimit(1, 1)(okHandler)

	a := httptest.NewRequest("POST", "/method", nil)
	a.RemoteAddr = "10.0.0.1:5000"
	b := httptest.NewRequest("POST", "/method", nil)
	b.RemoteAddr = "10.0.0.2:5000"

	wa := httptest.NewRecorder()
	limited(wa, a)
	wb := httptest.NewRecorder()
	limited(wb, b)

	if wa.Code != http.StatusOK || wb.Code != http.StatusOK {
		t.Errorf("distinct clients limited together: %d, %d", wa.Code, wb.Code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	limited := RateLimit(0, 0)(okHandler)

	req := httptest.NewRequest("POST", "/method", nil)
	req.RemoteAddr = "10.0.0.1:5000"
	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		limited(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d status = %d with limiting disabled", i, w.Code)
		}
	}
}
