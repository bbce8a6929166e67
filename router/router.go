// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"scoring-api/cliparse"
	"scoring-api/handlers"
	"scoring-api/middleware"
	"scoring-api/models"
	"scoring-api/store"
)

// NewRouter builds the routing table once at startup; it is never mutated
// afterwards.
func NewRouter(st store.KeyValueStore, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	methodHandler := handlers.NewMethodHandler(st, cfg)
	limit := middleware.RateLimit(cfg.RateRPS, cfg.RateBurst)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// The single dispatch endpoint
	mux.HandleFunc("POST /method", middleware.WithLogging(limit(methodHandler.Handle)))

	// Unknown POST paths still answer in the error envelope
	mux.HandleFunc("POST /", func(w http.ResponseWriter, r *http.Request) {
		middleware.ErrorResponse(w, models.NotFound, "")
	})

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("scoring API v1"))
	})

	return mux
}
