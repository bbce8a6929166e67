// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("POST /method", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# Rate Limiting

Per-client token bucket, keyed by client IP:

	limit := middleware.RateLimit(cfg.RateRPS, cfg.RateBurst)
	mux.HandleFunc("POST /method", limit(handler))

Rejected requests get 429 with a Retry-After header.

# JSON Helpers

Write the wire envelopes:

	middleware.JSONResponse(w, models.OK, models.SuccessResponse{...})
	middleware.ErrorResponse(w, models.Forbidden, "")

ErrorResponse fills in the default message for the code when none is given.

Parse JSON request bodies:

	var body map[string]any
	if err := middleware.ParseJSONBody(r, &body); err != nil {
		middleware.ErrorResponse(w, models.BadRequest, "")
		return
	}

# Request IDs

RequestID honors a caller-supplied X-Request-ID header and generates a UUID
otherwise. Handlers record it in the request context map for log correlation.

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used as the rate-limit bucket key.
*/
package middleware
