// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the scoring API server.

The scoring API validates JSON request bodies against declared schemas,
authenticates the caller with salted SHA-512 digests, and dispatches to one
of two operations: online_score and clients_interests.

# Starting the Server

The server requires the token salts via environment variables, a .env file,
or CLI flags:

	SALT=... ADMIN_SALT=... go run main.go

Or with flags:

	go run main.go -p 8080 -r localhost:6379 --salt ... --admin-salt ...

# Request Protocol

All requests go to POST /method with a JSON envelope:

	{"account": "...", "login": "...", "token": "...",
	 "method": "online_score", "arguments": {...}}

Responses use a fixed envelope: {"response": ..., "code": 200} on success,
{"error": ..., "code": N} on failure.

# Architecture

  - schema: declarative field/schema validation engine
  - models: request schemas, status codes, wire types
  - auth: token digest verification
  - handlers: dispatcher and the two business operations
  - scoring: score computation with a store-backed cache, interests lookup
  - store: Redis key-value collaborator with retry, in-memory test store
  - middleware: logging, rate limiting, JSON helpers
  - router: route definitions using Go 1.22+ routing
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
