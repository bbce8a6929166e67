// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the scoring API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, cfg)

# Endpoints

	GET  /health - liveness probe
	POST /method - the dispatch endpoint (logged, rate limited)
	POST /*      - 404 in the error envelope
	GET  /       - service banner

The routing table is built once at startup and passed into the server;
nothing mutates it afterwards.
*/
package router
