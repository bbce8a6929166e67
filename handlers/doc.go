// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the request dispatcher and the business operations.

# Dispatch Protocol

Every request walks the same progression:

	parse body → validate envelope → authenticate → route → validate payload
	→ execute → map to status

MethodHandler.Handle is the HTTP face (POST /method); Dispatch is the
transport-free core, so tests can drive it with plain maps.

Failure mapping:

	envelope invalid       → 422, aggregated field errors in the body
	bad token              → 403, no detail
	unknown method         → 404, no detail
	payload invalid        → 422, aggregated field errors in the body
	store/handler failure  → 500, logged, no detail leaked
	success                → 200, handler result

# Operations

online_score validates OnlineScoreRequest, records the supplied argument
names in the request Meta under "has", and returns {"score": N}. Admin
callers short-circuit to a fixed score without store access.

clients_interests validates ClientsInterestsRequest, records the client
count under "nclients", and returns a client-id → interest-list map. Each id
is looked up independently; duplicates are looked up again and missing
entries become empty lists.

# Meta

Meta is a per-request map owned by the HTTP layer. Handlers only write to it;
it exists for logging and tests, never for control flow.
*/
package handlers
