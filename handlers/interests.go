// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"

	"scoring-api/models"
	"scoring-api/schema"
	"scoring-api/scoring"
)

// clientsInterests validates the payload and looks up interests per client
// id, order-preserving. Unknown clients map to empty lists.
func (h *MethodHandler) clientsInterests(ctx context.Context, req *models.MethodRequest, meta Meta) (any, int) {
	payload, err := models.ParseClientsInterestsRequest(req.Arguments)
	if err != nil {
		return err.Error(), models.InvalidRequest
	}

	meta["nclients"] = len(payload.ClientIDs)

	interests := make(map[string][]string, len(payload.ClientIDs))
	for _, cid := range payload.ClientIDs {
		id := schema.DecimalString(cid)
		list, err := scoring.Interests(ctx, h.store, id)
		if err != nil {
			slog.Error("interests lookup failed",
				"request_id", meta["request_id"],
				"client_id", id,
				"error", err,
			)
			return nil, models.InternalError
		}
		interests[id] = list
	}
	return interests, models.OK
}
