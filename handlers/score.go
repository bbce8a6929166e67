// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"

	"scoring-api/models"
	"scoring-api/scoring"
)

const adminScore = 42

// onlineScore validates the payload and computes the caller's score. Admin
// callers get a fixed score without touching the store.
func (h *MethodHandler) onlineScore(ctx context.Context, req *models.MethodRequest, meta Meta) (any, int) {
	payload, err := models.ParseOnlineScoreRequest(req.Arguments)
	if err != nil {
		return err.Error(), models.InvalidRequest
	}

	meta["has"] = suppliedNames(req.Arguments)

	if req.IsAdmin() {
		return models.ScoreResponse{Score: adminScore}, models.OK
	}

	score, err := scoring.Score(ctx, h.store, payload)
	if err != nil {
		slog.Error("score computation failed",
			"request_id", meta["request_id"],
			"error", err,
		)
		return nil, models.InternalError
	}
	return models.ScoreResponse{Score: score}, models.OK
}
