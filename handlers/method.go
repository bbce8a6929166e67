// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"sort"

	"scoring-api/auth"
	"scoring-api/cliparse"
	"scoring-api/middleware"
	"scoring-api/models"
	"scoring-api/store"
)

// Meta is the request-scoped side channel handlers write observability data
// into (request id, supplied argument names, client counts). The HTTP layer
// owns it; validation never reads it.
type Meta map[string]any

// MethodHandler dispatches validated envelopes to the business operations.
type MethodHandler struct {
	store store.KeyValueStore
	cfg   cliparse.Config
}

func NewMethodHandler(st store.KeyValueStore, cfg cliparse.Config) *MethodHandler {
	return &MethodHandler{store: st, cfg: cfg}
}

// Handle handles POST /method
func (h *MethodHandler) Handle(w http.ResponseWriter, r *http.Request) {
	meta := Meta{"request_id": middleware.RequestID(r)}

	var body map[string]any
	if err := middleware.ParseJSONBody(r, &body); err != nil {
		slog.Warn("malformed request body",
			"request_id", meta["request_id"],
			"error", err,
		)
		middleware.ErrorResponse(w, models.BadRequest, "")
		return
	}

	response, code := h.Dispatch(r.Context(), body, meta)

	slog.Info("request dispatched",
		"request_id", meta["request_id"],
		"code", code,
	)

	if code == models.OK {
		middleware.JSONResponse(w, code, models.SuccessResponse{
			Response: response,
			Code:     code,
		})
		return
	}
	message, _ := response.(string)
	middleware.ErrorResponse(w, code, message)
}

// Dispatch runs the request protocol: validate the envelope, authenticate,
// route by method name, and map the outcome to a status code. Failure codes
// carry the aggregated validation text as the response where the protocol
// allows detail, and nothing otherwise.
func (h *MethodHandler) Dispatch(ctx context.Context, body map[string]any, meta Meta) (any, int) {
	req, err := models.ParseMethodRequest(body)
	if err != nil {
		return err.Error(), models.InvalidRequest
	}

	if !auth.CheckAuth(req, h.cfg.Salt, h.cfg.AdminSalt) {
		return nil, models.Forbidden
	}

	switch req.Method {
	case models.MethodOnlineScore:
		return h.onlineScore(ctx, req, meta)
	case models.MethodClientsInterests:
		return h.clientsInterests(ctx, req, meta)
	default:
		return nil, models.NotFound
	}
}

// suppliedNames lists the argument keys the caller actually sent, sorted for
// stable logs.
func suppliedNames(args map[string]any) []string {
	names := make([]string, 0, len(args))
	for name := range args {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
