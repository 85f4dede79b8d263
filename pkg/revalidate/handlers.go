// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package revalidate drops cached reads by tag on request of the web client
package revalidate

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/workspace-service/internal/cache"
	httptypes "github.com/canonical/workspace-service/internal/http/types"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/tracing"
)

type Request struct {
	Tag string `json:"tag"`
}

type response struct {
	Revalidated bool `json:"revalidated"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type API struct {
	cache cache.CacheInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewAPI(c cache.CacheInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		cache:  c,
		tracer: tracer,
		logger: logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/revalidate-tag", a.revalidate)
}

func (a *API) revalidate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "revalidate.API.revalidate")
	defer span.End()

	req := new(Request)
	_ = json.NewDecoder(r.Body).Decode(req)

	tag := strings.TrimSpace(req.Tag)
	if tag == "" {
		httptypes.WriteJSON(w, http.StatusBadRequest, errorResponse{Error: "Tag is required"})
		return
	}

	if err := cache.Invalidate(ctx, a.cache, tag); err != nil {
		a.logger.Errorf("failed to revalidate tag %s: %v", tag, err)
		httptypes.WriteJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to revalidate"})
		return
	}

	a.logger.Debugf("revalidated tag %s", tag)
	httptypes.WriteJSON(w, http.StatusOK, response{Revalidated: true})
}
