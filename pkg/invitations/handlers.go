// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/workspace-service/internal/http/types"
	"github.com/canonical/workspace-service/internal/logging"
)

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}

// RegisterEndpoints mounts the session api route
func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/invitations/create", a.create)
}

// RegisterV0Endpoints mounts the versioned read routes
func (a *API) RegisterV0Endpoints(mux chi.Router) {
	mux.Get("/organizations/{org_id}/invitations", a.list)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	req := new(CreateInvitationRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	if err := a.service.CreateInvitation(r.Context(), req); err != nil {
		a.logger.Errorf("failed to create invitation: %v", err)

		status := httptypes.StatusFromError(err)
		if status != http.StatusBadRequest {
			// downstream failures surface verbatim as 500
			status = http.StatusInternalServerError
		}
		httptypes.WriteError(w, status, err.Error())
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, map[string]string{"message": successMessage})
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	invitations, err := a.service.ListInvitations(r.Context(), chi.URLParam(r, "org_id"))
	if err != nil {
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, invitations, "List of invitations")
}
