// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package members

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

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/organizations/{org_id}/members", a.listOrgMembers)
	mux.Get("/teams/{team_id}/members", a.listTeamMembers)
}

func (a *API) listOrgMembers(w http.ResponseWriter, r *http.Request) {
	members, err := a.service.ListOrgMembers(r.Context(), chi.URLParam(r, "org_id"))
	if err != nil {
		a.logger.Errorf("failed to list organization members: %v", err)
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, members, "List of organization members")
}

func (a *API) listTeamMembers(w http.ResponseWriter, r *http.Request) {
	members, err := a.service.ListTeamMembers(r.Context(), chi.URLParam(r, "team_id"))
	if err != nil {
		a.logger.Errorf("failed to list team members: %v", err)
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, members, "List of team members")
}
