// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package teams

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
	mux.Get("/organizations/{org_id}/teams", a.list)
	mux.Post("/organizations/{org_id}/teams", a.create)
	mux.Get("/teams/{team_id}", a.get)
	mux.Patch("/teams/{team_id}", a.rename)
	mux.Delete("/teams/{team_id}", a.delete)
	mux.Get("/teams/{team_id}/permissions/check", a.check)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	teams, err := a.service.ListTeams(r.Context(), chi.URLParam(r, "org_id"))
	if err != nil {
		a.logger.Errorf("failed to list teams: %v", err)
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, teams, "List of teams")
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	req := new(CreateTeamRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	team, err := a.service.CreateTeam(r.Context(), chi.URLParam(r, "org_id"), req)
	if err != nil {
		a.logger.Errorf("failed to create team: %v", err)
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusCreated, team, "Team created")
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	team, err := a.service.GetTeam(r.Context(), chi.URLParam(r, "team_id"))
	if err != nil {
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, team, "Team detail")
}

func (a *API) rename(w http.ResponseWriter, r *http.Request) {
	req := new(RenameTeamRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	team, err := a.service.RenameTeam(r.Context(), chi.URLParam(r, "team_id"), req)
	if err != nil {
		a.logger.Errorf("failed to rename team: %v", err)
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, team, "Team updated")
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	if err := a.service.DeleteTeam(r.Context(), chi.URLParam(r, "team_id")); err != nil {
		a.logger.Errorf("failed to delete team: %v", err)
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, nil, "Team deleted")
}

func (a *API) check(w http.ResponseWriter, r *http.Request) {
	resource := r.URL.Query().Get("resource")
	action := r.URL.Query().Get("action")

	allowed, err := a.service.CheckPermission(r.Context(), chi.URLParam(r, "team_id"), resource, action)
	if err != nil {
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, PermissionCheck{Resource: resource, Action: action, Allowed: allowed}, "Permission check")
}
