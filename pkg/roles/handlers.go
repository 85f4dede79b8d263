// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/workspace-service/internal/http/types"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/types"
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
	mux.Get("/permissions/matrix", a.matrix)
	mux.Get("/organizations/{org_id}/roles", a.listRoles)
	mux.Post("/organizations/{org_id}/roles", a.createRole)
	mux.Get("/roles/{role_id}", a.getRole)
	mux.Delete("/roles/{role_id}", a.deleteRole)
	mux.Get("/roles/{role_id}/permissions", a.getPermissions)
	mux.Put("/roles/{role_id}/permissions", a.replacePermissions)
	mux.Get("/roles/{role_id}/editor", a.editor)
}

func (a *API) matrix(w http.ResponseWriter, r *http.Request) {
	m, err := a.service.Matrix(types.RoleScope(r.URL.Query().Get("scope")))
	if err != nil {
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, m, "Permission matrix")
}

func (a *API) listRoles(w http.ResponseWriter, r *http.Request) {
	var (
		roles []*types.Role
		err   error
	)

	if teamIDs := r.URL.Query().Get("team_ids"); teamIDs != "" {
		roles, err = a.service.ListRolesForTeams(r.Context(), strings.Split(teamIDs, ","))
	} else {
		roles, err = a.service.ListRoles(r.Context(), chi.URLParam(r, "org_id"), types.RoleScope(r.URL.Query().Get("scope")))
	}

	if err != nil {
		a.logger.Errorf("failed to list roles: %v", err)
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, roles, "List of roles")
}

func (a *API) createRole(w http.ResponseWriter, r *http.Request) {
	req := new(CreateRoleRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	role, err := a.service.CreateRole(r.Context(), chi.URLParam(r, "org_id"), req)
	if err != nil {
		a.logger.Errorf("failed to create role: %v", err)
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusCreated, role, "Role created")
}

func (a *API) getRole(w http.ResponseWriter, r *http.Request) {
	role, err := a.service.GetRole(r.Context(), chi.URLParam(r, "role_id"))
	if err != nil {
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, role, "Role detail")
}

func (a *API) deleteRole(w http.ResponseWriter, r *http.Request) {
	if err := a.service.DeleteRole(r.Context(), chi.URLParam(r, "role_id")); err != nil {
		a.logger.Errorf("failed to delete role: %v", err)
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, nil, "Role deleted")
}

func (a *API) getPermissions(w http.ResponseWriter, r *http.Request) {
	perms, err := a.service.GetPermissions(r.Context(), chi.URLParam(r, "role_id"))
	if err != nil {
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, perms, "Role permissions")
}

func (a *API) replacePermissions(w http.ResponseWriter, r *http.Request) {
	req := new(ReplacePermissionsRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	perms, err := a.service.ReplacePermissions(r.Context(), chi.URLParam(r, "role_id"), req.Permissions)
	if err != nil {
		a.logger.Errorf("failed to replace role permissions: %v", err)
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, perms, "Role permissions updated")
}

func (a *API) editor(w http.ResponseWriter, r *http.Request) {
	view, err := a.service.GetEditor(r.Context(), chi.URLParam(r, "role_id"))
	if err != nil {
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, view, "Role permission editor")
}
