// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

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
	mux.Get("/organizations", a.list)
	mux.Post("/organizations", a.create)
	mux.Post("/onboarding", a.onboard)
	mux.Get("/organizations/{org_id}", a.get)
	mux.Patch("/organizations/{org_id}", a.rename)
	mux.Delete("/organizations/{org_id}", a.delete)
	mux.Get("/organizations/{org_id}/permissions/check", a.check)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	orgs, err := a.service.ListOrganizations(r.Context())
	if err != nil {
		a.logger.Errorf("failed to list organizations: %v", err)
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, orgs, "List of organizations")
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	req := new(CreateOrganizationRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	org, err := a.service.CreateOrganization(r.Context(), req)
	if err != nil {
		a.logger.Errorf("failed to create organization: %v", err)
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusCreated, org, "Organization created")
}

func (a *API) onboard(w http.ResponseWriter, r *http.Request) {
	req := new(OnboardingRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	result, err := a.service.Onboard(r.Context(), req)
	if err != nil {
		a.logger.Errorf("failed to onboard: %v", err)
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusCreated, result, "Organization and team created")
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	org, err := a.service.GetOrganization(r.Context(), chi.URLParam(r, "org_id"))
	if err != nil {
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, org, "Organization detail")
}

func (a *API) rename(w http.ResponseWriter, r *http.Request) {
	req := new(RenameRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	org, err := a.service.RenameOrganization(r.Context(), chi.URLParam(r, "org_id"), req)
	if err != nil {
		a.logger.Errorf("failed to rename organization: %v", err)
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, org, "Organization updated")
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	if err := a.service.DeleteOrganization(r.Context(), chi.URLParam(r, "org_id")); err != nil {
		a.logger.Errorf("failed to delete organization: %v", err)
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, nil, "Organization deleted")
}

func (a *API) check(w http.ResponseWriter, r *http.Request) {
	resource := r.URL.Query().Get("resource")
	action := r.URL.Query().Get("action")

	allowed, err := a.service.CheckPermission(r.Context(), chi.URLParam(r, "org_id"), resource, action)
	if err != nil {
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, PermissionCheck{Resource: resource, Action: action, Allowed: allowed}, "Permission check")
}
