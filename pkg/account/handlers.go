// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/workspace-service/internal/http/types"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/pkg/authentication"
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

// RegisterEndpoints mounts the account deletion route, it answers 401 itself when no user is present
func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/delete-account", a.deleteAccount)
}

// RegisterV0Endpoints mounts the profile routes behind the authenticated api
func (a *API) RegisterV0Endpoints(mux chi.Router) {
	mux.Get("/profile", a.getProfile)
	mux.Patch("/profile", a.updateProfile)
}

func (a *API) deleteAccount(w http.ResponseWriter, r *http.Request) {
	if _, ok := authentication.GetUserID(r.Context()); !ok {
		httptypes.WriteJSON(w, http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
		return
	}

	if err := a.service.DeleteAccount(r.Context()); err != nil {
		a.logger.Errorf("failed to delete account: %v", err)
		httptypes.WriteJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, deleteAccountResponse{Success: true})
}

func (a *API) getProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := a.service.GetProfile(r.Context())
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, profile, "Profile")
}

func (a *API) updateProfile(w http.ResponseWriter, r *http.Request) {
	req := new(UpdateProfileRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	profile, err := a.service.UpdateProfile(r.Context(), req)
	if err != nil {
		a.logger.Errorf("failed to update profile: %v", err)
		a.writeError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, profile, "Profile updated")
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNoUser) {
		httptypes.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	httptypes.WriteErrorFromErr(w, err)
}
