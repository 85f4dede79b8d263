// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ory/hydra/v2/oauth2"

	httptypes "github.com/canonical/workspace-service/internal/http/types"
	"github.com/canonical/workspace-service/internal/logging"
)

type API struct {
	service ServiceInterface
	apiKey  string
	logger  logging.LoggerInterface
}

// NewAPI builds the hook endpoints, apiKey is the secret the identity provider is configured
// to send, an empty key disables the hooks
func NewAPI(service ServiceInterface, apiKey string, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		apiKey:  apiKey,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Group(func(r chi.Router) {
		r.Use(a.requireAPIKey)

		r.Post("/webhooks/registration", a.registration)
		r.Post("/webhooks/token", a.tokenHook)
	})
}

func (a *API) registration(w http.ResponseWriter, r *http.Request) {
	identity := new(KratosIdentity)
	if err := json.NewDecoder(r.Body).Decode(identity); err != nil {
		a.logger.Errorf("failed to decode registration webhook: %v", err)
		httptypes.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	a.logger.Debugf("registration webhook for identity %s", identity.ID)

	if err := a.service.HandleRegistration(r.Context(), identity); err != nil {
		a.logger.Errorf("registration webhook failed: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *API) tokenHook(w http.ResponseWriter, r *http.Request) {
	req := new(oauth2.TokenHookRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.logger.Errorf("failed to decode token hook: %v", err)
		httptypes.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := a.service.HandleTokenHook(r.Context(), req)
	if err != nil {
		a.logger.Errorf("token hook failed: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, resp)
}
