// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/ory/hydra/v2/oauth2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
)

const testAPIKey = "hook-secret"

func encodeBody(t *testing.T, body interface{}) []byte {
	t.Helper()

	if raw, ok := body.(string); ok {
		return []byte(raw)
	}

	encoded, err := json.Marshal(body)
	require.NoError(t, err)

	return encoded
}

func serveHook(api *API, path, key string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	if key != "" {
		req.Header.Set(APIKeyHeader, key)
	}

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	return w
}

func TestAPI_RequiresAPIKey(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		presented  string
		path       string
		authorized bool
	}{
		{name: "registration without key", configured: testAPIKey, path: "/webhooks/registration"},
		{name: "token hook without key", configured: testAPIKey, path: "/webhooks/token"},
		{name: "wrong key", configured: testAPIKey, presented: "guess", path: "/webhooks/registration"},
		{name: "no key configured", presented: testAPIKey, path: "/webhooks/token"},
		{name: "no key configured and none presented", path: "/webhooks/registration"},
		{name: "matching key", configured: testAPIKey, presented: testAPIKey, path: "/webhooks/registration", authorized: true},
		{name: "matching bearer key", configured: testAPIKey, presented: "Bearer " + testAPIKey, path: "/webhooks/registration", authorized: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockService := NewMockServiceInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			if tt.authorized {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
				mockService.EXPECT().HandleRegistration(gomock.Any(), &KratosIdentity{ID: "identity-1"}).Return(nil)
			} else {
				mockLogger.EXPECT().Warnf(gomock.Any(), tt.path)
			}

			body := encodeBody(t, KratosIdentity{ID: "identity-1"})
			w := serveHook(NewAPI(mockService, tt.configured, mockLogger), tt.path, tt.presented, body)

			if tt.authorized {
				assert.Equal(t, http.StatusOK, w.Code)
			} else {
				assert.Equal(t, http.StatusUnauthorized, w.Code)
			}
		})
	}
}

func TestAPI_TokenHook(t *testing.T) {
	orgs := []string{"org-1", "org-2"}

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface)
		expectedStatus int
		expectedOrgs   []interface{}
	}{
		{
			name:        "claims added",
			requestBody: &oauth2.TokenHookRequest{Session: oauth2.NewSession("user-123")},
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				resp := new(TokenHookResponse)
				resp.Session.IDToken = map[string]interface{}{OrganizationsClaim: orgs}
				resp.Session.AccessToken = map[string]interface{}{OrganizationsClaim: orgs}
				mockSvc.EXPECT().HandleTokenHook(gomock.Any(), gomock.Any()).Return(resp, nil)
			},
			expectedStatus: http.StatusOK,
			expectedOrgs:   []interface{}{"org-1", "org-2"},
		},
		{
			name:        "malformed body",
			requestBody: "{",
			setupMocks: func(_ *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "organizations lookup fails",
			requestBody: &oauth2.TokenHookRequest{Session: oauth2.NewSession("user-123")},
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().HandleTokenHook(gomock.Any(), gomock.Any()).Return(nil, errors.New("database down"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockService := NewMockServiceInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			tt.setupMocks(mockService, mockLogger)

			w := serveHook(NewAPI(mockService, testAPIKey, mockLogger), "/webhooks/token", testAPIKey, encodeBody(t, tt.requestBody))

			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedOrgs != nil {
				var result TokenHookResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
				assert.Equal(t, tt.expectedOrgs, result.Session.IDToken[OrganizationsClaim])
				assert.Equal(t, tt.expectedOrgs, result.Session.AccessToken[OrganizationsClaim])
			}
		})
	}
}

// the service is real here so malformed sessions are rejected before any transaction opens
func TestAPI_TokenHookRejectsIncompleteSessions(t *testing.T) {
	tests := []struct {
		name        string
		requestBody interface{}
	}{
		{name: "no session", requestBody: `{}`},
		{name: "no default session", requestBody: `{"session": {"id_token": null}}`},
		{name: "no subject", requestBody: `{"session": {"id_token": {"subject": ""}}}`},
		{name: "no subject from a fresh session", requestBody: &oauth2.TokenHookRequest{Session: oauth2.NewSession("")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockStorage := NewMockStorageInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())

			tx := new(actingTx)
			svc := NewService(mockStorage, tx, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), mockLogger)

			w := serveHook(NewAPI(svc, testAPIKey, mockLogger), "/webhooks/token", testAPIKey, encodeBody(t, tt.requestBody))

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Empty(t, tx.userID, "no transaction may be opened")
		})
	}
}

func TestAPI_Registration(t *testing.T) {
	identity := KratosIdentity{ID: "identity-123", Traits: KratosTraits{Email: "user@example.com"}}

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface)
		expectedStatus int
	}{
		{
			name:        "profile created",
			requestBody: identity,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), "identity-123")
				mockSvc.EXPECT().HandleRegistration(gomock.Any(), &identity).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "malformed body",
			requestBody: "[]",
			setupMocks: func(_ *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "profile upsert fails",
			requestBody: identity,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
				mockSvc.EXPECT().HandleRegistration(gomock.Any(), gomock.Any()).Return(errors.New("database down"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockService := NewMockServiceInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			tt.setupMocks(mockService, mockLogger)

			w := serveHook(NewAPI(mockService, testAPIKey, mockLogger), "/webhooks/registration", testAPIKey, encodeBody(t, tt.requestBody))

			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}
