// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package teams

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/types"
)

func TestAPI_Endpoints(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:   "list teams",
			method: http.MethodGet,
			path:   "/organizations/" + orgID + "/teams",
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().ListTeams(gomock.Any(), orgID).Return([]*types.Team{{ID: teamID}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "create team",
			method: http.MethodPost,
			path:   "/organizations/" + orgID + "/teams",
			body:   `{"name":"Engineering"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().CreateTeam(gomock.Any(), orgID, &CreateTeamRequest{Name: "Engineering"}).Return(&types.Team{ID: teamID}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "create team with malformed body",
			method:         http.MethodPost,
			path:           "/organizations/" + orgID + "/teams",
			body:           `[`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "get team hidden by row level security",
			method: http.MethodGet,
			path:   "/teams/" + teamID,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().GetTeam(gomock.Any(), teamID).Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "rename team",
			method: http.MethodPatch,
			path:   "/teams/" + teamID,
			body:   `{"name":"Platform"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().RenameTeam(gomock.Any(), teamID, &RenameTeamRequest{Name: "Platform"}).Return(&types.Team{ID: teamID}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "delete team forbidden",
			method: http.MethodDelete,
			path:   "/teams/" + teamID,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().DeleteTeam(gomock.Any(), teamID).Return(storage.ErrPermissionDenied)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "permission check",
			method: http.MethodGet,
			path:   "/teams/" + teamID + "/permissions/check?resource=posts&action=view",
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().CheckPermission(gomock.Any(), teamID, "posts", "view").Return(false, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockService)

			mux := chi.NewMux()
			NewAPI(mockService, logging.NewNoopLogger()).RegisterEndpoints(mux)

			var body io.Reader
			if tt.body != "" {
				body = bytes.NewBufferString(tt.body)
			}

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, body))

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d. Body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
