// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	httptypes "github.com/canonical/workspace-service/internal/http/types"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/pkg/permissions"
)

func TestAPI_Endpoints(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		validateResp   func(*testing.T, *httptypes.Response)
	}{
		{
			name:   "matrix for team scope",
			method: http.MethodGet,
			path:   "/permissions/matrix?scope=team",
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().Matrix(types.RoleScopeTeam).Return(permissions.Resources(types.RoleScopeTeam), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "list roles filtered by scope",
			method: http.MethodGet,
			path:   "/organizations/" + orgID + "/roles?scope=organization",
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().ListRoles(gomock.Any(), orgID, types.RoleScopeOrganization).Return([]*types.Role{{ID: orgRoleID}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "list roles for teams",
			method: http.MethodGet,
			path:   "/organizations/" + orgID + "/roles?team_ids=a,b",
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().ListRolesForTeams(gomock.Any(), []string{"a", "b"}).Return([]*types.Role{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "create role",
			method: http.MethodPost,
			path:   "/organizations/" + orgID + "/roles",
			body:   `{"name":"admins","scope":"organization"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().CreateRole(gomock.Any(), orgID, &CreateRoleRequest{Name: "admins", Scope: types.RoleScopeOrganization}).
					Return(&types.Role{ID: orgRoleID}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "create role with malformed body",
			method:         http.MethodPost,
			path:           "/organizations/" + orgID + "/roles",
			body:           `{"name":`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "get missing role",
			method: http.MethodGet,
			path:   "/roles/missing",
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().GetRole(gomock.Any(), "missing").Return(nil, fmt.Errorf("failed to get role: %w", storage.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "replace permissions",
			method: http.MethodPut,
			path:   "/roles/" + teamRoleID + "/permissions",
			body:   `{"permissions":[{"resource":"posts","action":"view","scope":"own"}]}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().ReplacePermissions(gomock.Any(), teamRoleID, []permissions.Assignment{
					{Resource: "posts", Action: "view", Scope: types.PermissionScopeOwn},
				}).Return([]*types.RolePermission{{Resource: "posts", Action: "view", Scope: types.PermissionScopeOwn}}, nil)
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, resp *httptypes.Response) {
				data, ok := resp.Data.([]interface{})
				if !ok || len(data) != 1 {
					t.Errorf("expected one permission in response, got %v", resp.Data)
				}
			},
		},
		{
			name:   "replace permissions rejected",
			method: http.MethodPut,
			path:   "/roles/" + teamRoleID + "/permissions",
			body:   `{"permissions":[{"resource":"billing","action":"view"}]}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().ReplacePermissions(gomock.Any(), teamRoleID, gomock.Any()).
					Return(nil, &httptypes.BadRequestError{Err: permissions.ErrNotOffered})
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "delete role downstream failure",
			method: http.MethodDelete,
			path:   "/roles/" + orgRoleID,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().DeleteRole(gomock.Any(), orgRoleID).Return(errors.New("connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
			validateResp: func(t *testing.T, resp *httptypes.Response) {
				if resp.Message != "connection reset" {
					t.Errorf("expected the raw error message, got %q", resp.Message)
				}
			},
		},
		{
			name:   "editor",
			method: http.MethodGet,
			path:   "/roles/" + orgRoleID + "/editor",
			setupMocks: func(m *MockServiceInterface) {
				role := &types.Role{ID: orgRoleID, Scope: types.RoleScopeOrganization}
				m.EXPECT().GetEditor(gomock.Any(), orgRoleID).Return(&EditorView{
					Role:    role,
					Columns: permissions.Columns(),
					Rows:    permissions.NewEditor(role, nil).Rows(),
				}, nil)
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

			req := httptest.NewRequest(tt.method, tt.path, body)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedStatus {
				raw, _ := io.ReadAll(res.Body)
				t.Fatalf("expected status %d, got %d. Body: %s", tt.expectedStatus, res.StatusCode, string(raw))
			}

			if tt.validateResp != nil {
				var resp httptypes.Response
				if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				tt.validateResp(t, &resp)
			}
		})
	}
}
