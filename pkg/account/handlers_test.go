// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/pkg/authentication"
)

func TestAPI_Endpoints(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		ctx            context.Context
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "delete account without a session",
			method:         http.MethodPost,
			path:           "/delete-account",
			ctx:            context.Background(),
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Unauthorized"}`,
		},
		{
			name:   "delete account",
			method: http.MethodPost,
			path:   "/delete-account",
			ctx:    userCtx(),
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().DeleteAccount(gomock.Any()).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true}`,
		},
		{
			name:   "delete account downstream failure",
			method: http.MethodPost,
			path:   "/delete-account",
			ctx:    userCtx(),
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().DeleteAccount(gomock.Any()).Return(errors.New("kratos unavailable"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"kratos unavailable"}`,
		},
		{
			name:   "get profile",
			method: http.MethodGet,
			path:   "/profile",
			ctx:    userCtx(),
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().GetProfile(gomock.Any()).Return(&types.Profile{ID: userID}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "get profile without user",
			method: http.MethodGet,
			path:   "/profile",
			ctx:    context.Background(),
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().GetProfile(gomock.Any()).Return(nil, ErrNoUser)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "update profile",
			method: http.MethodPatch,
			path:   "/profile",
			body:   `{"first_name":"Ada"}`,
			ctx:    userCtx(),
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().UpdateProfile(gomock.Any(), &UpdateProfileRequest{FirstName: strPtr("Ada")}).Return(&types.Profile{ID: userID}, nil)
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
			api := NewAPI(mockService, logging.NewNoopLogger())
			api.RegisterEndpoints(mux)
			api.RegisterV0Endpoints(mux)

			var body io.Reader
			if tt.body != "" {
				body = bytes.NewBufferString(tt.body)
			}

			req := httptest.NewRequest(tt.method, tt.path, body).WithContext(tt.ctx)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestDeleteAccountWithAuthenticatedSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().DeleteAccount(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		id, ok := authentication.GetUserID(ctx)
		assert.True(t, ok)
		assert.Equal(t, userID, id)
		return nil
	})

	mux := chi.NewMux()
	NewAPI(mockService, logging.NewNoopLogger()).RegisterEndpoints(mux)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/delete-account", nil).WithContext(userCtx()))
	assert.Equal(t, http.StatusOK, w.Code)
}
