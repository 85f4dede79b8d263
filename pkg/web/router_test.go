// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/workspace-service/internal/cache"
	"github.com/canonical/workspace-service/internal/db"
	"github.com/canonical/workspace-service/internal/email"
	"github.com/canonical/workspace-service/internal/identity"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/pkg/authentication"
	"github.com/canonical/workspace-service/pkg/invitations"
)

const (
	userID        = "0190f1a2-0000-7000-8000-0000000000aa"
	webhookAPIKey = "hook-secret"
)

func newTestRouter(t *testing.T) (http.Handler, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test")
	logger := logging.NewNoopLogger()

	dbClient := db.NewDBClientWithConn(conn, db.Config{SessionRole: "authenticated", SessionUser: authentication.GetUserID}, tracer, monitor, logger)

	router := NewRouter(
		Config{CORSOrigins: []string{"*"}, Invitations: invitations.Config{SiteURL: "http://localhost:3000"}, WebhookAPIKey: webhookAPIKey},
		storage.NewStorage(dbClient, tracer, monitor, logger),
		dbClient,
		cache.NewNoopCache(),
		email.NewNoopProvider(logger),
		nil,
		authentication.NewMiddleware(authentication.NewNoopVerifier(), "access_token", tracer, monitor, logger),
		tracer,
		monitor,
		logger,
	)

	return router, mock
}

func TestRouterSessionHandling(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		user           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "status is public",
			method:         http.MethodGet,
			path:           "/api/v0/status",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "versioned api requires a user",
			method:         http.MethodGet,
			path:           "/api/v0/organizations",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "account deletion without a session",
			method:         http.MethodPost,
			path:           "/api/delete-account",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Unauthorized"}`,
		},
		{
			name:           "revalidation without a tag",
			method:         http.MethodPost,
			path:           "/api/revalidate-tag",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Tag is required"}`,
		},
		{
			name:           "matrix with identity header",
			method:         http.MethodGet,
			path:           "/api/v0/permissions/matrix?scope=team",
			user:           userID,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed identity header is anonymous",
			method:         http.MethodGet,
			path:           "/api/v0/permissions/matrix",
			user:           "'; DROP TABLE profiles; --",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mock := newTestRouter(t)

			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			if tt.user != "" {
				req.Header.Set(identity.HeaderName, tt.user)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRouterRegistrationWebhookActsAsSubject(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SELECT set_config($1, $2, true)")).
		WithArgs("app.current_user_id", userID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`SET LOCAL ROLE "authenticated"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("INSERT INTO profiles").
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "user_name"}).AddRow(userID, "Ada", nil, nil))
	mock.ExpectCommit()

	body := `{"id":"` + userID + `","traits":{"email":"ada@example.com","name":{"first":"Ada"}}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v0/webhooks/registration", bytes.NewBufferString(body))
	req.Header.Set("Authorization", webhookAPIKey)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouterWebhooksRejectUnauthenticatedCalls(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		header string
		body   string
	}{
		{
			name: "registration without key",
			path: "/api/v0/webhooks/registration",
			body: `{"id":"` + userID + `"}`,
		},
		{
			name:   "registration with the session identity header only",
			path:   "/api/v0/webhooks/registration",
			header: identity.HeaderName,
			body:   `{"id":"` + userID + `"}`,
		},
		{
			name:   "token hook with a wrong key",
			path:   "/api/v0/webhooks/token",
			header: "Authorization",
			body:   `{"session":{"id_token":{"subject":"` + userID + `"}}}`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			router, mock := newTestRouter(t)

			req := httptest.NewRequest(http.MethodPost, test.path, bytes.NewBufferString(test.body))
			if test.header != "" {
				req.Header.Set(test.header, userID)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.NoError(t, mock.ExpectationsWereMet(), "no transaction may be opened")
		})
	}
}
