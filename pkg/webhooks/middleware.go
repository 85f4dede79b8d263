// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"crypto/subtle"
	"net/http"
	"strings"

	httptypes "github.com/canonical/workspace-service/internal/http/types"
)

// APIKeyHeader carries the shared secret Kratos and Hydra send with every hook call
const APIKeyHeader = "Authorization"

// requireAPIKey rejects hook calls that do not present the configured key, a missing
// key configuration rejects every call
func (a *API) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		presented := strings.TrimSpace(r.Header.Get(APIKeyHeader))
		presented = strings.TrimSpace(strings.TrimPrefix(presented, "Bearer "))

		if a.apiKey == "" || presented == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(a.apiKey)) != 1 {
			a.logger.Warnf("rejected webhook call to %s without a valid api key", r.URL.Path)
			httptypes.WriteError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		next.ServeHTTP(w, r)
	})
}
