// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/workspace-service/internal/http/types"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/version"
)

const readinessTimeout = 3 * time.Second

type Status struct {
	Status    string `json:"status"`
	BuildInfo string `json:"buildInfo,omitempty"`
}

type Version struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version,omitempty"`
}

type API struct {
	db PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(db PingerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		db:      db,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/status", a.alive)
	mux.Get("/ready", a.ready)
	mux.Get("/version", a.version)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	status := Status{Status: "ok"}
	if info, ok := debug.ReadBuildInfo(); ok {
		status.BuildInfo = info.Main.Version
	}

	httptypes.WriteJSON(w, http.StatusOK, status)
}

func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	if a.db != nil {
		ctx, cancel := context.WithTimeout(ctx, readinessTimeout)
		defer cancel()

		if err := a.db.Ping(ctx); err != nil {
			a.logger.Errorf("database not ready: %v", err)
			httptypes.WriteJSON(w, http.StatusServiceUnavailable, Status{Status: "unavailable"})
			return
		}
	}

	httptypes.WriteJSON(w, http.StatusOK, Status{Status: "ok"})
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	v := Version{Version: version.Version}
	if info, ok := debug.ReadBuildInfo(); ok {
		v.GoVersion = info.GoVersion
	}

	httptypes.WriteJSON(w, http.StatusOK, v)
}
