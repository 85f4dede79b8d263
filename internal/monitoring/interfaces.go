// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package monitoring

// MonitorInterface records the service metrics exposed on /api/v0/metrics
type MonitorInterface interface {
	GetService() string
	// SetResponseTimeMetric observes a request duration, tags are route and status
	SetResponseTimeMetric(map[string]string, float64) error
	// SetDependencyAvailability sets 1 or 0 for a component such as database or redis
	SetDependencyAvailability(map[string]string, float64) error
	// IncCacheLookup counts a query cache read, tags are backend and result
	IncCacheLookup(map[string]string) error
}
