// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/workspace-service/internal/logging"
)

type Monitor struct {
	service string

	responseTime *prometheus.HistogramVec
	dependencies *prometheus.GaugeVec
	cacheLookups *prometheus.CounterVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.responseTime.With(tags).Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencies == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.dependencies.With(tags).Set(value)

	return nil
}

func (m *Monitor) IncCacheLookup(tags map[string]string) error {
	if m.cacheLookups == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.cacheLookups.With(tags).Inc()

	return nil
}

func (m *Monitor) registerHistograms() {
	m.responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "http_response_time_seconds",
			Help:        "http_response_time_seconds",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"route", "status"},
	)

	if err := prometheus.Register(m.responseTime); err != nil {
		m.logger.Debugf("response time metric already registered: %v", err)
	}
}

func (m *Monitor) registerGauges() {
	m.dependencies = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name:        "dependency_available",
			Help:        "dependency_available",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"component"},
	)

	if err := prometheus.Register(m.dependencies); err != nil {
		m.logger.Debugf("dependency metric already registered: %v", err)
	}
}

func (m *Monitor) registerCounters() {
	m.cacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "cache_lookups_total",
			Help:        "cache_lookups_total",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"backend", "result"},
	)

	if err := prometheus.Register(m.cacheLookups); err != nil {
		m.logger.Debugf("cache lookup metric already registered: %v", err)
	}
}

func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerHistograms()
	m.registerGauges()
	m.registerCounters()

	return m
}
