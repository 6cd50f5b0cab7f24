// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the prometheus collectors of twconfig. All
// collectors are registered on the default registry and exposed by the
// /metrics route.
package metrics

import (
	"errors"

	"github.com/MKhiriev/go-tw-config/internal/document"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Load results.
const (
	ResultSuccess   = "success"
	ResultMalformed = "malformed"
	ResultError     = "error"
)

var (
	DocumentLoadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "twconfig_document_loads_total",
		Help: "Total number of document loads by trigger and result",
	}, []string{"trigger", "result"})

	DocumentContentGlobs = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "twconfig_document_content_globs",
		Help: "Number of content globs in the current document",
	})

	DocumentPlugins = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "twconfig_document_plugins",
		Help: "Number of plugins in the current document",
	})

	DocumentLastLoadTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "twconfig_document_last_load_timestamp_seconds",
		Help: "Unix time of the last successful document load",
	})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "twconfig_http_requests_total",
		Help: "Total number of HTTP requests by route pattern, method and status code",
	}, []string{"route", "method", "code"})
)

// ResultOf classifies a load error for the result label.
func ResultOf(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case errors.Is(err, document.ErrMalformedConfig):
		return ResultMalformed
	default:
		return ResultError
	}
}

// RecordLoad counts one load attempt.
func RecordLoad(trigger string, err error) {
	if trigger == "" {
		trigger = "unknown"
	}
	DocumentLoadsTotal.WithLabelValues(trigger, ResultOf(err)).Inc()
}

// SetDocumentShape publishes the sizes of a freshly loaded document.
func SetDocumentShape(contentGlobs, plugins int) {
	DocumentContentGlobs.Set(float64(contentGlobs))
	DocumentPlugins.Set(float64(plugins))
	DocumentLastLoadTimestamp.SetToCurrentTime()
}
