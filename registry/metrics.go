// SPDX-License-Identifier: MIT
// Package: geomlib/registry
//
// metrics.go — Prometheus counters for shape creation.

package registry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Rejection reasons used as the "reason" label.
const (
	ReasonUnknownKind       = "unknown_kind"
	ReasonInvalidParameters = "invalid_parameters"
)

// Metrics counts registry outcomes per kind.
type Metrics struct {
	Created  *prometheus.CounterVec
	Rejected *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them with reg.
// Pass prometheus.DefaultRegisterer in production and a fresh
// prometheus.NewRegistry() in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Created: f.NewCounterVec(prometheus.CounterOpts{
			Name: "geomlib_shapes_created_total",
			Help: "Total number of shapes created through the registry",
		}, []string{"kind"}),
		Rejected: f.NewCounterVec(prometheus.CounterOpts{
			Name: "geomlib_shapes_rejected_total",
			Help: "Total number of CreateShape calls that failed, by reason",
		}, []string{"kind", "reason"}),
	}
}

// observeCreated is nil-safe so callers need no metrics guard.
func (m *Metrics) observeCreated(kind string) {
	if m == nil {
		return
	}
	m.Created.WithLabelValues(kind).Inc()
}

func (m *Metrics) observeRejected(kind, reason string) {
	if m == nil {
		return
	}
	m.Rejected.WithLabelValues(kind, reason).Inc()
}
