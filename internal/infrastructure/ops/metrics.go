// Package ops exposes the operational surface of the orchestrator: health
// and readiness endpoints and Prometheus metrics.
package ops

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the orchestrator's Prometheus collectors.
type Metrics struct {
	requestsProcessed *prometheus.CounterVec
	caseUpdateRetries prometheus.Counter
	compensations     prometheus.Counter
}

// NewMetrics creates and registers the collectors on the registry.
func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		requestsProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hearing_requests_processed_total",
			Help: "Hearing requests processed, by requested state and outcome.",
		}, []string{"state", "outcome"}),
		caseUpdateRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hearing_case_update_retries_total",
			Help: "Case update submits retried after a version conflict or store failure.",
		}),
		compensations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hearing_compensating_cancels_total",
			Help: "Compensating hearing cancellations issued after exhausted case-update retries.",
		}),
	}
	registry.MustRegister(m.requestsProcessed, m.caseUpdateRetries, m.compensations)
	return m
}

// RequestProcessed records one processed hearing request. An empty state is
// recorded as "unknown".
func (m *Metrics) RequestProcessed(state, outcome string) {
	if state == "" {
		state = "unknown"
	}
	m.requestsProcessed.WithLabelValues(state, outcome).Inc()
}

// CaseUpdateRetried records one retried case-update submit.
func (m *Metrics) CaseUpdateRetried() {
	m.caseUpdateRetries.Inc()
}

// CompensationIssued records one compensating cancellation.
func (m *Metrics) CompensationIssued() {
	m.compensations.Inc()
}
