// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/project-request/validation"
)

// Metrics holds the intake counters on a dedicated registry.
// It satisfies form.Recorder.
type Metrics struct {
	registry    *prometheus.Registry
	submissions *prometheus.CounterVec
	violations  *prometheus.CounterVec
	navigation  *prometheus.CounterVec
}

// New registers the intake counters and the Go runtime collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "intake_submissions_total",
				Help: "Submission attempts by outcome",
			},
			[]string{"outcome"},
		),
		violations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "intake_validation_errors_total",
				Help: "Rule violations reported on rejected drafts",
			},
			[]string{"field", "kind"},
		),
		navigation: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "intake_step_navigation_total",
				Help: "Step navigation operations",
			},
			[]string{"op"},
		),
	}

	m.registry.MustRegister(
		m.submissions,
		m.violations,
		m.navigation,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) SubmitOutcome(outcome string) {
	m.submissions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ValidationFailed(errs validation.Errors) {
	for field, kind := range errs {
		m.violations.WithLabelValues(field, string(kind)).Inc()
	}
}

func (m *Metrics) Navigated(op string) {
	m.navigation.WithLabelValues(op).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
