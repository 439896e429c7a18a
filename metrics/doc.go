// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics exposes intake counters for Prometheus.

Counters:

  - intake_submissions_total{outcome}: accepted, invalid, failed, pending
  - intake_validation_errors_total{field,kind}: one per rule violation
  - intake_step_navigation_total{op}: next, previous, goto

A Metrics value is passed to form orchestrators as their Recorder and its
Handler is mounted at /metrics.
*/
package metrics
