// Package metrics exposes bridge counters to Prometheus.
//
// A nil *Metrics is valid and records nothing, so components take one
// unconditionally.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lowpan-mt/mt-go/pkg/mt"
	"github.com/lowpan-mt/mt-go/pkg/wire"
)

const namespace = "mtbridge"

// Fragment events.
const (
	FragmentSent     = "sent"
	FragmentResent   = "resent"
	FragmentAborted  = "aborted"
	FragmentReceived = "received"
	FragmentRejected = "rejected"
)

// Metrics holds the bridge collectors.
type Metrics struct {
	registry *prometheus.Registry

	frames    *prometheus.CounterVec
	statuses  *prometheus.CounterVec
	fragments *prometheus.CounterVec
	callbacks *prometheus.CounterVec
	drops     prometheus.Counter
	dispatch  *prometheus.HistogramVec
}

// New creates the collectors and registers them in a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		frames: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "frames",
				Name:      "total",
				Help:      "MT frames crossing the link.",
			},
			[]string{"direction", "type", "subsystem"},
		),
		statuses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "rpc",
				Name:      "status_total",
				Help:      "Status-only responses by status.",
			},
			[]string{"status"},
		),
		fragments: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "fragments",
				Name:      "total",
				Help:      "Fragment blocks by event.",
			},
			[]string{"event"},
		),
		callbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "callbacks",
				Name:      "total",
				Help:      "Engine callbacks by routing outcome.",
			},
			[]string{"outcome"},
		),
		drops: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "callbacks",
				Name:      "handoff_drops_total",
				Help:      "Engine events dropped because the handoff queue was full.",
			},
		),
		dispatch: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "rpc",
				Name:      "dispatch_duration_seconds",
				Help:      "Time spent handling one request.",
				Buckets:   []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1},
			},
			[]string{"subsystem"},
		),
	}
	m.registry.MustRegister(
		m.frames, m.statuses, m.fragments, m.callbacks, m.drops, m.dispatch,
		prometheus.NewGoCollector(),
	)
	return m
}

// Registry returns the registry holding the bridge collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordFrame counts one frame. direction is "in" or "out".
func (m *Metrics) RecordFrame(direction string, f mt.Frame) {
	if m == nil {
		return
	}
	m.frames.WithLabelValues(direction, f.Type.String(), f.Subsystem.String()).Inc()
}

// RecordStatus counts one status-only response.
func (m *Metrics) RecordStatus(s wire.Status) {
	if m == nil {
		return
	}
	m.statuses.WithLabelValues(s.String()).Inc()
}

// RecordFragment counts one fragment event.
func (m *Metrics) RecordFragment(event string) {
	if m == nil {
		return
	}
	m.fragments.WithLabelValues(event).Inc()
}

// RecordCallback counts an engine callback as emitted or suppressed.
func (m *Metrics) RecordCallback(emitted bool) {
	if m == nil {
		return
	}
	outcome := "suppressed"
	if emitted {
		outcome = "emitted"
	}
	m.callbacks.WithLabelValues(outcome).Inc()
}

// RecordDrop counts an engine event lost at the handoff.
func (m *Metrics) RecordDrop() {
	if m == nil {
		return
	}
	m.drops.Inc()
}

// ObserveDispatch records how long a request took to handle.
func (m *Metrics) ObserveDispatch(sub mt.Subsystem, d time.Duration) {
	if m == nil {
		return
	}
	m.dispatch.WithLabelValues(sub.String()).Observe(d.Seconds())
}
