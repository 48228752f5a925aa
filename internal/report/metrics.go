package report

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/psantana5/filesim/internal/simulator"
)

// Metrics are boring counters derived from finished outcomes only.
// Every value can be explained by looking at the outcomes that fed it.
type Metrics struct {
	calls         *prometheus.CounterVec
	errors        *prometheus.CounterVec
	handlesOpened prometheus.Counter
	handlesClosed prometheus.Counter
	cleanups      prometheus.Counter
	duration      prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "filesim_process_calls_total",
				Help: "Process calls by final status",
			},
			[]string{"status"},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "filesim_process_errors_total",
				Help: "Failed process calls by error kind",
			},
			[]string{"kind"},
		),
		handlesOpened: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "filesim_handles_opened_total",
			Help: "Simulated resource handles acquired",
		}),
		handlesClosed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "filesim_handles_closed_total",
			Help: "Simulated resource handles released on the cleanup path",
		}),
		cleanups: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "filesim_cleanups_total",
			Help: "Cleanup stage executions",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "filesim_process_duration_seconds",
			Help:    "Wall time of process calls",
			Buckets: prometheus.ExponentialBuckets(0.00001, 10, 6),
		}),
	}

	reg.MustRegister(m.calls, m.errors, m.handlesOpened, m.handlesClosed, m.cleanups, m.duration)
	return m
}

// RecordOutcome updates every collector from a single outcome.
func (m *Metrics) RecordOutcome(o *simulator.Outcome) {
	m.calls.WithLabelValues(string(o.Status)).Inc()
	if o.Err != nil {
		m.errors.WithLabelValues(o.Err.Kind.String()).Inc()
	}

	if o.HandleAcquired {
		m.handlesOpened.Inc()
	}
	if o.Handle != nil && o.Handle.Status == simulator.HandleClosed {
		m.handlesClosed.Inc()
	}

	m.cleanups.Add(float64(o.CleanupRuns))
	m.duration.Observe(o.Duration.Seconds())
}

// WriteMetrics dumps everything g gathers in the text exposition format.
func WriteMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
