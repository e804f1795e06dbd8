package observability

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/riskibarqy/fpl-livesync/internal/config"
	"github.com/riskibarqy/fpl-livesync/internal/platform/logging"
	"github.com/riskibarqy/fpl-livesync/internal/usecase"
)

const metricsNamespace = "fpl_livesync"

const (
	OutcomeUpdated = "updated"
	OutcomeSkipped = "skipped"
	OutcomeFailed  = "failed"
)

// RunMetrics records pipeline runs into a private registry and, when a
// Pushgateway is configured, pushes the registry after every run.
type RunMetrics struct {
	registry    *prometheus.Registry
	runs        *prometheus.CounterVec
	rows        *prometheus.CounterVec
	duration    prometheus.Histogram
	lastSuccess prometheus.Gauge
	pusher      *push.Pusher
	logger      *logging.Logger
}

var _ usecase.RunRecorder = (*RunMetrics)(nil)

func NewRunMetrics(cfg config.Config, logger *logging.Logger) *RunMetrics {
	if logger == nil {
		logger = logging.Default()
	}

	m := &RunMetrics{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "runs_total",
			Help:      "Pipeline runs by outcome.",
		}, []string{"outcome"}),
		rows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "rows_total",
			Help:      "Rows written by record kind and result.",
		}, []string{"kind", "result"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of one pipeline run.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last run that finished without error.",
		}),
		logger: logger,
	}
	m.registry.MustRegister(m.runs, m.rows, m.duration, m.lastSuccess)

	if url := strings.TrimSpace(cfg.PushgatewayURL); url != "" {
		m.pusher = push.New(url, cfg.ServiceName).
			Gatherer(m.registry).
			Grouping("environment", cfg.AppEnv)
	}

	return m
}

func (m *RunMetrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *RunMetrics) RecordRun(result usecase.RunResult) {
	outcome := RunOutcome(result)
	m.runs.WithLabelValues(outcome).Inc()
	m.duration.Observe(result.Duration().Seconds())
	for _, item := range result.Report.Counts {
		m.rows.WithLabelValues(item.Kind, "succeeded").Add(float64(item.Succeeded))
		m.rows.WithLabelValues(item.Kind, "failed").Add(float64(item.Failed))
	}
	if outcome != OutcomeFailed {
		m.lastSuccess.Set(float64(result.FinishedAt.Unix()))
	}

	if m.pusher == nil {
		return
	}
	if err := m.pusher.Push(); err != nil {
		m.logger.Warn("push run metrics failed", "run_id", result.RunID, "error", err)
	}
}

func RunOutcome(result usecase.RunResult) string {
	switch {
	case result.State != usecase.StateSucceeded:
		return OutcomeFailed
	case result.NoLiveGames():
		return OutcomeSkipped
	default:
		return OutcomeUpdated
	}
}
