package metrics

import (
	"net/http"
	"time"

	"github.com/Harshitk-cp/logos/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors of one process. Tests build their own on a
// fresh registry.
type Metrics struct {
	registry *prometheus.Registry

	AnalysesTotal   *prometheus.CounterVec
	AnalysisSeconds prometheus.Histogram
	FallacyTotal    *prometheus.CounterVec
	QualityScore    prometheus.Histogram
	SkippedRules    *prometheus.CounterVec
	TrackerSkipped  prometheus.Gauge
	HistoryLength   prometheus.Gauge
	HTTPRequests    *prometheus.CounterVec
	HTTPErrors      prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		AnalysesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "logos_analyses_total",
				Help: "Queries analysed, by outcome",
			},
			[]string{"status"},
		),
		AnalysisSeconds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "logos_analysis_duration_seconds",
				Help:    "Time spent in the reasoning pipeline",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
		),
		FallacyTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "logos_detections_total",
				Help: "Fallacy and bias detections, by rule id",
			},
			[]string{"rule_id", "category"},
		),
		QualityScore: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "logos_quality_score",
				Help:    "Composite argument quality score",
				Buckets: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1},
			},
		),
		SkippedRules: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "logos_skipped_rules_total",
				Help: "Detection rules skipped after failing to evaluate",
			},
			[]string{"rule_id"},
		),
		TrackerSkipped: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "logos_tracker_skipped_writes",
				Help: "Case records the learning tracker rejected",
			},
		),
		HistoryLength: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "logos_history_length",
				Help: "Case records currently held in memory",
			},
		),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "logos_http_requests_total",
				Help: "HTTP requests served, by status class",
			},
			[]string{"code"},
		),
		HTTPErrors: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "logos_http_errors_total",
				Help: "HTTP responses with status >= 400",
			},
		),
	}

	m.registry.MustRegister(
		m.AnalysesTotal,
		m.AnalysisSeconds,
		m.FallacyTotal,
		m.QualityScore,
		m.SkippedRules,
		m.TrackerSkipped,
		m.HistoryLength,
		m.HTTPRequests,
		m.HTTPErrors,
	)
	return m
}

// Registry exposes the underlying registry for gathering in tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveReport records one finished analysis. A nil receiver is a no-op so
// callers can run without metrics.
func (m *Metrics) ObserveReport(r *domain.AnalysisReport, elapsed time.Duration) {
	if m == nil || r == nil {
		return
	}
	m.AnalysisSeconds.Observe(elapsed.Seconds())
	if r.InputError != "" {
		m.AnalysesTotal.WithLabelValues("invalid_input").Inc()
		return
	}
	m.AnalysesTotal.WithLabelValues("ok").Inc()
	m.QualityScore.Observe(r.Quality.Score)
	for _, d := range r.Detections {
		m.FallacyTotal.WithLabelValues(d.ID, string(d.Category)).Inc()
	}
	for _, id := range r.SkippedRules {
		m.SkippedRules.WithLabelValues(id).Inc()
	}
}

// ObserveTimeout counts a query abandoned at the service deadline.
func (m *Metrics) ObserveTimeout() {
	if m == nil {
		return
	}
	m.AnalysesTotal.WithLabelValues("timeout").Inc()
}

// ObserveStatistics copies tracker gauges from a statistics snapshot.
func (m *Metrics) ObserveStatistics(s domain.Statistics) {
	if m == nil {
		return
	}
	m.HistoryLength.Set(float64(s.HistoryLength))
	m.TrackerSkipped.Set(float64(s.SkippedWrites))
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
