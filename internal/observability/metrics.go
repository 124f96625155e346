package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "ats"

// Metrics holds the scoring counters and histograms on a private registry
type Metrics struct {
	registry *prometheus.Registry

	scores           *prometheus.CounterVec
	scoreValues      *prometheus.HistogramVec
	failures         prometheus.Counter
	analyzerDuration *prometheus.HistogramVec
	fallbacks        prometheus.Counter
	semantic         *prometheus.CounterVec
}

// NewMetrics creates and registers the engine metrics
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		scores: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scores_total",
			Help:      "Resumes scored, by scoring method.",
		}, []string{"method"}),
		scoreValues: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "score_value",
			Help:      "Distribution of final resume scores.",
			Buckets:   prometheus.LinearBuckets(0, 10, 11),
		}, []string{"method"}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "score_failures_total",
			Help:      "Scoring requests that returned an error result.",
		}),
		analyzerDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analyzer_duration_seconds",
			Help:      "Time spent in each analyzer.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"analyzer"}),
		fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "similarity_fallbacks_total",
			Help:      "Comparisons that fell back to simple keyword matching.",
		}),
		semantic: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "semantic_adjustments_total",
			Help:      "Semantic adjustment attempts, by outcome.",
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(m.scores, m.scoreValues, m.failures, m.analyzerDuration, m.fallbacks, m.semantic)
	return m
}

// Registry exposes the underlying registry for gathering or serving
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveScore records a successful score
func (m *Metrics) ObserveScore(method string, score float64) {
	if m == nil {
		return
	}
	m.scores.WithLabelValues(method).Inc()
	m.scoreValues.WithLabelValues(method).Observe(score)
}

// ObserveFailure records a request that produced an error result
func (m *Metrics) ObserveFailure() {
	if m == nil {
		return
	}
	m.failures.Inc()
}

// ObserveAnalyzer records how long one analyzer ran
func (m *Metrics) ObserveAnalyzer(analyzer string, d time.Duration) {
	if m == nil {
		return
	}
	m.analyzerDuration.WithLabelValues(analyzer).Observe(d.Seconds())
}

// ObserveFallback records a simple-keyword fallback
func (m *Metrics) ObserveFallback() {
	if m == nil {
		return
	}
	m.fallbacks.Inc()
}

// ObserveSemantic records one semantic adjustment outcome
func (m *Metrics) ObserveSemantic(outcome string) {
	if m == nil {
		return
	}
	m.semantic.WithLabelValues(outcome).Inc()
}

// WriteToTextfile writes the registry in the text exposition format, for node_exporter's textfile collector.
func (m *Metrics) WriteToTextfile(path string) error {
	if m == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}
