package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Cache event and fallback stage label values used across the service.
const (
	EventHit   = "hit"
	EventMiss  = "miss"
	EventClear = "clear"

	StageGeneration   = "generation"
	StageTranslation  = "translation"
	StageVectorSearch = "vector_search"

	OutcomeApplied     = "applied"
	OutcomePassthrough = "passthrough"
	OutcomeFailed      = "failed"
)

// IncrementRequests increments the request counter for a route/status pair.
// Example: metrics.IncrementRequests("/predict", "200")
func (m *Metrics) IncrementRequests(route, status string) {
	m.requestsTotal.WithLabelValues(route, status).Inc()
}

// RecordRequestDuration records the duration (in seconds) for a route.
// Example: defer metrics.RecordRequestDuration(time.Now(), "/predict")
func (m *Metrics) RecordRequestDuration(start time.Time, route string) {
	duration := time.Since(start).Seconds()
	m.requestDuration.WithLabelValues(route).Observe(duration)
}

// IncrementCacheEvent counts a daily-insight cache event.
func (m *Metrics) IncrementCacheEvent(event string) {
	m.cacheEvents.WithLabelValues(event).Inc()
}

// IncrementFallback counts a degraded fallback for a pipeline stage.
func (m *Metrics) IncrementFallback(stage string) {
	m.fallbacks.WithLabelValues(stage).Inc()
}

// IncrementTranslation counts a translation attempt outcome.
func (m *Metrics) IncrementTranslation(language, outcome string) {
	m.translations.WithLabelValues(language, outcome).Inc()
}

// CreateCounter creates a new CounterVec metric and registers it.
func (m *Metrics) CreateCounter(name, help string, labels []string) *prometheus.CounterVec {
	counter := createCounterVec(name, help, labels)
	m.Registry.MustRegister(counter)
	return counter
}

// CreateHistogram creates a new HistogramVec metric and registers it.
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	hist := createHistogramVec(name, help, labels, buckets)
	m.Registry.MustRegister(hist)
	return hist
}

// CreateGauge creates a new GaugeVec metric and registers it.
func (m *Metrics) CreateGauge(name, help string, labels []string) *prometheus.GaugeVec {
	gauge := createGaugeVec(name, help, labels)
	m.Registry.MustRegister(gauge)
	return gauge
}

func createCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}

func createHistogramVec(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    name,
			Help:    help,
			Buckets: buckets,
		},
		labels,
	)
}

func createGaugeVec(name, help string, labels []string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}
