package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector abstracts the metric operations the rest of the service uses.
// Implemented by the concrete *Metrics type; handlers and pipeline stages
// depend on this interface so tests can substitute a no-op.
type Collector interface {
	// IncrementRequests increments the request counter for a route/status pair.
	IncrementRequests(route, status string)

	// RecordRequestDuration records elapsed time since start for a route.
	RecordRequestDuration(start time.Time, route string)

	// IncrementCacheEvent counts a daily-insight cache event ("hit", "miss", "clear").
	IncrementCacheEvent(event string)

	// IncrementFallback counts a degraded fallback for a pipeline stage.
	IncrementFallback(stage string)

	// IncrementTranslation counts a translation attempt outcome for a language.
	IncrementTranslation(language, outcome string)

	// Dynamic metric factories.

	// CreateCounter creates and registers a new CounterVec.
	CreateCounter(name, help string, labels []string) *prometheus.CounterVec

	// CreateHistogram creates and registers a new HistogramVec.
	CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec

	// CreateGauge creates and registers a new GaugeVec.
	CreateGauge(name, help string, labels []string) *prometheus.GaugeVec
}
