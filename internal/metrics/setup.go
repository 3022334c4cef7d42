package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry and the HTTP server that
// exposes it. The registry is isolated per service instance so metric names
// never collide with anything else running in the process.
type Metrics struct {
	// Server is the HTTP server exposing the /metrics endpoint.
	Server *http.Server

	// Registry is the Prometheus registry all collectors are registered on.
	Registry *prometheus.Registry

	// Core built-in metrics for the insight pipeline.
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	cacheEvents     *prometheus.CounterVec
	fallbacks       *prometheus.CounterVec
	translations    *prometheus.CounterVec
}

// NewMetrics initializes the metrics registry and HTTP server.
//
// A constant service="<cfg.ServiceName>" label is wrapped around the
// registry so every emitted metric can be aggregated per service. The
// built-in collectors cover the request surface (count, latency), cache
// hit/miss traffic, provider fallbacks and translation outcomes; anything
// more specific goes through the Create* factories.
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{Address: ":9090", ServiceName: "astro-insight"})
//	go m.Server.ListenAndServe()
//
// Metrics are then scrapeable at http://localhost:9090/metrics.
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry: registry,
	}

	m.requestsTotal = createCounterVec("requests_total", "Total number of processed HTTP requests", []string{"route", "status"})
	m.requestDuration = createHistogramVec("request_duration_seconds", "Duration of HTTP requests in seconds", []string{"route"}, prometheus.DefBuckets)
	m.cacheEvents = createCounterVec("cache_events_total", "Daily-insight cache events by outcome", []string{"event"})
	m.fallbacks = createCounterVec("fallbacks_total", "Degraded-fallback activations by pipeline stage", []string{"stage"})
	m.translations = createCounterVec("translations_total", "Translation attempts by language and outcome", []string{"language", "outcome"})

	wrappedRegistry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.cacheEvents,
		m.fallbacks,
		m.translations,
	)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: handler,
	}

	return m
}
