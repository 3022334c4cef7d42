package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/razzzeeev/astro/internal/cache"
	"github.com/razzzeeev/astro/internal/corpus"
	"github.com/razzzeeev/astro/internal/insight"
	"github.com/razzzeeev/astro/internal/llm"
	"github.com/razzzeeev/astro/internal/logger"
	"github.com/razzzeeev/astro/internal/metrics"
	"github.com/razzzeeev/astro/internal/tracer"
	"github.com/razzzeeev/astro/internal/translate"
	"github.com/razzzeeev/astro/internal/vectorstore"
	"github.com/razzzeeev/astro/internal/zodiac"
)

type stubSearcher struct{}

func (stubSearcher) Search(context.Context, string, zodiac.Sign, int) ([]vectorstore.Match, error) {
	return nil, nil
}

type stubGenerator struct{ text string }

func (g stubGenerator) Generate(context.Context, llm.GenerateInput) llm.Generation {
	return llm.Generation{Text: g.text, Source: llm.SourceModel}
}

type stubTranslator struct{ applied bool }

func (s stubTranslator) Translate(_ context.Context, text, lang string) (translate.Translation, error) {
	if !s.applied {
		return translate.Translation{Text: text, Language: translate.DefaultLanguage}, nil
	}
	return translate.Translation{Text: "translated: " + text, Language: lang, Applied: true}, nil
}

type countingCollector struct {
	requests    map[string]int
	durations   map[string]int
	cacheEvents map[string]int
}

func newCountingCollector() *countingCollector {
	return &countingCollector{
		requests:    map[string]int{},
		durations:   map[string]int{},
		cacheEvents: map[string]int{},
	}
}

func (c *countingCollector) IncrementRequests(route, status string) {
	c.requests[route+" "+status]++
}
func (c *countingCollector) RecordRequestDuration(_ time.Time, route string) { c.durations[route]++ }
func (c *countingCollector) IncrementCacheEvent(event string)                { c.cacheEvents[event]++ }
func (c *countingCollector) IncrementFallback(string)                        {}
func (c *countingCollector) IncrementTranslation(string, string)             {}

func (c *countingCollector) CreateCounter(string, string, []string) *prometheus.CounterVec {
	return nil
}
func (c *countingCollector) CreateHistogram(string, string, []string, []float64) *prometheus.HistogramVec {
	return nil
}
func (c *countingCollector) CreateGauge(string, string, []string) *prometheus.GaugeVec { return nil }

type apiHarness struct {
	server    *Server
	cache     *cache.Cache
	collector *countingCollector
}

func newTestServer(t *testing.T, translator insight.Translator) *apiHarness {
	t.Helper()

	log := logger.NewLoggerClient(logger.Config{Level: logger.Error, ServiceName: "httpapi-test"})
	corp, err := corpus.NewCorpus(corpus.Config{}, log)
	require.NoError(t, err)

	store := cache.NewCache()
	tr := tracer.NewClient(tracer.Config{ServiceName: "httpapi-test", AppEnv: "test"}, log)
	collector := newCountingCollector()

	svc := insight.NewService(insight.ServiceParams{
		Cache:      store,
		Corpus:     corp,
		Searcher:   stubSearcher{},
		Generator:  stubGenerator{text: "the stars favor patience today"},
		Translator: translator,
		Metrics:    collector,
		Tracer:     tr,
		Logger:     log,
	})

	srv := NewServer(ServerParams{
		Config:   Config{Address: ":0"},
		Insights: svc,
		Cache:    store,
		Metrics:  collector,
		Tracer:   tr,
		Logger:   log,
	})
	return &apiHarness{server: srv, cache: store, collector: collector}
}

func (h *apiHarness) do(method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.server.engine.ServeHTTP(w, req)
	return w
}

const leoBody = `{"name": "Asha", "birth_date": "1995-08-20", "birth_place": "Bengaluru"}`

func TestPredictReturnsInsight(t *testing.T) {
	h := newTestServer(t, stubTranslator{})

	w := h.do(http.MethodPost, "/predict", leoBody)
	require.Equal(t, http.StatusOK, w.Code)

	var res predictResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, zodiac.Leo, res.Zodiac)
	assert.Equal(t, "the stars favor patience today", res.Insight)
	assert.Equal(t, "en", res.Language)
	assert.False(t, res.CacheHit)
	assert.Equal(t, llm.SourceModel, res.Source)

	_, err := uuid.Parse(res.UserID)
	assert.NoError(t, err, "missing user_id is auto-generated")
	require.NotNil(t, res.UserScore)
	assert.Equal(t, 1.0, *res.UserScore)
}

func TestPredictSecondCallHitsCache(t *testing.T) {
	h := newTestServer(t, stubTranslator{})

	first := h.do(http.MethodPost, "/predict", leoBody)
	require.Equal(t, http.StatusOK, first.Code)

	second := h.do(http.MethodPost, "/predict", leoBody)
	require.Equal(t, http.StatusOK, second.Code)

	var res predictResponse
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &res))
	assert.True(t, res.CacheHit)
	assert.Equal(t, "the stars favor patience today", res.Insight)
}

func TestPredictRejectsMalformedJSON(t *testing.T) {
	h := newTestServer(t, stubTranslator{})

	w := h.do(http.MethodPost, "/predict", `{"name": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestPredictRejectsMissingRequiredFields(t *testing.T) {
	h := newTestServer(t, stubTranslator{})

	w := h.do(http.MethodPost, "/predict", `{"name": "Asha"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPredictRejectsInvalidDate(t *testing.T) {
	h := newTestServer(t, stubTranslator{})

	w := h.do(http.MethodPost, "/predict", `{"name": "Asha", "birth_date": "20/08/1995"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestPredictRejectsUnsupportedLanguage(t *testing.T) {
	h := newTestServer(t, stubTranslator{})

	w := h.do(http.MethodPost, "/predict?language=fr", leoBody)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPredictTranslatesWhenRequested(t *testing.T) {
	h := newTestServer(t, stubTranslator{applied: true})

	w := h.do(http.MethodPost, "/predict?language=hi", leoBody)
	require.Equal(t, http.StatusOK, w.Code)

	var res predictResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "translated: the stars favor patience today", res.Insight)
	assert.Equal(t, "hi", res.Language)
}

func TestGeneratedUserIDFetchesProfile(t *testing.T) {
	h := newTestServer(t, stubTranslator{})

	w := h.do(http.MethodPost, "/predict", leoBody)
	require.Equal(t, http.StatusOK, w.Code)

	var res predictResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))

	pw := h.do(http.MethodGet, "/user/"+res.UserID, "")
	require.Equal(t, http.StatusOK, pw.Code)

	var profile map[string]interface{}
	require.NoError(t, json.Unmarshal(pw.Body.Bytes(), &profile))
	assert.Equal(t, "Asha", profile["name"])
	assert.Equal(t, "Leo", profile["preferred_zodiac"])
	assert.Equal(t, float64(1), profile["insights_count"])
}

func TestUserProfileNotFound(t *testing.T) {
	h := newTestServer(t, stubTranslator{})

	w := h.do(http.MethodGet, "/user/nobody", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "User profile not found"}`, w.Body.String())
}

func TestWelcomeDocument(t *testing.T) {
	h := newTestServer(t, stubTranslator{})

	w := h.do(http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Contains(t, doc["message"], "Astrological Insight Generator")
	assert.Equal(t, apiVersion, doc["version"])

	endpoints, ok := doc["endpoints"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, endpoints, "/predict")
	assert.Contains(t, endpoints, "/health")
}

func TestHealth(t *testing.T) {
	h := newTestServer(t, stubTranslator{})

	w := h.do(http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Status   string            `json:"status"`
		Services map[string]string `json:"services"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "healthy", res.Status)
	assert.Contains(t, res.Services, "cache")
	assert.Contains(t, res.Services, "vector_store")
	assert.Contains(t, res.Services, "llm")
	assert.Contains(t, res.Services, "translation")
}

func TestCacheStatsAndClear(t *testing.T) {
	h := newTestServer(t, stubTranslator{})

	require.Equal(t, http.StatusOK, h.do(http.MethodPost, "/predict", leoBody).Code)

	w := h.do(http.MethodGet, "/cache/stats", "")
	require.Equal(t, http.StatusOK, w.Code)

	var stats map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, true, stats["cache_enabled"])
	assert.Equal(t, "in-memory", stats["cache_backend"])
	assert.Equal(t, float64(1), stats["insight_entries"])
	assert.Equal(t, float64(1), stats["profile_entries"])
	assert.Equal(t, float64(1), stats["misses"])

	cw := h.do(http.MethodDelete, "/cache", "")
	require.Equal(t, http.StatusOK, cw.Code)
	assert.JSONEq(t, `{"message": "Cache cleared successfully"}`, cw.Body.String())
	assert.Equal(t, 1, h.collector.cacheEvents[metrics.EventClear])

	w = h.do(http.MethodGet, "/cache/stats", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, float64(0), stats["insight_entries"])
	assert.Equal(t, float64(0), stats["profile_entries"])
	assert.Equal(t, float64(1), stats["misses"], "counters survive a clear")

	var res predictResponse
	pw := h.do(http.MethodPost, "/predict", leoBody)
	require.NoError(t, json.Unmarshal(pw.Body.Bytes(), &res))
	assert.False(t, res.CacheHit, "cleared sign generates again")
}

func TestRequestMetricsRecorded(t *testing.T) {
	h := newTestServer(t, stubTranslator{})

	h.do(http.MethodPost, "/predict", leoBody)
	h.do(http.MethodGet, "/health", "")
	h.do(http.MethodGet, "/missing", "")

	assert.Equal(t, 1, h.collector.requests["/predict 200"])
	assert.Equal(t, 1, h.collector.requests["/health 200"])
	assert.Equal(t, 1, h.collector.requests["unmatched 404"])
	assert.Equal(t, 1, h.collector.durations["/predict"])
}
