package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/razzzeeev/astro/internal/cache"
	"github.com/razzzeeev/astro/internal/insight"
	"github.com/razzzeeev/astro/internal/logger"
	"github.com/razzzeeev/astro/internal/metrics"
	"github.com/razzzeeev/astro/internal/tracer"
)

const apiVersion = "3.0.0"

// Server is the public HTTP surface. Handlers stay thin: bind, call the
// insight service or the cache, map errors to status codes.
type Server struct {
	cfg      Config
	engine   *gin.Engine
	http     *http.Server
	insights *insight.Service
	cache    *cache.Cache
	metrics  metrics.Collector
	tracer   *tracer.Tracer
	log      *logger.Logger
}

type ServerParams struct {
	fx.In

	Config   Config
	Insights *insight.Service
	Cache    *cache.Cache
	Metrics  metrics.Collector
	Tracer   *tracer.Tracer
	Logger   *logger.Logger
}

func NewServer(p ServerParams) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		cfg:      p.Config,
		engine:   engine,
		insights: p.Insights,
		cache:    p.Cache,
		metrics:  p.Metrics,
		tracer:   p.Tracer,
		log:      p.Logger,
	}
	engine.Use(s.observe())
	s.registerRoutes()

	s.http = &http.Server{
		Addr:    p.Config.Address,
		Handler: engine,
	}
	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/", s.welcome)
	s.engine.POST("/predict", s.predict)
	s.engine.GET("/user/:user_id", s.userProfile)
	s.engine.GET("/health", s.health)
	s.engine.GET("/cache/stats", s.cacheStats)
	s.engine.DELETE("/cache", s.clearCache)
}
