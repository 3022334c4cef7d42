package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/razzzeeev/astro/internal/insight"
	"github.com/razzzeeev/astro/internal/metrics"
	"github.com/razzzeeev/astro/internal/translate"
	"github.com/razzzeeev/astro/internal/zodiac"
)

// predict serves a personalized daily insight, generating on cache miss.
func (s *Server) predict(c *gin.Context) {
	var req predictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Anonymous callers still get a profile; the generated id is returned
	// so they can reuse it.
	userID := req.UserID
	if userID == "" {
		userID = uuid.NewString()
	}

	language := c.DefaultQuery("language", translate.DefaultLanguage)

	result, err := s.insights.Produce(c.Request.Context(), insight.Request{
		Name:       req.Name,
		BirthDate:  req.BirthDate,
		BirthTime:  req.BirthTime,
		BirthPlace: req.BirthPlace,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		UserID:     userID,
	}, language)
	if err != nil {
		if zodiac.IsInvalidDate(err) || translate.IsUnsupportedLanguage(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		s.log.Error("insight pipeline failed", err, map[string]interface{}{
			"user_id": userID,
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate insight"})
		return
	}

	c.JSON(http.StatusOK, predictResponse{
		Zodiac:    result.Zodiac,
		Insight:   result.Insight,
		Language:  result.Language,
		CacheHit:  result.CacheHit,
		UserScore: result.UserScore,
		UserID:    result.UserID,
		Source:    result.Source,
	})
}

func (s *Server) userProfile(c *gin.Context) {
	profile, ok := s.cache.GetProfile(c.Param("user_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User profile not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (s *Server) welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":  "Welcome to the Astrological Insight Generator. Use /predict to get insights.",
		"version":  apiVersion,
		"features": []string{"In-Memory Cache", "Cohere LLM", "Cohere Embeddings", "Qdrant Vector Store"},
		"endpoints": gin.H{
			"/predict":        "POST - Generate astrological insight",
			"/user/{user_id}": "GET - Get user profile",
			"/health":         "GET - Health check",
			"/cache/stats":    "GET - Cache statistics",
		},
	})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"services": gin.H{
			"cache":        "in-memory",
			"vector_store": "qdrant + cohere embeddings",
			"llm":          "cohere command-r",
			"translation":  "cohere",
		},
	})
}

func (s *Server) cacheStats(c *gin.Context) {
	stats := s.cache.Stats()
	c.JSON(http.StatusOK, gin.H{
		"cache_enabled":   true,
		"cache_backend":   "in-memory",
		"insight_entries": stats.InsightEntries,
		"profile_entries": stats.ProfileEntries,
		"hits":            stats.Hits,
		"misses":          stats.Misses,
	})
}

func (s *Server) clearCache(c *gin.Context) {
	s.cache.Clear()
	s.metrics.IncrementCacheEvent(metrics.EventClear)
	s.log.Info("cache cleared", nil, nil)
	c.JSON(http.StatusOK, gin.H{"message": "Cache cleared successfully"})
}
