package httpapi

import "github.com/razzzeeev/astro/internal/zodiac"

// predictRequest is the POST /predict body. Name and birth date are the
// only hard requirements; everything else refines personalization.
type predictRequest struct {
	Name       string   `json:"name" binding:"required"`
	BirthDate  string   `json:"birth_date" binding:"required"`
	BirthTime  string   `json:"birth_time"`
	BirthPlace string   `json:"birth_place"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	UserID     string   `json:"user_id"`
}

type predictResponse struct {
	Zodiac    zodiac.Sign `json:"zodiac"`
	Insight   string      `json:"insight"`
	Language  string      `json:"language"`
	CacheHit  bool        `json:"cache_hit"`
	UserScore *float64    `json:"user_score"`
	UserID    string      `json:"user_id"`
	Source    string      `json:"source"`
}
