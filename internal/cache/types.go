package cache

import (
	"time"

	"github.com/razzzeeev/astro/internal/zodiac"
)

// ScoreIncrement is added to a profile's score on every recorded
// interaction. One fixed constant regardless of cache outcome; the score
// grows without bound by design.
const ScoreIncrement = 1.0

// InsightEntry is a cached daily insight for one zodiac sign. The text is
// always stored in the language it was generated in; translations are
// applied per-request and never cached.
type InsightEntry struct {
	Text     string
	Language string
	Source   string
	StoredAt time.Time
}

// BirthSnapshot carries the birth details captured into a profile on its
// first interaction.
type BirthSnapshot struct {
	Name       string
	BirthDate  string
	BirthTime  string
	BirthPlace string
	Latitude   *float64
	Longitude  *float64
}

// InteractionRecord is one entry in a profile's interaction history.
type InteractionRecord struct {
	Sign      zodiac.Sign `json:"zodiac"`
	Insight   string      `json:"insight"`
	Timestamp time.Time   `json:"timestamp"`
}

// Profile accumulates per-user state across requests: the birth details
// from the first interaction, the full interaction history and the running
// preference score. History and score grow unboundedly; there is no decay
// and no cap.
type Profile struct {
	UserID        string              `json:"user_id"`
	Name          string              `json:"name,omitempty"`
	BirthDate     string              `json:"birth_date,omitempty"`
	BirthTime     string              `json:"birth_time,omitempty"`
	BirthPlace    string              `json:"birth_place,omitempty"`
	Latitude      *float64            `json:"latitude,omitempty"`
	Longitude     *float64            `json:"longitude,omitempty"`
	PreferredSign zodiac.Sign         `json:"preferred_zodiac,omitempty"`
	Score         float64             `json:"score"`
	InsightsCount int                 `json:"insights_count"`
	History       []InteractionRecord `json:"past_insights"`
	CreatedAt     time.Time           `json:"created_at"`
	LastUpdated   time.Time           `json:"last_updated"`
}

// RecentInsights returns up to n of the most recent interaction records,
// oldest first.
func (p *Profile) RecentInsights(n int) []InteractionRecord {
	if p == nil || n <= 0 || len(p.History) == 0 {
		return nil
	}
	if len(p.History) <= n {
		return p.History
	}
	return p.History[len(p.History)-n:]
}

// LastInsightText returns the text of the most recent interaction, or ""
// for an empty history.
func (p *Profile) LastInsightText() string {
	if p == nil || len(p.History) == 0 {
		return ""
	}
	return p.History[len(p.History)-1].Insight
}

// Stats is a point-in-time view of cache occupancy plus the cumulative
// hit/miss counters maintained since process start. Clear() resets the
// entry counts, never the counters.
type Stats struct {
	InsightEntries int
	ProfileEntries int
	Hits           uint64
	Misses         uint64
}
