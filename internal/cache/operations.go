package cache

import (
	"time"

	"github.com/razzzeeev/astro/internal/zodiac"
)

// GetDailyInsight returns the cached insight for a sign. Every call counts
// toward the cumulative hit/miss statistics; profile reads do not.
func (c *Cache) GetDailyInsight(sign zodiac.Sign) (InsightEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.insights[sign]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return entry, ok
}

// SetDailyInsight stores the insight for a sign, overwriting any previous
// entry unconditionally (last-writer-wins, no versioning).
func (c *Cache) SetDailyInsight(sign zodiac.Sign, text, language, source string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.insights[sign] = InsightEntry{
		Text:     text,
		Language: language,
		Source:   source,
		StoredAt: time.Now(),
	}
}

// GetProfile returns a copy of the stored profile. The copy owns its
// history slice, so callers can never mutate cache-owned state.
func (c *Cache) GetProfile(userID string) (Profile, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.profiles[userID]
	if !ok {
		return Profile{}, false
	}
	return copyProfile(p), true
}

// RecordInteraction appends one interaction to the user's profile and
// returns the updated score. A first interaction creates the profile:
// score zero, empty history, the resolved sign as the preferred sign, and
// the birth snapshot when one is provided. The snapshot never overwrites
// an existing profile's details. Score moves by exactly ScoreIncrement.
func (c *Cache) RecordInteraction(userID string, sign zodiac.Sign, insightText string, details *BirthSnapshot) float64 {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.profiles[userID]
	if !ok {
		p = &Profile{
			UserID:        userID,
			PreferredSign: sign,
			History:       []InteractionRecord{},
			CreatedAt:     now,
		}
		if details != nil {
			p.Name = details.Name
			p.BirthDate = details.BirthDate
			p.BirthTime = details.BirthTime
			p.BirthPlace = details.BirthPlace
			p.Latitude = copyFloatPtr(details.Latitude)
			p.Longitude = copyFloatPtr(details.Longitude)
		}
		c.profiles[userID] = p
	}

	p.History = append(p.History, InteractionRecord{
		Sign:      sign,
		Insight:   insightText,
		Timestamp: now,
	})
	p.InsightsCount++
	p.Score += ScoreIncrement
	p.LastUpdated = now

	return p.Score
}

// Clear empties both namespaces atomically. The cumulative hit/miss
// counters are left untouched.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.insights = make(map[zodiac.Sign]InsightEntry)
	c.profiles = make(map[string]*Profile)
}

// Stats returns current entry counts and the cumulative counters.
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return Stats{
		InsightEntries: len(c.insights),
		ProfileEntries: len(c.profiles),
		Hits:           c.hits,
		Misses:         c.misses,
	}
}

func copyProfile(p *Profile) Profile {
	out := *p
	out.Latitude = copyFloatPtr(p.Latitude)
	out.Longitude = copyFloatPtr(p.Longitude)
	out.History = make([]InteractionRecord, len(p.History))
	copy(out.History, p.History)
	return out
}

func copyFloatPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
