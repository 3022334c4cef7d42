package vectorstore

import (
	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/razzzeeev/astro/internal/zodiac"
)

// signFilter scopes a query to one sign's corpus entries. An empty sign
// returns nil, leaving the query unfiltered.
func signFilter(sign zodiac.Sign) *qdrant.Filter {
	if sign == "" {
		return nil
	}
	return &qdrant.Filter{
		Must: []*qdrant.Condition{qdrant.NewMatch("zodiac", string(sign))},
	}
}

// matchesFromPoints converts scored Qdrant points into Matches, reading
// the payload fields written at seeding time. Points with no text are
// dropped rather than surfaced as empty context.
func matchesFromPoints(points []*qdrant.ScoredPoint) []Match {
	matches := make([]Match, 0, len(points))
	for _, p := range points {
		text := payloadString(p.Payload, "text")
		if text == "" {
			continue
		}
		matches = append(matches, Match{
			Text:     text,
			Zodiac:   payloadString(p.Payload, "zodiac"),
			Category: payloadString(p.Payload, "category"),
			Score:    p.Score,
		})
	}
	return matches
}

// payloadString extracts a string field from a Qdrant payload, returning
// "" for missing keys or non-string values.
func payloadString(payload map[string]*qdrant.Value, key string) string {
	if payload == nil {
		return ""
	}
	v, ok := payload[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.Kind.(*qdrant.Value_StringValue); ok {
		return s.StringValue
	}
	return ""
}
