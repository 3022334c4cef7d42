package llm

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/razzzeeev/astro/internal/cohere"
)

// Generate produces a personalized insight. It never fails: an
// unconfigured provider, a transport error or an empty completion all
// degrade to the per-sign template table.
func (c *Client) Generate(ctx context.Context, in GenerateInput) Generation {
	text, err := c.chatter.Chat(ctx, cohere.ChatRequest{
		Message:     buildPrompt(in),
		Preamble:    preamble,
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	})
	if err != nil {
		if cohere.IsNotConfigured(err) {
			c.log.Debug("chat model not configured, using template", nil, nil)
		} else {
			c.log.Warn("insight generation failed, using template", err, map[string]interface{}{
				"sign": string(in.Sign),
			})
		}
		return Generation{Text: fallbackInsight(in), Source: SourceTemplate}
	}

	c.log.Info("generated insight", nil, map[string]interface{}{
		"sign": string(in.Sign),
	})
	return Generation{Text: text, Source: SourceModel}
}

// buildPrompt assembles the chat message: base request, profile
// personalization, retrieved context, closing instruction.
func buildPrompt(in GenerateInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a personalized daily astrological insight for %s, who is a %s.", in.Name, in.Sign)

	if p := in.Profile; p != nil {
		if p.InsightsCount > 0 {
			fmt.Fprintf(&b, "\n\nThis user has requested %d insight(s) before.", p.InsightsCount)
		}
		if len(p.History) > 0 {
			b.WriteString("\n\nConsider their past insights to maintain consistency and build on previous guidance:")
			for _, rec := range p.RecentInsights(3) {
				fmt.Fprintf(&b, "\n- Previous insight: %s...", truncate(rec.Insight, 100))
			}
		}
		if p.PreferredSign == in.Sign {
			b.WriteString("\n\nThis is their preferred zodiac sign, so make the insight particularly meaningful.")
		}
	}

	if len(in.Context) > 0 {
		b.WriteString("\n\nConsider these related astrological insights:\n")
		for i, m := range in.Context {
			fmt.Fprintf(&b, "%d. %s\n", i+1, m.Text)
		}
	}

	b.WriteString("\nMake it personal, warm, and specific to their zodiac sign. Keep it to 1-2 sentences.")
	return b.String()
}

// fallbackInsight picks from the sign's template pair. Users with more
// than two recorded interactions rotate deterministically so repeat
// visitors see variety; everyone else draws at random.
func fallbackInsight(in GenerateInput) string {
	templates, ok := fallbackTemplates[in.Sign]
	if !ok {
		templates = []string{genericTemplate}
	}

	idx := rand.Intn(len(templates))
	if p := in.Profile; p != nil && len(p.History) > 2 {
		idx = len(p.History) % len(templates)
	}

	text := fmt.Sprintf("%s, %s", in.Name, templates[idx])
	if in.Profile != nil && in.Profile.InsightsCount > 1 {
		text += journeySuffix
	}
	return text
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
