package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/razzzeeev/astro/internal/cache"
	"github.com/razzzeeev/astro/internal/cohere"
	"github.com/razzzeeev/astro/internal/logger"
	"github.com/razzzeeev/astro/internal/vectorstore"
	"github.com/razzzeeev/astro/internal/zodiac"
)

type fakeChatter struct {
	reply   string
	err     error
	lastReq cohere.ChatRequest
	calls   int
}

func (f *fakeChatter) Chat(_ context.Context, req cohere.ChatRequest) (string, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newTestClient(chatter Chatter) *Client {
	log := logger.NewLoggerClient(logger.Config{Level: logger.Error, ServiceName: "llm-test"})
	return NewClient(Config{Temperature: 0.7, MaxTokens: 200}, chatter, log)
}

func TestGenerateUsesModel(t *testing.T) {
	chatter := &fakeChatter{reply: "The stars favor a brave start, Asha."}
	client := newTestClient(chatter)

	out := client.Generate(context.Background(), GenerateInput{Name: "Asha", Sign: zodiac.Leo})

	assert.Equal(t, "The stars favor a brave start, Asha.", out.Text)
	assert.Equal(t, SourceModel, out.Source)
	assert.Equal(t, 1, chatter.calls)

	assert.Contains(t, chatter.lastReq.Message, "Generate a personalized daily astrological insight for Asha, who is a Leo.")
	assert.Contains(t, chatter.lastReq.Preamble, "expert astrologer")
	assert.Equal(t, 0.7, chatter.lastReq.Temperature)
	assert.Equal(t, 200, chatter.lastReq.MaxTokens)
}

func TestPromptPersonalization(t *testing.T) {
	long := strings.Repeat("x", 150)
	profile := &cache.Profile{
		UserID:        "u1",
		PreferredSign: zodiac.Leo,
		InsightsCount: 4,
		History: []cache.InteractionRecord{
			{Sign: zodiac.Leo, Insight: "oldest, must not appear", Timestamp: time.Now()},
			{Sign: zodiac.Leo, Insight: "second insight", Timestamp: time.Now()},
			{Sign: zodiac.Leo, Insight: "third insight", Timestamp: time.Now()},
			{Sign: zodiac.Leo, Insight: long, Timestamp: time.Now()},
		},
	}

	prompt := buildPrompt(GenerateInput{
		Name:    "Asha",
		Sign:    zodiac.Leo,
		Profile: profile,
		Context: []vectorstore.Match{
			{Text: "Leo context one"},
			{Text: "Leo context two"},
		},
	})

	assert.Contains(t, prompt, "This user has requested 4 insight(s) before.")
	assert.Contains(t, prompt, "Consider their past insights to maintain consistency")
	assert.NotContains(t, prompt, "oldest, must not appear")
	assert.Contains(t, prompt, "- Previous insight: second insight...")
	assert.Contains(t, prompt, "- Previous insight: "+strings.Repeat("x", 100)+"...")
	assert.NotContains(t, prompt, strings.Repeat("x", 101))
	assert.Contains(t, prompt, "This is their preferred zodiac sign")
	assert.Contains(t, prompt, "Consider these related astrological insights:\n1. Leo context one\n2. Leo context two\n")
	assert.True(t, strings.HasSuffix(prompt, "Keep it to 1-2 sentences."))
}

func TestPromptWithoutProfileOrContext(t *testing.T) {
	prompt := buildPrompt(GenerateInput{Name: "Ravi", Sign: zodiac.Virgo})

	assert.Contains(t, prompt, "for Ravi, who is a Virgo.")
	assert.NotContains(t, prompt, "requested")
	assert.NotContains(t, prompt, "related astrological insights")
}

func TestPromptSkipsPreferredLineForOtherSign(t *testing.T) {
	profile := &cache.Profile{PreferredSign: zodiac.Virgo, InsightsCount: 1}
	prompt := buildPrompt(GenerateInput{Name: "Asha", Sign: zodiac.Leo, Profile: profile})

	assert.NotContains(t, prompt, "preferred zodiac sign")
}

func TestGenerateFallsBackOnChatError(t *testing.T) {
	chatter := &fakeChatter{err: errors.New("boom")}
	client := newTestClient(chatter)

	out := client.Generate(context.Background(), GenerateInput{Name: "Asha", Sign: zodiac.Leo})

	assert.Equal(t, SourceTemplate, out.Source)
	require.True(t, strings.HasPrefix(out.Text, "Asha, "))
	rest := strings.TrimPrefix(out.Text, "Asha, ")
	assert.Contains(t, fallbackTemplates[zodiac.Leo], rest)
}

func TestGenerateFallsBackWhenNotConfigured(t *testing.T) {
	chatter := &fakeChatter{err: cohere.ErrNotConfigured}
	client := newTestClient(chatter)

	out := client.Generate(context.Background(), GenerateInput{Name: "Asha", Sign: zodiac.Pisces})
	assert.Equal(t, SourceTemplate, out.Source)
	assert.True(t, strings.HasPrefix(out.Text, "Asha, "))
}

func TestFallbackRotationForReturningUsers(t *testing.T) {
	history := func(n int) []cache.InteractionRecord {
		recs := make([]cache.InteractionRecord, n)
		for i := range recs {
			recs[i] = cache.InteractionRecord{Sign: zodiac.Leo, Insight: "x", Timestamp: time.Now()}
		}
		return recs
	}

	three := fallbackInsight(GenerateInput{
		Name:    "Asha",
		Sign:    zodiac.Leo,
		Profile: &cache.Profile{History: history(3), InsightsCount: 1},
	})
	assert.Equal(t, "Asha, "+fallbackTemplates[zodiac.Leo][1], three)

	four := fallbackInsight(GenerateInput{
		Name:    "Asha",
		Sign:    zodiac.Leo,
		Profile: &cache.Profile{History: history(4), InsightsCount: 1},
	})
	assert.Equal(t, "Asha, "+fallbackTemplates[zodiac.Leo][0], four)
}

func TestFallbackJourneySuffix(t *testing.T) {
	with := fallbackInsight(GenerateInput{
		Name:    "Asha",
		Sign:    zodiac.Taurus,
		Profile: &cache.Profile{InsightsCount: 2},
	})
	assert.True(t, strings.HasSuffix(with, journeySuffix))

	without := fallbackInsight(GenerateInput{
		Name:    "Asha",
		Sign:    zodiac.Taurus,
		Profile: &cache.Profile{InsightsCount: 1},
	})
	assert.False(t, strings.HasSuffix(without, journeySuffix))
}

func TestFallbackUnknownSign(t *testing.T) {
	out := fallbackInsight(GenerateInput{Name: "Asha", Sign: zodiac.Sign("Ophiuchus")})
	assert.Equal(t, "Asha, trust your intuition today. The stars are aligned in your favor.", out)
}
