package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/razzzeeev/astro/internal/logger"
	"github.com/razzzeeev/astro/internal/zodiac"
)

func newTestLogger() *logger.Logger {
	return logger.NewLoggerClient(logger.Config{Level: logger.Error, ServiceName: "corpus-test"})
}

func TestEmbeddedCorpusCoversEverySign(t *testing.T) {
	c, err := NewCorpus(Config{}, newTestLogger())
	require.NoError(t, err)
	require.GreaterOrEqual(t, c.Len(), 48)

	perSign := map[string]int{}
	for _, e := range c.Entries() {
		assert.NotEmpty(t, e.Text)
		assert.NotEmpty(t, e.Category)
		perSign[e.Zodiac]++
	}
	for _, sign := range zodiac.Signs() {
		assert.GreaterOrEqual(t, perSign[string(sign)], 3, "sign %s underrepresented", sign)
	}
}

func TestBySignDeterministicAndLimited(t *testing.T) {
	c, err := NewCorpus(Config{}, newTestLogger())
	require.NoError(t, err)

	first := c.BySign(zodiac.Leo, 3)
	second := c.BySign(zodiac.Leo, 3)
	require.Len(t, first, 3)
	assert.Equal(t, first, second)

	one := c.BySign(zodiac.Leo, 1)
	require.Len(t, one, 1)
	assert.Equal(t, first[0], one[0])

	assert.Nil(t, c.BySign(zodiac.Leo, 0))
}

func TestBySignCaseInsensitive(t *testing.T) {
	c, err := NewCorpus(Config{}, newTestLogger())
	require.NoError(t, err)

	upper := c.BySign(zodiac.Virgo, 2)
	lower := c.BySign(zodiac.Sign("virgo"), 2)
	assert.Equal(t, upper, lower)
}

func TestOverridePathAndSkippedEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.json")
	payload := `{"insights": [
		{"text": "Aries charges ahead.", "zodiac": "Aries", "category": "career"},
		{"text": "", "zodiac": "Aries"},
		{"text": "Aries rests well.", "zodiac": "aries"}
	]}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	c, err := NewCorpus(Config{Path: path}, newTestLogger())
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	entries := c.Entries()
	assert.Equal(t, "career", entries[0].Category)
	assert.Equal(t, "general", entries[1].Category)
	assert.Equal(t, "Aries", entries[1].Zodiac, "sign names are canonicalized on load")
}

func TestOverridePathMissingIsError(t *testing.T) {
	_, err := NewCorpus(Config{Path: filepath.Join(t.TempDir(), "nope.json")}, newTestLogger())
	require.Error(t, err)
	assert.True(t, IsLoadError(err))
}

func TestMalformedCorpusIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewCorpus(Config{Path: path}, newTestLogger())
	require.Error(t, err)
	assert.True(t, IsLoadError(err))
}

func TestEntriesReturnsCopy(t *testing.T) {
	c, err := NewCorpus(Config{}, newTestLogger())
	require.NoError(t, err)

	entries := c.Entries()
	original := entries[0].Text
	entries[0].Text = "tampered"

	assert.Equal(t, original, c.Entries()[0].Text)
}
