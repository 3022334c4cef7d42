package corpus

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/razzzeeev/astro/internal/logger"
	"github.com/razzzeeev/astro/internal/zodiac"
)

//go:embed data/astrological_corpus.json
var defaultCorpus []byte

// Corpus holds the astrological insight documents loaded at startup.
// It is never mutated after construction, so reads need no locking.
type Corpus struct {
	entries []Entry
}

// NewCorpus loads the corpus from the configured path, or the embedded
// default when no path is set. A configured path that cannot be read is
// a startup error; a missing default is impossible (it is compiled in).
func NewCorpus(cfg Config, log *logger.Logger) (*Corpus, error) {
	raw := defaultCorpus
	source := "embedded"
	if cfg.Path != "" {
		data, err := os.ReadFile(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", ErrLoad, cfg.Path, err)
		}
		raw = data
		source = cfg.Path
	}

	var file corpusFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrLoad, source, err)
	}

	entries := make([]Entry, 0, len(file.Insights))
	skipped := 0
	for _, e := range file.Insights {
		if e.Text == "" {
			skipped++
			continue
		}
		if e.Category == "" {
			e.Category = "general"
		}
		// Sign names in override files arrive in any casing; downstream
		// payload filters match the canonical form exactly.
		if sign, ok := zodiac.Canonical(e.Zodiac); ok {
			e.Zodiac = string(sign)
		}
		entries = append(entries, e)
	}

	log.Info("corpus loaded", nil, map[string]interface{}{
		"source":  source,
		"entries": len(entries),
		"skipped": skipped,
	})

	return &Corpus{entries: entries}, nil
}
