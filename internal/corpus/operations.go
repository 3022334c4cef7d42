package corpus

import (
	"strings"

	"github.com/razzzeeev/astro/internal/zodiac"
)

// Entries returns a copy of the loaded entries in stored order. Indexes
// into this slice are stable identifiers across the process lifetime.
func (c *Corpus) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of loaded entries.
func (c *Corpus) Len() int {
	return len(c.entries)
}

// BySign returns up to limit insight texts for the sign, in stored
// order. Sign matching is case-insensitive.
func (c *Corpus) BySign(sign zodiac.Sign, limit int) []string {
	if limit <= 0 {
		return nil
	}

	want := strings.ToLower(string(sign))
	var out []string
	for _, e := range c.entries {
		if strings.ToLower(e.Zodiac) != want {
			continue
		}
		out = append(out, e.Text)
		if len(out) >= limit {
			break
		}
	}
	return out
}
