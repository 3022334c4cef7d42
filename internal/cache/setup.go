package cache

import (
	"sync"

	"github.com/razzzeeev/astro/internal/zodiac"
)

// Cache is the process-lifetime store for daily insights and user
// profiles. Two independent namespaces share one lock; the lock exists for
// memory safety only. Concurrent misses for the same sign can still both
// generate (generation happens outside the cache) and the second write
// wins, which is an accepted outcome of the single-instance design.
//
// There is no eviction, no TTL and no size bound.
type Cache struct {
	mu sync.RWMutex

	insights map[zodiac.Sign]InsightEntry
	profiles map[string]*Profile

	hits   uint64
	misses uint64
}

// NewCache constructs an empty cache.
func NewCache() *Cache {
	return &Cache{
		insights: make(map[zodiac.Sign]InsightEntry),
		profiles: make(map[string]*Profile),
	}
}
