package suggest

import (
	"math"
	"sync"

	"github.com/bastiangx/wordhint/pkg/trie"
	"github.com/charmbracelet/log"
)

// QueryCache keeps the full match list of recently asked prefixes.
// Entries are evicted least-recently-used once maxEntries is reached.
type QueryCache struct {
	entries     map[string][]trie.Match
	accessTime  map[string]int64
	accessCount int64
	hits        int
	misses      int
	maxEntries  int
	mu          sync.Mutex
}

// NewQueryCache returns a cache holding up to maxEntries prefixes.
// A non-positive size disables caching.
func NewQueryCache(maxEntries int) *QueryCache {
	if maxEntries < 0 {
		maxEntries = 0
	}
	return &QueryCache{
		entries:    make(map[string][]trie.Match, maxEntries),
		accessTime: make(map[string]int64, maxEntries),
		maxEntries: maxEntries,
	}
}

// Get returns the cached matches for prefix.
func (qc *QueryCache) Get(prefix string) ([]trie.Match, bool) {
	qc.mu.Lock()
	defer qc.mu.Unlock()

	matches, ok := qc.entries[prefix]
	if !ok {
		qc.misses++
		return nil, false
	}
	qc.hits++
	qc.markAccessed(prefix)
	return matches, true
}

// Put stores matches for prefix, evicting the oldest entry when full.
func (qc *QueryCache) Put(prefix string, matches []trie.Match) {
	if qc.maxEntries == 0 {
		return
	}
	qc.mu.Lock()
	defer qc.mu.Unlock()

	if _, exists := qc.entries[prefix]; !exists && len(qc.entries) >= qc.maxEntries {
		qc.evictLRU()
	}
	qc.entries[prefix] = matches
	qc.markAccessed(prefix)
}

// Clear drops every entry. Called whenever the index grows.
func (qc *QueryCache) Clear() {
	qc.mu.Lock()
	defer qc.mu.Unlock()

	if len(qc.entries) == 0 {
		return
	}
	clear(qc.entries)
	clear(qc.accessTime)
}

// Len returns the number of cached prefixes.
func (qc *QueryCache) Len() int {
	qc.mu.Lock()
	defer qc.mu.Unlock()
	return len(qc.entries)
}

// Stats reports cache size and hit counters.
func (qc *QueryCache) Stats() map[string]int {
	qc.mu.Lock()
	defer qc.mu.Unlock()

	return map[string]int{
		"cacheEntries":    len(qc.entries),
		"maxCacheEntries": qc.maxEntries,
		"cacheHits":       qc.hits,
		"cacheMisses":     qc.misses,
	}
}

func (qc *QueryCache) markAccessed(prefix string) {
	qc.accessCount++
	qc.accessTime[prefix] = qc.accessCount
}

func (qc *QueryCache) evictLRU() {
	var oldestPrefix string
	var oldestTime int64 = math.MaxInt64
	found := false

	for prefix, accessTime := range qc.accessTime {
		if accessTime < oldestTime {
			oldestTime = accessTime
			oldestPrefix = prefix
			found = true
		}
	}

	if found {
		delete(qc.entries, oldestPrefix)
		delete(qc.accessTime, oldestPrefix)
		log.Debugf("Evicted prefix '%s' from query cache", oldestPrefix)
	}
}
