package suggest

import (
	"iter"
	"strings"

	"github.com/bastiangx/wordhint/pkg/trie"
	"github.com/charmbracelet/log"
)

// DefaultCacheSize is the number of prefixes a Completer remembers by default.
const DefaultCacheSize = 512

// Options tune how words are indexed and queried.
type Options struct {
	// SkipEmpty drops empty tokens instead of indexing them at the root.
	SkipEmpty bool
	// Lowercase folds words and prefixes before they reach the index.
	Lowercase bool
	// CacheSize bounds the query cache; 0 disables it.
	CacheSize int
}

// DefaultOptions indexes every token as-is with the default cache.
func DefaultOptions() Options {
	return Options{CacheSize: DefaultCacheSize}
}

// Completer builds a trie.Index from a word sequence and answers prefix queries.
// Populate it first, then query: inserts must not run concurrently with Complete.
type Completer struct {
	index    *trie.Index
	vocab    *Vocabulary
	cache    *QueryCache
	policy   Policy
	opts     Options
	inserted int
	skipped  int
}

var _ ICompleter = (*Completer)(nil)

// NewCompleter returns an empty Completer using policy and DefaultOptions.
// A nil policy falls back to DefaultTemplate.
func NewCompleter(policy Policy) *Completer {
	return NewCompleterWithOptions(policy, DefaultOptions())
}

// NewCompleterWithOptions returns an empty Completer with explicit options.
func NewCompleterWithOptions(policy Policy, opts Options) *Completer {
	if policy == nil {
		policy = Template(DefaultTemplate)
	}
	return &Completer{
		index:  trie.New(),
		vocab:  NewVocabulary(),
		cache:  NewQueryCache(opts.CacheSize),
		policy: policy,
		opts:   opts,
	}
}

// Build inserts every word with the suggestion produced by the policy.
func (c *Completer) Build(words []string) {
	for _, w := range words {
		c.add(w)
	}
	log.Debugf("Indexed %d words (%d skipped)", c.inserted, c.skipped)
}

// BuildFrom is Build over a lazy sequence.
func (c *Completer) BuildFrom(words iter.Seq[string]) {
	for w := range words {
		c.add(w)
	}
	log.Debugf("Indexed %d words (%d skipped)", c.inserted, c.skipped)
}

// AddPair inserts word with an explicit suggestion, bypassing the policy.
func (c *Completer) AddPair(word, suggestion string) {
	word = c.normalize(word)
	if word == "" && c.opts.SkipEmpty {
		c.skipped++
		return
	}
	c.insert(word, suggestion)
}

func (c *Completer) add(word string) {
	word = c.normalize(word)
	if word == "" && c.opts.SkipEmpty {
		c.skipped++
		return
	}
	c.insert(word, c.policy(word))
}

func (c *Completer) insert(word, suggestion string) {
	c.index.Insert(word, suggestion)
	c.vocab.Add(word)
	c.cache.Clear()
	c.inserted++
}

func (c *Completer) normalize(s string) string {
	if c.opts.Lowercase {
		return strings.ToLower(s)
	}
	return s
}

// Complete returns the suggestions under prefix, truncated to limit when limit > 0.
// No match yields an empty slice.
func (c *Completer) Complete(prefix string, limit int) []string {
	matches := c.lookup(prefix)
	matches = truncate(matches, limit)

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Suggestion
	}
	return out
}

// CompleteMatches returns (word, suggestion) pairs under prefix, truncated to limit when limit > 0.
func (c *Completer) CompleteMatches(prefix string, limit int) []trie.Match {
	matches := truncate(c.lookup(prefix), limit)
	out := make([]trie.Match, len(matches))
	copy(out, matches)
	return out
}

func (c *Completer) lookup(prefix string) []trie.Match {
	prefix = c.normalize(prefix)
	if cached, ok := c.cache.Get(prefix); ok {
		log.Debug("Query cache hit", "prefix", prefix)
		return cached
	}
	matches := c.index.Matches(prefix)
	c.cache.Put(prefix, matches)
	return matches
}

func truncate(matches []trie.Match, limit int) []trie.Match {
	if limit > 0 && len(matches) > limit {
		return matches[:limit]
	}
	return matches
}

// Words lists the distinct indexed words under prefix in lexical order.
func (c *Completer) Words(prefix string) []string {
	return c.vocab.Words(c.normalize(prefix))
}

// Index exposes the underlying trie for read-only use.
func (c *Completer) Index() *trie.Index {
	return c.index
}

// Stats returns corpus, trie and cache counters.
func (c *Completer) Stats() map[string]int {
	ts := c.index.Stats()
	stats := map[string]int{
		"totalWords":    c.vocab.Total(),
		"distinctWords": c.vocab.Distinct(),
		"skippedWords":  c.skipped,
		"nodes":         ts.Nodes,
		"terminals":     ts.Terminals,
		"suggestions":   ts.Suggestions,
	}

	for k, v := range c.cache.Stats() {
		stats[k] = v
	}
	return stats
}
