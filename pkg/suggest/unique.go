package suggest

import (
	"github.com/bastiangx/wordhint/pkg/trie"
	"github.com/samber/lo"
)

// UniqueMatches keeps the first match of every distinct suggestion, then
// truncates to limit when limit > 0. Suggestions compare exactly.
func UniqueMatches(matches []trie.Match, limit int) []trie.Match {
	out := lo.UniqBy(matches, func(m trie.Match) string {
		return m.Suggestion
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
