// Package suggest wires the prefix index to a suggestion policy, a word vocabulary and a query cache.
package suggest

import (
	"iter"

	"github.com/bastiangx/wordhint/pkg/trie"
)

// ICompleter defines the interface front ends use to talk to a completion engine
type ICompleter interface {
	// Complete returns suggestions reachable under prefix, at most limit when limit > 0
	Complete(prefix string, limit int) []string

	// CompleteMatches is Complete with the matched word attached to every suggestion
	CompleteMatches(prefix string, limit int) []trie.Match

	// AddPair inserts a word with an explicit suggestion payload
	AddPair(word, suggestion string)

	// Build inserts every word using the completer's policy
	Build(words []string)

	// BuildFrom is Build over a lazy word sequence
	BuildFrom(words iter.Seq[string])

	// Words lists distinct indexed words under prefix
	Words(prefix string) []string

	// Stats returns counters about the loaded corpus
	Stats() map[string]int
}
