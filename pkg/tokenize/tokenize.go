// Package tokenize turns document text into the word sequence fed to the index.
//
// Tokens are the pieces between runs of non-word characters (anything outside
// [0-9A-Za-z_]). Leading and trailing separators produce empty tokens, and
// repeated words are kept; callers decide what to do with both.
package tokenize

import (
	"iter"
	"regexp"

	"github.com/samber/lo"
)

var nonWord = regexp.MustCompile(`\W+`)

// Split returns every token of text, empty ones included.
func Split(text string) []string {
	return nonWord.Split(text, -1)
}

// Words yields the same tokens as Split without building the slice.
func Words(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		rest := text
		for {
			loc := nonWord.FindStringIndex(rest)
			if loc == nil {
				yield(rest)
				return
			}
			if !yield(rest[:loc[0]]) {
				return
			}
			rest = rest[loc[1]:]
		}
	}
}

// NonEmpty drops empty tokens, keeping order.
func NonEmpty(tokens []string) []string {
	return lo.Compact(tokens)
}

// Unique keeps the first occurrence of every token.
func Unique(tokens []string) []string {
	return lo.Uniq(tokens)
}
