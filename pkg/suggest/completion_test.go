package suggest

import (
	"fmt"
	"slices"
	"testing"

	"github.com/bastiangx/wordhint/pkg/tokenize"
	"github.com/bastiangx/wordhint/pkg/trie"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func TestTemplatePolicy(t *testing.T) {
	testCases := []struct {
		format      string
		word        string
		expected    string
		description string
	}{
		{DefaultTemplate, "cat", `Suggestion for "cat"`, "Default template"},
		{"did you mean %s?", "dog", "did you mean dog?", "Custom template"},
		{"constant", "dog", "constant", "Template without verb"},
		{DefaultTemplate, "", `Suggestion for ""`, "Empty word"},
		{"100% %s", "cat", "100% cat", "Literal percent"},
		{"100% match: %s", "cat", "100% match: cat", "Percent before a letter"},
		{"%s / %s", "cat", "cat / cat", "Repeated verb"},
		{"%d %s", "cat", "%d cat", "Other verbs stay literal"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, Template(tc.format)(tc.word))
		})
	}
	assert.Equal(t, "cat", Identity("cat"))
}

func TestCompleteFromDocument(t *testing.T) {
	c := NewCompleter(nil)
	c.Build(tokenize.Split("The cat sat. The car stopped!"))

	got := c.Complete("ca", 0)
	assert.Equal(t, []string{`Suggestion for "car"`, `Suggestion for "cat"`}, got)

	// "The" appears twice, so its suggestion is stored twice
	assert.Equal(t, []string{`Suggestion for "The"`, `Suggestion for "The"`}, c.Complete("Th", 0))

	// trailing "!" produced an empty token indexed at the root
	assert.Contains(t, c.Complete("", 0), `Suggestion for ""`)
	assert.Empty(t, c.Complete("x", 0))
	assert.NotNil(t, c.Complete("x", 0))
}

func TestSkipEmptyAndLowercase(t *testing.T) {
	c := NewCompleterWithOptions(Identity, Options{SkipEmpty: true, Lowercase: true, CacheSize: 8})
	c.Build(tokenize.Split("!Apple apple APPLE banana!"))

	assert.Equal(t, []string{"apple", "apple", "apple"}, c.Complete("AP", 0))
	assert.NotContains(t, c.Complete("", 0), "")
	assert.Equal(t, []string{"apple", "banana"}, c.Words(""))

	stats := c.Stats()
	assert.Equal(t, 2, stats["skippedWords"])
	assert.Equal(t, 4, stats["totalWords"])
	assert.Equal(t, 2, stats["distinctWords"])
}

func TestLimit(t *testing.T) {
	c := NewCompleter(Identity)
	c.Build([]string{"car", "cat", "cab", "can"})

	assert.Equal(t, []string{"cab", "can"}, c.Complete("ca", 2))
	assert.Len(t, c.Complete("ca", 0), 4)
	assert.Len(t, c.Complete("ca", -1), 4)
	assert.Len(t, c.Complete("ca", 10), 4)
}

func TestAddPairAndMatches(t *testing.T) {
	c := NewCompleter(nil)
	c.AddPair("cat", "feline")
	c.AddPair("car", "vehicle")
	c.AddPair("dog", "canine")

	expected := []trie.Match{
		{Word: "car", Suggestion: "vehicle"},
		{Word: "cat", Suggestion: "feline"},
	}
	assert.Equal(t, expected, c.CompleteMatches("ca", 0))
	assert.Equal(t, []string{"canine"}, c.Complete("do", 0))
	assert.Equal(t, expected[:1], c.CompleteMatches("ca", 1))
}

func TestCacheInvalidatedOnInsert(t *testing.T) {
	c := NewCompleter(Identity)
	c.Build([]string{"cat"})

	require.Equal(t, []string{"cat"}, c.Complete("c", 0))
	require.Equal(t, []string{"cat"}, c.Complete("c", 0))
	assert.Equal(t, 1, c.Stats()["cacheHits"])

	c.AddPair("cab", "cab")
	assert.Equal(t, []string{"cab", "cat"}, c.Complete("c", 0))
}

func TestCompleteDoesNotAliasCache(t *testing.T) {
	c := NewCompleter(Identity)
	c.Build([]string{"cat", "car"})

	first := c.CompleteMatches("ca", 0)
	first[0].Suggestion = "mutated"
	assert.Equal(t, "car", c.CompleteMatches("ca", 0)[0].Suggestion)
}

func TestBuildFromMatchesBuild(t *testing.T) {
	text := "one two, three; two four"
	eager := NewCompleter(nil)
	eager.Build(tokenize.Split(text))
	lazy := NewCompleter(nil)
	lazy.BuildFrom(tokenize.Words(text))

	assert.Equal(t, eager.Complete("", 0), lazy.Complete("", 0))
	assert.Equal(t, eager.Stats(), lazy.Stats())
}

func TestVocabulary(t *testing.T) {
	v := NewVocabulary()
	for _, w := range []string{"tea", "ten", "tea", "", "to", "inn"} {
		v.Add(w)
	}

	assert.Equal(t, 2, v.Count("tea"))
	assert.Equal(t, 1, v.Count(""))
	assert.Equal(t, 0, v.Count("te"))
	assert.Equal(t, 5, v.Distinct())
	assert.Equal(t, 6, v.Total())
	assert.Equal(t, []string{"tea", "ten"}, v.Words("te"))
	assert.Equal(t, []string{"", "inn", "tea", "ten", "to"}, v.Words(""))
	assert.Empty(t, v.Words("z"))
}

func TestUniqueMatches(t *testing.T) {
	c := NewCompleter(nil)
	c.AddPair("car", "vehicle")
	c.AddPair("cart", "vehicle")
	c.AddPair("cat", "feline")
	c.AddPair("cab", "Vehicle")

	got := UniqueMatches(c.CompleteMatches("ca", 0), 0)
	assert.Equal(t, []trie.Match{
		{Word: "cab", Suggestion: "Vehicle"},
		{Word: "car", Suggestion: "vehicle"},
		{Word: "cat", Suggestion: "feline"},
	}, got, "suggestions compare exactly, first match wins")

	assert.Len(t, UniqueMatches(c.CompleteMatches("ca", 0), 2), 2)
	assert.Empty(t, UniqueMatches(nil, 3))
}

func TestQueryCacheEviction(t *testing.T) {
	qc := NewQueryCache(2)
	qc.Put("a", []trie.Match{{Word: "a"}})
	qc.Put("b", []trie.Match{{Word: "b"}})

	_, ok := qc.Get("a")
	require.True(t, ok)

	qc.Put("c", nil)
	assert.Equal(t, 2, qc.Len())

	_, ok = qc.Get("b")
	assert.False(t, ok, "least recently used entry should be evicted")
	_, ok = qc.Get("a")
	assert.True(t, ok)

	qc.Clear()
	assert.Equal(t, 0, qc.Len())
}

func TestQueryCacheDisabled(t *testing.T) {
	qc := NewQueryCache(0)
	qc.Put("a", nil)
	_, ok := qc.Get("a")
	assert.False(t, ok)
}

func TestConcurrentReadsAfterBuild(t *testing.T) {
	c := NewCompleter(Identity)
	words := make([]string, 0, 500)
	for i := 0; i < 500; i++ {
		words = append(words, fmt.Sprintf("w%03d", i))
	}
	c.Build(words)
	expected := c.Complete("w1", 0)

	done := make(chan []string)
	for i := 0; i < 8; i++ {
		go func() {
			done <- c.Complete("w1", 0)
		}()
	}
	for i := 0; i < 8; i++ {
		got := <-done
		assert.True(t, slices.Equal(expected, got))
	}
}

func BenchmarkComplete(b *testing.B) {
	c := NewCompleterWithOptions(Identity, Options{CacheSize: 0})
	for i := 0; i < 20000; i++ {
		c.AddPair(fmt.Sprintf("word%d", i), "s")
	}
	prefixes := []string{"w", "wo", "word1", "word19", "x"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Complete(prefixes[i%len(prefixes)], 24)
	}
}
