package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bastiangx/wordhint/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.WarnLevel)
}

func session(t *testing.T, unique bool, input string) string {
	t.Helper()
	c := suggest.NewCompleter(nil)
	c.AddPair("cat", "feline")
	c.AddPair("car", "vehicle")
	c.AddPair("cart", "vehicle")
	c.AddPair("dog", "canine")

	var out bytes.Buffer
	h := NewInputHandler(c, 1, 10, 24, false, unique, &out)
	require.NoError(t, h.Start(strings.NewReader(input)))
	return out.String()
}

func TestSuggestionsArePrinted(t *testing.T) {
	out := session(t, false, "ca\n")

	assert.Contains(t, out, "Found 3 suggestions for prefix 'ca'")
	car := strings.Index(out, "vehicle")
	cat := strings.Index(out, "feline")
	require.True(t, car >= 0 && cat >= 0)
	assert.Less(t, car, cat, "car sorts before cat")
}

func TestNoSuggestions(t *testing.T) {
	out := session(t, false, "zebra\n\n")
	assert.Contains(t, out, "No suggestions found for prefix: 'zebra'")
}

func TestPrefixChecks(t *testing.T) {
	out := session(t, false, "abcdefghijklmnop\nc-a\n")
	assert.Contains(t, out, "Prefix too long")
	assert.Contains(t, out, "filtered out")
}

func TestUniqueSuggestions(t *testing.T) {
	out := session(t, true, "car\n")
	assert.Contains(t, out, "Found 1 suggestions")
	assert.Equal(t, 1, strings.Count(out, "vehicle"))
}

func TestCommands(t *testing.T) {
	out := session(t, false, ":words ca\n:stats\n:nope\n")
	assert.Contains(t, out, "3 words under 'ca'")
	assert.Contains(t, out, "cart")
	assert.Contains(t, out, "totalWords")
	assert.Contains(t, out, "Unknown command: nope")
}
