package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/bastiangx/wordhint/internal/utils"
	"github.com/bastiangx/wordhint/pkg/trie"
	"github.com/charmbracelet/lipgloss"
)

// maxSuggestionWidth caps how much of a long suggestion is printed
const maxSuggestionWidth = 60

var (
	wordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"})
	suggestionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	dimStyle = lipgloss.NewStyle().Faint(true)
)

// renderMatches prints one numbered line per match
func renderMatches(w io.Writer, prefix string, matches []trie.Match) {
	fmt.Fprintf(w, "Found %d suggestions for prefix '%s':\n", len(matches), prefix)
	for i, m := range matches {
		word := wordStyle.Render(fmt.Sprintf("%-20s", m.Word))
		sug := suggestionStyle.Render(utils.Ellipsize(m.Suggestion, maxSuggestionWidth))
		fmt.Fprintf(w, "%3d. %s %s\n", i+1, word, sug)
	}
}

// renderWords prints distinct words on one line
func renderWords(w io.Writer, prefix string, words []string) {
	fmt.Fprintf(w, "%d words under '%s':\n", len(words), prefix)
	for _, word := range words {
		fmt.Fprintf(w, "  %s\n", wordStyle.Render(word))
	}
}

// renderStats prints counters sorted by name
func renderStats(w io.Writer, stats map[string]int) {
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%-16s %s\n", dimStyle.Render(k), utils.FormatWithCommas(stats[k]))
	}
}
