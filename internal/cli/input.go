// Package cli handles cmd line input and suggestions for DBG and testing various features
package cli

import (
	"bufio"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/wordhint/internal/logger"
	"github.com/bastiangx/wordhint/internal/utils"
	"github.com/bastiangx/wordhint/pkg/suggest"
	"github.com/bastiangx/wordhint/pkg/trie"
	"github.com/charmbracelet/log"
)

// InputHandler reads prefixes line by line and prints their suggestions.
// Lines starting with ':' are commands: ":words <prefix>" and ":stats".
type InputHandler struct {
	completer       suggest.ICompleter
	minPrefixLength int
	maxPrefixLength int
	suggestLimit    int
	noFilter        bool
	unique          bool
	out             io.Writer
	log             *log.Logger
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(completer suggest.ICompleter, minLength, maxLength, limit int, noFilter, unique bool, out io.Writer) *InputHandler {
	return &InputHandler{
		completer:       completer,
		minPrefixLength: minLength,
		maxPrefixLength: maxLength,
		suggestLimit:    limit,
		noFilter:        noFilter,
		unique:          unique,
		out:             out,
		log:             logger.NewWithWriter(out, ""),
	}
}

// Start runs the loop until in is exhausted.
// EOF ends the session without error.
func (h *InputHandler) Start(in io.Reader) error {
	h.log.Print("WordHint CLI [BETA]")
	h.log.Print("type a prefix and press Enter to see the suggestions (Ctrl+C to exit):")

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			h.handleCommand(line[1:])
			continue
		}
		h.handleInput(line)
	}
	return scanner.Err()
}

func (h *InputHandler) handleCommand(cmd string) {
	name, arg, _ := strings.Cut(cmd, " ")
	switch name {
	case "words":
		arg = strings.TrimSpace(arg)
		renderWords(h.out, arg, h.completer.Words(arg))
	case "stats":
		renderStats(h.out, h.completer.Stats())
	default:
		h.log.Errorf("Unknown command: %s", name)
	}
}

// handleInput validates a prefix, asks the completer and prints the result.
// An empty result is reported as "No suggestions found".
func (h *InputHandler) handleInput(prefix string) {
	n := utf8.RuneCountInString(prefix)
	if n < h.minPrefixLength {
		h.log.Errorf("Prefix too short: %s", prefix)
		return
	}
	if h.maxPrefixLength > 0 && n > h.maxPrefixLength {
		h.log.Errorf("Prefix too long: %s", prefix)
		return
	}

	if !h.noFilter && !utils.IsValidInput(prefix) {
		h.log.Warnf("No suggestions found for prefix: '%s' (filtered out)", prefix)
		return
	}

	start := time.Now()
	var matches []trie.Match
	if h.unique {
		matches = suggest.UniqueMatches(h.completer.CompleteMatches(prefix, 0), h.suggestLimit)
	} else {
		matches = h.completer.CompleteMatches(prefix, h.suggestLimit)
	}
	log.Debugf("Took [ %v ] for prefix '%s'", time.Since(start), prefix)

	if len(matches) == 0 {
		h.log.Warnf("No suggestions found for prefix: '%s'", prefix)
		return
	}
	renderMatches(h.out, prefix, matches)
}
