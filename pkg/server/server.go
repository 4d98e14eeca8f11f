package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/wordhint/internal/logger"
	"github.com/bastiangx/wordhint/internal/utils"
	"github.com/bastiangx/wordhint/pkg/config"
	"github.com/bastiangx/wordhint/pkg/suggest"
	"github.com/bastiangx/wordhint/pkg/tokenize"
	"github.com/bastiangx/wordhint/pkg/trie"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// reloadEvery is how many requests pass between config file reloads
const reloadEvery = 100

// Server handles the IPC for suggestion lookups
type Server struct {
	completer    suggest.ICompleter
	config       *config.Config
	configPath   string
	decoder      *msgpack.Decoder
	encoder      *msgpack.Encoder
	out          *bufio.Writer
	log          *log.Logger
	requestCount int
}

// NewServer creates a server speaking msgpack over stdin/stdout
func NewServer(completer suggest.ICompleter, cfg *config.Config, configPath string) *Server {
	return NewServerWithIO(completer, cfg, configPath, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server over arbitrary streams
func NewServerWithIO(completer suggest.ICompleter, cfg *config.Config, configPath string, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	out := bufio.NewWriter(w)
	return &Server{
		completer:  completer,
		config:     cfg,
		configPath: configPath,
		decoder:    msgpack.NewDecoder(bufio.NewReader(r)),
		encoder:    msgpack.NewEncoder(out),
		out:        out,
		log:        logger.New("ipc"),
	}
}

// Start announces readiness then serves requests until the input ends.
// A clean EOF returns nil.
func (s *Server) Start() error {
	s.log.Debug("Starting server")
	s.sendResponse(StatusMessage{Status: "ready"})

	for {
		raw, err := s.decoder.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debug("Client disconnected")
				return nil
			}
			s.log.Errorf("Reading request: %v", err)
			s.sendError("", "Invalid msgpack request", 400)
			return fmt.Errorf("read request: %w", err)
		}

		var req Request
		if err := msgpack.Unmarshal(raw, &req); err != nil {
			s.log.Warnf("Decoding request: %v", err)
			s.sendError(requestID(raw), "Invalid request: "+err.Error(), 400)
			continue
		}
		s.handleRequest(req)
	}
}

// requestID recovers the id of a request that failed to decode, if it has one
func requestID(raw msgpack.RawMessage) string {
	var envelope struct {
		ID string `msgpack:"id"`
	}
	if err := msgpack.Unmarshal(raw, &envelope); err != nil {
		return ""
	}
	return envelope.ID
}

func (s *Server) handleRequest(req Request) {
	s.requestCount++
	if s.requestCount%reloadEvery == 0 {
		s.reloadConfig()
	}

	switch req.Action {
	case "":
		s.handleComplete(req)
	case "add_text":
		s.handleAddText(req)
	case "add_pair":
		s.handleAddPair(req)
	case "words":
		s.handleWords(req)
	case "stats":
		s.sendResponse(IndexResponse{ID: req.ID, Status: "ok", Stats: s.completer.Stats()})
	case "set_config":
		s.handleSetConfig(req)
	default:
		s.sendError(req.ID, fmt.Sprintf("Unknown action: %s", req.Action), 400)
	}
}

func (s *Server) handleComplete(req Request) {
	cfg := s.config.Server
	prefixLen := utf8.RuneCountInString(req.Prefix)

	if prefixLen < cfg.MinPrefix {
		s.log.Debug("Prefix too short", "prefix", req.Prefix)
		s.sendError(req.ID, fmt.Sprintf("Prefix must be at least %d characters", cfg.MinPrefix), 400)
		return
	}
	if cfg.MaxPrefix > 0 && prefixLen > cfg.MaxPrefix {
		s.log.Debug("Prefix too long", "prefix", req.Prefix)
		s.sendError(req.ID, fmt.Sprintf("Prefix exceeds maximum length of %d characters", cfg.MaxPrefix), 400)
		return
	}

	limit := req.Limit
	if limit < 1 || (cfg.MaxLimit > 0 && limit > cfg.MaxLimit) {
		limit = cfg.MaxLimit
	}

	if cfg.EnableFilter && req.Prefix != "" && !utils.IsValidPrefix(req.Prefix) {
		s.log.Debug("Prefix filtered out", "prefix", req.Prefix)
		s.sendError(req.ID, fmt.Sprintf("Prefix filtered: %q contains characters no word can hold", req.Prefix), 400)
		return
	}

	start := time.Now()
	var matches []trie.Match
	if req.Unique {
		matches = suggest.UniqueMatches(s.completer.CompleteMatches(req.Prefix, 0), limit)
	} else {
		matches = s.completer.CompleteMatches(req.Prefix, limit)
	}
	elapsed := time.Since(start)

	suggestions := make([]CompletionSuggestion, len(matches))
	for i, m := range matches {
		suggestions[i] = CompletionSuggestion{Word: m.Word, Suggestion: m.Suggestion, Rank: i + 1}
	}

	s.sendResponse(CompletionResponse{
		ID:          req.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) handleAddText(req Request) {
	tokens := tokenize.Split(req.Text)
	if req.Unique {
		tokens = tokenize.Unique(tokens)
	}
	before := s.completer.Stats()["totalWords"]
	s.completer.Build(tokens)
	added := s.completer.Stats()["totalWords"] - before

	s.log.Debugf("Indexed %d of %d tokens", added, len(tokens))
	s.sendResponse(IndexResponse{ID: req.ID, Status: "ok", Added: added})
}

func (s *Server) handleAddPair(req Request) {
	before := s.completer.Stats()["totalWords"]
	s.completer.AddPair(req.Word, req.Suggestion)
	added := s.completer.Stats()["totalWords"] - before
	s.sendResponse(IndexResponse{ID: req.ID, Status: "ok", Added: added})
}

func (s *Server) handleWords(req Request) {
	words := s.completer.Words(req.Prefix)
	if req.Limit > 0 && len(words) > req.Limit {
		words = words[:req.Limit]
	}
	s.sendResponse(IndexResponse{ID: req.ID, Status: "ok", Words: words})
}

func (s *Server) handleSetConfig(req Request) {
	if req.MinPrefix != nil && *req.MinPrefix < 0 {
		s.sendResponse(ConfigResponse{ID: req.ID, Status: "error", Error: "min_prefix must not be negative"})
		return
	}
	if req.MaxLimit != nil && *req.MaxLimit < 1 {
		s.sendResponse(ConfigResponse{ID: req.ID, Status: "error", Error: "max_limit must be at least 1"})
		return
	}
	if req.MaxPrefix != nil && *req.MaxPrefix < 0 {
		s.sendResponse(ConfigResponse{ID: req.ID, Status: "error", Error: "max_prefix must not be negative"})
		return
	}
	minPrefix, maxPrefix := s.config.Server.MinPrefix, s.config.Server.MaxPrefix
	if req.MinPrefix != nil {
		minPrefix = *req.MinPrefix
	}
	if req.MaxPrefix != nil {
		maxPrefix = *req.MaxPrefix
	}
	if maxPrefix > 0 && minPrefix > maxPrefix {
		s.sendResponse(ConfigResponse{
			ID:     req.ID,
			Status: "error",
			Error:  fmt.Sprintf("min_prefix (%d) exceeds max_prefix (%d)", minPrefix, maxPrefix),
		})
		return
	}

	status, errMsg := "ok", ""
	if err := s.config.Update(s.configPath, req.MaxLimit, req.MinPrefix, req.MaxPrefix, req.EnableFilter); err != nil {
		s.log.Errorf("Saving config: %v", err)
		status, errMsg = "error", err.Error()
	}

	s.sendResponse(ConfigResponse{
		ID:        req.ID,
		Status:    status,
		Error:     errMsg,
		MaxLimit:  s.config.Server.MaxLimit,
		MinPrefix: s.config.Server.MinPrefix,
		MaxPrefix: s.config.Server.MaxPrefix,
	})
}

// reloadConfig picks up server limits edited in the config file
func (s *Server) reloadConfig() {
	if s.configPath == "" || !utils.FileExists(s.configPath) {
		return
	}
	cfg, err := config.LoadConfig(s.configPath)
	if err != nil {
		s.log.Warnf("Reloading config: %v", err)
		return
	}
	s.config.Server = cfg.Server
	s.log.Debug("Config reloaded", "path", s.configPath)
}

// sendResponse encodes response and flushes it to the client
func (s *Server) sendResponse(response any) {
	if err := s.encoder.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
		return
	}
	if err := s.out.Flush(); err != nil {
		s.log.Errorf("Flushing response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(CompletionError{ID: id, Error: message, Code: code})
}
