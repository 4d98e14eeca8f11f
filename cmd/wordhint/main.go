// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the WordHint suggestion server and CLI [DBG] application.

WordHint indexes the words of a document (or a directory of documents) into a
prefix trie and answers prefix queries with every suggestion stored under the
prefix. Each indexed word carries a suggestion produced by a configurable
template; the default mirrors the classic demo payload:

	Suggestion for "<word>"

# Usage

Serve suggestions for a document over msgpack IPC:

	wordhint -doc notes.txt

Index a directory of .txt/.md files and explore it interactively:

	wordhint -doc corpus/ -c -limit 10

# Configuration

Runtime configuration lives in a TOML file, created with defaults under
~/.config/wordhint/config.toml unless -config points elsewhere:

	[server]
	max_limit = 64
	min_prefix = 1
	max_prefix = 60
	enable_filter = true

	[index]
	template = "Suggestion for \"%s\""
	skip_empty = true
	lowercase = false
	cache_size = 512

	[cli]
	default_limit = 24
	unique = false

# Command Line Flags

	-doc string
	    Document file or directory of documents to index
	-config string
	    Path to a config file
	-template string
	    Override the suggestion template
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-limit int
	    Number of suggestions to show in CLI mode
	-prmin int
	    Minimum prefix length
	-prmax int
	    Maximum prefix length
	-no-filter
	    Disable input filtering in CLI mode
	-version
	    Show current version
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordhint/internal/cli"
	"github.com/bastiangx/wordhint/internal/logger"
	"github.com/bastiangx/wordhint/internal/utils"
	"github.com/bastiangx/wordhint/pkg/config"
	"github.com/bastiangx/wordhint/pkg/dictionary"
	"github.com/bastiangx/wordhint/pkg/server"
	"github.com/bastiangx/wordhint/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0-beta"
	AppName = "wordhint"
	gh      = "https://github.com/bastiangx/wordhint"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, document loading and the chosen front end.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	docPath := flag.String("doc", "", "Document file or directory of .txt/.md documents to index")
	configPath := flag.String("config", "", "Path to config file")
	template := flag.String("template", "", "Suggestion template, %s is replaced by the word")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", defaults.CLI.DefaultLimit, "Number of suggestions to show")
	minPrefix := flag.Int("prmin", defaults.CLI.DefaultMinLen, "Minimum prefix length for suggestions")
	maxPrefix := flag.Int("prmax", defaults.CLI.DefaultMaxLen, "Maximum prefix length for suggestions")
	noFilter := flag.Bool("no-filter", defaults.CLI.DefaultNoFilter, "Disable input filtering (DBG only)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))

	policy := appConfig.Index.Policy()
	if *template != "" {
		policy = suggest.Template(*template)
	}
	completer := suggest.NewCompleterWithOptions(policy, appConfig.Index.Options())

	if *docPath != "" {
		resolved := resolveDocPath(*docPath)
		tokens, err := dictionary.Load(resolved)
		if err != nil {
			log.Fatalf("Failed to load documents: %v", err)
		}
		completer.Build(tokens)
		log.Debug("Completer init done", "doc", resolved, "tokens", len(tokens))
	} else {
		log.Warn("No document specified, running with an empty index...")
	}

	// CLI would be mainly used for testing and dbg purposes.
	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"minPrefix", *minPrefix,
			"maxPrefix", *maxPrefix,
			"limit", *limit,
			"noFilter", *noFilter)

		inputHandler := cli.NewInputHandler(completer, *minPrefix, *maxPrefix, *limit, *noFilter, appConfig.CLI.Unique, os.Stdout)
		if err := inputHandler.Start(os.Stdin); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(completer, appConfig, activePath)
	showStartupInfo(*docPath, completer.Stats())

	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// resolveDocPath falls back to the raw path when the resolver finds nothing,
// so the loader reports the real error.
func resolveDocPath(path string) string {
	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Warnf("Failed to initialize path resolver: %v", err)
		return path
	}
	log.Debugf("Config dir: %s", pathResolver.ConfigDir())
	resolved, err := pathResolver.ResolveDocPath(path)
	if err != nil {
		log.Debugf("Path resolution failed: %v", err)
		return path
	}
	return resolved
}

func printVersion() {
	banner := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ WordHint ] Prefix suggestions from your own documents")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process on stderr.
func showStartupInfo(docPath string, stats map[string]int) {
	info := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

	info.Infof("%s %s", AppName, Version)
	info.Infof("Process ID: [ %d ]", os.Getpid())
	if docPath != "" {
		info.Infof("document: ( %s )", docPath)
	}
	info.Infof("words: %s, distinct: %s",
		utils.FormatWithCommas(stats["totalWords"]),
		utils.FormatWithCommas(stats["distinctWords"]))
	info.Info("status: ready")
}
