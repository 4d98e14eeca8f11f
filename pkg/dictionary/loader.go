// Package dictionary reads documents from disk and turns them into the word
// sequence the completer indexes.
package dictionary

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/bastiangx/wordhint/pkg/tokenize"
	"github.com/charmbracelet/log"
)

// DocInfo contains metadata about a document found in a corpus directory
type DocInfo struct {
	Path   string
	Format FileFormat
	Size   int64
}

// LoaderStats provides statistics about the loading process
type LoaderStats struct {
	Documents       int
	LoadedDocuments int
	FailedDocuments int
	Tokens          int
}

// Loader reads every supported document of a directory.
// Files are read in parallel; tokens are returned in file name order.
type Loader struct {
	dirPath    string
	workers    int
	maxRetries int
	retryDelay time.Duration
	stats      LoaderStats
	mu         sync.Mutex
}

// NewLoader creates a loader for the documents in dirPath
func NewLoader(dirPath string) *Loader {
	return &Loader{
		dirPath:    dirPath,
		workers:    4,
		maxRetries: 3,
		retryDelay: 50 * time.Millisecond,
	}
}

// LoadFile reads a single document and tokenizes it
func LoadFile(path string) ([]string, error) {
	if _, err := DetectFileFormat(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}
	return tokenize.Split(string(data)), nil
}

// Load reads path as a single document, or as a corpus directory
func Load(path string) ([]string, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !stat.IsDir() {
		return LoadFile(path)
	}
	return NewLoader(path).LoadAll()
}

// Available scans the directory for supported documents, sorted by path
func (l *Loader) Available() ([]DocInfo, error) {
	entries, err := os.ReadDir(l.dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to scan for documents: %w", err)
	}

	var docs []DocInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(l.dirPath, entry.Name())
		format, err := DetectFileFormat(path)
		if err != nil {
			log.Debugf("Skipping %s: %v", path, err)
			continue
		}
		info, err := entry.Info()
		if err != nil {
			log.Warnf("Failed to stat %s: %v", path, err)
			continue
		}
		docs = append(docs, DocInfo{Path: path, Format: format, Size: info.Size()})
	}

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].Path < docs[j].Path
	})
	return docs, nil
}

// LoadAll reads every available document and concatenates their tokens.
// A document that keeps failing is skipped; LoadAll fails only when nothing loads.
func (l *Loader) LoadAll() ([]string, error) {
	docs, err := l.Available()
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("no documents found in %s", l.dirPath)
	}
	log.Debugf("Found %d documents", len(docs))

	results := make([][]string, len(docs))
	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < l.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = l.loadWithRetry(docs[i].Path)
			}
		}()
	}
	for i := range docs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var tokens []string
	loaded := 0
	for _, r := range results {
		if r == nil {
			continue
		}
		loaded++
		tokens = append(tokens, r...)
	}

	l.mu.Lock()
	l.stats = LoaderStats{
		Documents:       len(docs),
		LoadedDocuments: loaded,
		FailedDocuments: len(docs) - loaded,
		Tokens:          len(tokens),
	}
	l.mu.Unlock()

	if loaded == 0 {
		return nil, fmt.Errorf("all %d documents in %s failed to load", len(docs), l.dirPath)
	}
	return tokens, nil
}

// loadWithRetry returns nil once maxRetries attempts have failed
func (l *Loader) loadWithRetry(path string) []string {
	for attempt := 1; attempt <= l.maxRetries; attempt++ {
		tokens, err := LoadFile(path)
		if err == nil {
			log.Debugf("Loaded %s (%d tokens)", path, len(tokens))
			return tokens
		}
		log.Errorf("Failed to load document %s: %v", path, err)
		if attempt < l.maxRetries {
			log.Debugf("Retrying %s (attempt %d/%d)", path, attempt+1, l.maxRetries)
			time.Sleep(time.Duration(attempt) * l.retryDelay)
		}
	}
	log.Errorf("Document %s failed %d times, giving up", path, l.maxRetries)
	return nil
}

// Stats returns the counters of the last LoadAll
func (l *Loader) Stats() LoaderStats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stats
}
