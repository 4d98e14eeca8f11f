package dictionary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// FileFormat represents the document formats the loader understands
type FileFormat int

const (
	FormatUnknown  FileFormat = iota
	FormatText                // Plain text document
	FormatMarkdown            // Markdown document, indexed as plain text
)

// FormatInfo contains metadata about a document format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatText: {
		Format:      FormatText,
		Description: "Plain Text Document",
		Extensions:  []string{".txt", ".text"},
	},
	FormatMarkdown: {
		Format:      FormatMarkdown,
		Description: "Markdown Document",
		Extensions:  []string{".md", ".markdown"},
	},
}

// probeSize is how much of a file is checked for valid UTF-8
const probeSize = 4096

// ValidateFileFormat checks if a file matches the expected format
func ValidateFileFormat(filename string, expectedFormat FileFormat) error {
	fileInfo, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}
	if fileInfo.IsDir() {
		return fmt.Errorf("%s is a directory", filename)
	}

	formatInfo, exists := supportedFormats[expectedFormat]
	if !exists {
		return fmt.Errorf("unknown format: %v", expectedFormat)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	validExt := false
	for _, validExtension := range formatInfo.Extensions {
		if ext == validExtension {
			validExt = true
			break
		}
	}
	if !validExt {
		return fmt.Errorf("file %s has invalid extension %s for format %s (expected: %v)",
			filename, ext, formatInfo.Description, formatInfo.Extensions)
	}

	return validateUTF8(filename)
}

// validateUTF8 rejects documents whose first bytes are not text
func validateUTF8(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer file.Close()

	buffer := make([]byte, probeSize)
	n, _ := file.Read(buffer)
	buffer = buffer[:n]

	// a multi-byte rune may straddle the probe boundary
	if n == probeSize {
		for i := 0; i < utf8.UTFMax-1 && !utf8.Valid(buffer); i++ {
			buffer = buffer[:len(buffer)-1]
		}
	}
	if !utf8.Valid(buffer) {
		return fmt.Errorf("file %s is not valid UTF-8 text", filename)
	}
	log.Debugf("Document %s validated", filename)
	return nil
}

// DetectFileFormat picks the format from the file extension and validates it
func DetectFileFormat(filename string) (FileFormat, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for format, info := range supportedFormats {
		for _, e := range info.Extensions {
			if e == ext {
				if err := ValidateFileFormat(filename, format); err != nil {
					return FormatUnknown, err
				}
				return format, nil
			}
		}
	}
	return FormatUnknown, fmt.Errorf("unable to detect format for file %s", filename)
}

// GetFormatInfo returns information about a specific format
func GetFormatInfo(format FileFormat) (FormatInfo, bool) {
	info, exists := supportedFormats[format]
	return info, exists
}
