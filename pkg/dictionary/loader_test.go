package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDetectFileFormat(t *testing.T) {
	dir := t.TempDir()
	testCases := []struct {
		name        string
		content     string
		expected    FileFormat
		wantErr     bool
		description string
	}{
		{"a.txt", "hello world", FormatText, false, "Plain text"},
		{"b.MD", "# title", FormatMarkdown, false, "Markdown, upper case extension"},
		{"c.txt", "", FormatText, false, "Empty document"},
		{"d.bin", "hello", FormatUnknown, true, "Unsupported extension"},
		{"e.txt", "\xff\xfe\x00bad", FormatUnknown, true, "Not UTF-8"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			path := writeDoc(t, dir, tc.name, tc.content)
			format, err := DetectFileFormat(path)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, format)
		})
	}
}

func TestValidateFileFormatMismatch(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "a.txt", "hi")
	assert.Error(t, ValidateFileFormat(path, FormatMarkdown))
	assert.Error(t, ValidateFileFormat(path, FormatUnknown))
	assert.NoError(t, ValidateFileFormat(path, FormatText))

	info, ok := GetFormatInfo(FormatMarkdown)
	assert.True(t, ok)
	assert.Contains(t, info.Extensions, ".md")
}

func TestLoadFile(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "doc.txt", "The cat, the hat!")
	tokens, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"The", "cat", "the", "hat", ""}, tokens)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "b.md", "beta gamma")
	writeDoc(t, dir, "a.txt", "alpha")
	writeDoc(t, dir, "skip.json", `{"x": 1}`)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.txt"), 0755))

	loader := NewLoader(dir)
	docs, err := loader.Available()
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, filepath.Join(dir, "a.txt"), docs[0].Path)
	assert.Equal(t, FormatMarkdown, docs[1].Format)

	tokens, err := loader.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, tokens)

	stats := loader.Stats()
	assert.Equal(t, 2, stats.Documents)
	assert.Equal(t, 2, stats.LoadedDocuments)
	assert.Equal(t, 3, stats.Tokens)
}

func TestLoaderEmptyDir(t *testing.T) {
	_, err := NewLoader(t.TempDir()).LoadAll()
	assert.Error(t, err)

	_, err = NewLoader(filepath.Join(t.TempDir(), "missing")).LoadAll()
	assert.Error(t, err)
}

func TestLoadDispatch(t *testing.T) {
	dir := t.TempDir()
	file := writeDoc(t, dir, "one.txt", "solo")

	tokens, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, []string{"solo"}, tokens)

	tokens, err = Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"solo"}, tokens)

	_, err = Load(filepath.Join(dir, "nope"))
	assert.Error(t, err)
}
