package suggest

import "strings"

// DefaultTemplate mirrors the demo payload attached to every indexed word.
const DefaultTemplate = `Suggestion for "%s"`

// Policy turns an indexed word into the suggestion stored for it.
type Policy func(word string) string

// Template substitutes the word for every %s in format. Other % sequences
// are kept literally. A format without %s yields itself for every word.
func Template(format string) Policy {
	if !strings.Contains(format, "%s") {
		return func(string) string {
			return format
		}
	}
	return func(word string) string {
		return strings.ReplaceAll(format, "%s", word)
	}
}

// Identity suggests the word itself.
func Identity(word string) string {
	return word
}
