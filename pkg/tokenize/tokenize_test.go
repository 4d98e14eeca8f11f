package tokenize

import (
	"reflect"
	"slices"
	"testing"
)

func TestSplit(t *testing.T) {
	testCases := []struct {
		input       string
		expected    []string
		description string
	}{
		{"", []string{""}, "Empty text is one empty token"},
		{"hello", []string{"hello"}, "Single word"},
		{"hello world", []string{"hello", "world"}, "Space separated"},
		{"hello,  world!", []string{"hello", "world", ""}, "Trailing separator"},
		{"...start", []string{"", "start"}, "Leading separator"},
		{"snake_case and 42", []string{"snake_case", "and", "42"}, "Underscore and digits are word chars"},
		{"the cat, the hat", []string{"the", "cat", "the", "hat"}, "Repeats are kept"},
		{"café", []string{"caf", ""}, "Non-ASCII letters separate"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := Split(tc.input)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Split(%q): expected %q, got %q", tc.input, tc.expected, got)
			}
			lazy := slices.Collect(Words(tc.input))
			if !reflect.DeepEqual(lazy, tc.expected) {
				t.Errorf("Words(%q): expected %q, got %q", tc.input, tc.expected, lazy)
			}
		})
	}
}

func TestWordsStopsEarly(t *testing.T) {
	var got []string
	for w := range Words("a b c d") {
		got = append(got, w)
		if len(got) == 2 {
			break
		}
	}
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("unexpected tokens %q", got)
	}
}

func TestNonEmptyAndUnique(t *testing.T) {
	tokens := Split("!the cat; the hat!")
	if got := NonEmpty(tokens); !reflect.DeepEqual(got, []string{"the", "cat", "the", "hat"}) {
		t.Errorf("NonEmpty: got %q", got)
	}
	if got := Unique(NonEmpty(tokens)); !reflect.DeepEqual(got, []string{"the", "cat", "hat"}) {
		t.Errorf("Unique: got %q", got)
	}
}
