package utils

import "unicode"

// IsWordRune reports whether r can appear inside a tokenized word.
// Tokens are split on everything outside [0-9A-Za-z_].
func IsWordRune(r rune) bool {
	return r == '_' ||
		('0' <= r && r <= '9') ||
		('a' <= r && r <= 'z') ||
		('A' <= r && r <= 'Z')
}

// IsValidInput checks if a prefix is worth querying.
// Returns false for empty strings, strings with runes no token can contain,
// and repetitive strings like "aaaa".
func IsValidInput(s string) bool {
	if len(s) == 0 {
		return false
	}

	for _, r := range s {
		if !IsWordRune(r) {
			return false
		}
	}

	return !IsRepetitive(s)
}

// IsValidPrefix reports whether s could prefix an indexed word.
// Letters and digits of any script pass, so pairs added directly stay reachable.
func IsValidPrefix(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsRepetitive checks for the same character repeated 3+ times
func IsRepetitive(s string) bool {
	if len(s) <= 2 {
		return false
	}

	firstChar := s[0]
	for i := 1; i < len(s); i++ {
		if s[i] != firstChar {
			return false
		}
	}
	return true
}
