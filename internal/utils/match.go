package utils

import (
	"regexp"
	"strings"
)

var (
	wordPattern  = regexp.MustCompile(`[a-z0-9]+`)
	punctPattern = regexp.MustCompile(`[^a-z0-9\s]+`)
)

// Fold lowercases s for case-insensitive matching.
func Fold(s string) string {
	return strings.ToLower(s)
}

// ContainsFold reports whether haystack contains needle, ignoring case.
// Empty needles never match.
func ContainsFold(haystack, needle string) bool {
	needle = strings.TrimSpace(strings.ToLower(needle))
	if needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), needle)
}

// FirstMatchFold returns true on the first candidate found in haystack,
// ignoring case. The scan stops at the first hit.
func FirstMatchFold(haystack string, candidates []string) bool {
	lower := strings.ToLower(haystack)
	for _, candidate := range candidates {
		candidate = strings.TrimSpace(strings.ToLower(candidate))
		if candidate == "" {
			continue
		}
		if strings.Contains(lower, candidate) {
			return true
		}
	}
	return false
}

// Words splits s into lowercase alphanumeric tokens.
func Words(s string) []string {
	return wordPattern.FindAllString(strings.ToLower(s), -1)
}

// ContainsAllWords reports whether every word of phrase longer than minLen
// characters appears somewhere in haystack. Phrases with no qualifying words
// never match. This tolerates phrasing variants like "Senior Backend
// Engineer" vs "Backend Engineer (Senior)".
func ContainsAllWords(haystack, phrase string, minLen int) bool {
	lower := strings.ToLower(haystack)
	matched := false
	for _, word := range Words(phrase) {
		if len(word) <= minLen {
			continue
		}
		if !strings.Contains(lower, word) {
			return false
		}
		matched = true
	}
	return matched
}

// StripPunct lowercases s and removes everything outside [a-z0-9] and
// whitespace, so "Node.js" and "nodejs" normalize alike.
func StripPunct(s string) string {
	return punctPattern.ReplaceAllString(strings.ToLower(s), "")
}

// ContainsPrefixFold reports whether haystack contains the first prefixLen
// characters of needle, ignoring case. Needles shorter than prefixLen fall
// back to a whole-needle match. This tolerates suffix variants like "React"
// vs "ReactJS".
func ContainsPrefixFold(haystack, needle string, prefixLen int) bool {
	needle = strings.TrimSpace(strings.ToLower(needle))
	if needle == "" {
		return false
	}
	if len(needle) > prefixLen {
		needle = needle[:prefixLen]
	}
	return strings.Contains(strings.ToLower(haystack), needle)
}
