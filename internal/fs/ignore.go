package fs

import (
	"path/filepath"
	"strings"
)

// IgnoreMatcher checks entry names against a set of glob patterns.
// Listings are never recursive, so patterns always match the base name.
type IgnoreMatcher struct {
	patterns []string
}

// NewIgnoreMatcher creates an IgnoreMatcher from raw pattern strings.
// Blank patterns and patterns starting with '#' are skipped.
func NewIgnoreMatcher(rawPatterns []string) *IgnoreMatcher {
	var patterns []string
	for _, raw := range rawPatterns {
		raw = strings.TrimSpace(raw)
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		patterns = append(patterns, raw)
	}
	return &IgnoreMatcher{patterns: patterns}
}

// Match reports whether the entry called name should be left out.
func (m *IgnoreMatcher) Match(name string) bool {
	for _, p := range m.patterns {
		matched, err := filepath.Match(p, name)
		if err != nil {
			// Malformed patterns never match.
			continue
		}
		if matched {
			return true
		}
	}
	return false
}
