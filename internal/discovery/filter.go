package discovery

import (
	"path/filepath"
	"strings"
)

// Filter filters fixture files by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// ByName filters fixture files by base-name pattern. Patterns with
// wildcards go through filepath.Match, falling back to matching every
// non-wildcard fragment as a substring (so "*math*" works even where
// Match is stricter). Patterns without wildcards are plain substring
// matches.
func (f *Filter) ByName(fixtures []string, pattern string) []string {
	if pattern == "" {
		return fixtures
	}

	var filtered []string
	for _, fixture := range fixtures {
		if matchesName(filepath.Base(fixture), pattern) {
			filtered = append(filtered, fixture)
		}
	}
	return filtered
}

func matchesName(name, pattern string) bool {
	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	// Fragment fallback: every literal piece between wildcards must appear
	fragments := strings.Split(pattern, "*")
	matchedAny := false
	for _, fragment := range fragments {
		if fragment == "" {
			continue
		}
		if !strings.Contains(name, fragment) {
			return false
		}
		matchedAny = true
	}
	return matchedAny
}
