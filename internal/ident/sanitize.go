// Package ident derives harness identifiers from fixture paths.
package ident

import (
	"regexp"
	"strings"
)

var (
	separators  = strings.NewReplacer("/", "_", "\\", "_", "-", "_", ".", "_")
	invalidRune = regexp.MustCompile(`[^a-zA-Z0-9_]`)
	digitStart  = regexp.MustCompile(`^[0-9]`)
)

// Sanitize maps an arbitrary path-derived name onto a valid lowercase
// identifier: path separators, hyphens and dots become underscores, every
// other character outside [A-Za-z0-9_] is dropped, a leading digit gains
// an underscore prefix, and the result is lowercased. Total and
// idempotent; pathological input may produce an empty string, which is a
// valid if degenerate identifier.
func Sanitize(name string) string {
	name = separators.Replace(name)
	name = invalidRune.ReplaceAllString(name, "")
	if digitStart.MatchString(name) {
		name = "_" + name
	}
	return strings.ToLower(name)
}
