package fixture

import "strings"

// Delimiter separates sections inside a .test file. The marker must own a
// whole line; dashes embedded in code or expected output do not split.
const Delimiter = "\n-----\n"

// Split cuts raw fixture text into its ordered delimiter-bounded sections.
// A file without the delimiter yields a single section. No trimming is
// applied; consumers decide what whitespace means.
func Split(content string) []string {
	return strings.Split(content, Delimiter)
}
