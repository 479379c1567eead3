package fixture

import (
	"strings"

	"ntc/internal/domain"
)

// Extractor groups the sections of one fixture file into test cases
type Extractor struct {
	classifier *Classifier
}

// NewExtractor creates a new Extractor
func NewExtractor() *Extractor {
	return &Extractor{classifier: NewClassifier()}
}

// Extract walks the sections of one file and returns its cases in file
// order. A file yields cases only when its section count n satisfies
// n >= 3 and (n-1) % 2 == 0; any other shape returns ok=false and the
// whole file must be skipped, never partially processed.
//
// The walk steps by 2, not 3: the expected-output section of one triple is
// the same section the next triple reads its title from. Titles are the
// last non-blank line of the title section, so the shared section serves
// both roles.
func (e *Extractor) Extract(sections []string) (cases []domain.Case, ok bool) {
	n := len(sections)
	if n < 3 || (n-1)%2 != 0 {
		return nil, false
	}

	for i := 0; i+2 < n; i += 2 {
		output := sections[i+2]
		cases = append(cases, domain.Case{
			Title:         extractTitle(sections[i]),
			Code:          sections[i+1],
			RawOutput:     output,
			ExpectsErrors: e.classifier.ExpectsErrors(output),
		})
	}

	return cases, true
}

// extractTitle returns the last non-blank line of a title section,
// whitespace-trimmed. Sections may carry commentary above the title; only
// the final line names the case. An all-blank section yields "".
func extractTitle(section string) string {
	trimmed := strings.TrimSpace(section)
	if trimmed == "" {
		return ""
	}
	lines := strings.Split(trimmed, "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
