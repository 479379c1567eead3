package fixture

import "strings"

const (
	// structuralDumpPrefix opens the node dump of a successful parse. Once
	// seen, the fixture expects a clean parse no matter what follows.
	structuralDumpPrefix = "array("

	syntaxErrorPrefix = "Syntax error"
	cannotUsePrefix   = "Cannot use"
)

// Classifier decides whether an expected-output section denotes a parse
// failure
type Classifier struct{}

// NewClassifier creates a new Classifier
func NewClassifier() *Classifier {
	return &Classifier{}
}

// ExpectsErrors scans the output section line by line, in order. A line
// opening a structural dump ends the scan with false, even if later lines
// would match an error marker. Before that, blank lines are skipped and
// any line starting with an error phrase, or containing "Error" or
// "error" anywhere, returns true immediately.
//
// The substring checks are deliberately broad; they are the corpus
// convention, and tightening them would relabel existing fixtures.
func (c *Classifier) ExpectsErrors(output string) bool {
	for _, line := range strings.Split(output, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, structuralDumpPrefix) {
			break
		}
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, syntaxErrorPrefix) ||
			strings.HasPrefix(trimmed, cannotUsePrefix) ||
			strings.Contains(trimmed, "Error") ||
			strings.Contains(trimmed, "error") {
			return true
		}
	}
	return false
}
