// Package emit writes surviving case code out as standalone fixture files.
package emit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ntc/internal/domain"
)

// TemplateMarker flags parameterized corpus cases. Their code is a
// template, not parseable source, so they are filtered instead of emitted.
const TemplateMarker = "@@{"

// Survives reports whether a case can be extracted directly
func Survives(c domain.Case) bool {
	return !strings.Contains(c.Code, TemplateMarker)
}

// Emitter writes case code to fixture files under the fixture root
type Emitter struct {
	root   string
	ext    string
	dryRun bool
}

// NewEmitter creates a new Emitter. With dryRun set, Emit computes paths
// but writes nothing.
func NewEmitter(root, ext string, dryRun bool) *Emitter {
	return &Emitter{root: root, ext: ext, dryRun: dryRun}
}

// FixtureName returns the slash-separated fixture path for the case at
// rawIndex (0-based, counted before template filtering). A file whose
// only case survives keeps the bare base name; otherwise each fixture is
// suffixed with its original 1-based position, so indices are stable even
// when earlier cases were filtered out.
func (e *Emitter) FixtureName(base string, rawIndex, survivors int) string {
	if survivors == 1 {
		return base + "." + e.ext
	}
	return fmt.Sprintf("%s_%d.%s", base, rawIndex+1, e.ext)
}

// Emit writes the case code verbatim to relPath under the fixture root,
// creating parent directories as needed. Re-running over the same input
// regenerates identical content.
func (e *Emitter) Emit(relPath, code string) error {
	if e.dryRun {
		return nil
	}
	path := filepath.Join(e.root, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create fixture dir for %s: %w", relPath, err)
	}
	if err := os.WriteFile(path, []byte(code), 0644); err != nil {
		return fmt.Errorf("write fixture %s: %w", relPath, err)
	}
	return nil
}
