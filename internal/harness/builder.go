// Package harness accumulates the conversion run's table entries and
// renders the generated test suite source.
package harness

import (
	"bytes"
	"fmt"
	"go/format"

	"ntc/internal/domain"
	"ntc/internal/ident"
)

// Prefix namespaces every generated identifier after the corpus origin
const Prefix = "nikic_"

// Identifier builds the table identifier for the case at survivorIndex
// (1-based among the cases that survived filtering). Files with a single
// survivor carry no suffix. This counter is not the emitter's raw index:
// filtered cases shift it, while fixture file names keep theirs.
func Identifier(base string, survivorIndex, survivors int) string {
	name := Prefix + ident.Sanitize(base)
	if survivors > 1 {
		name = fmt.Sprintf("%s_%d", name, survivorIndex)
	}
	return name
}

// Builder accumulates table entries across one run and renders the
// generated suite source
type Builder struct {
	pkg          string
	parserImport string
	fixtureBase  string

	entries   []domain.Entry
	firstSeen map[string]string // identifier -> fixture path of first occurrence
	warnings  []domain.DuplicateWarning
}

// NewBuilder creates a Builder for the given generated package name,
// subject-parser import path, and fixture base dir (relative to the
// generated file, slash-separated).
func NewBuilder(pkg, parserImport, fixtureBase string) *Builder {
	return &Builder{
		pkg:          pkg,
		parserImport: parserImport,
		fixtureBase:  fixtureBase,
		firstSeen:    make(map[string]string),
	}
}

// Add records one table row. Duplicate identifiers stay in the table and
// are reported as warnings, never deduplicated.
func (b *Builder) Add(entry domain.Entry) {
	if first, ok := b.firstSeen[entry.Identifier]; ok {
		b.warnings = append(b.warnings, domain.DuplicateWarning{
			Identifier: entry.Identifier,
			Path:       entry.FixturePath,
			FirstPath:  first,
		})
	} else {
		b.firstSeen[entry.Identifier] = entry.FixturePath
	}
	b.entries = append(b.entries, entry)
}

// Entries returns the accumulated table rows in insertion order
func (b *Builder) Entries() []domain.Entry {
	return b.entries
}

// Warnings returns one warning per duplicate identifier occurrence
func (b *Builder) Warnings() []domain.DuplicateWarning {
	return b.warnings
}

// Render produces the generated harness source, gofmt-formatted
func (b *Builder) Render() ([]byte, error) {
	var buf bytes.Buffer
	err := suiteTemplate.Execute(&buf, suiteData{
		Package:      b.pkg,
		ParserImport: b.parserImport,
		FixtureBase:  b.fixtureBase,
		Entries:      b.entries,
	})
	if err != nil {
		return nil, fmt.Errorf("render harness: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format harness: %w", err)
	}
	return src, nil
}
