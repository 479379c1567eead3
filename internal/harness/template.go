package harness

import (
	"text/template"

	"ntc/internal/domain"
)

type suiteData struct {
	Package      string
	ParserImport string
	FixtureBase  string
	Entries      []domain.Entry
}

// suiteTemplate renders the generated test file: the static fixture table
// and one suite function that replays every row, accumulating mismatches
// so a single run reports them all. Snapshots follow the golden-file
// convention: written when absent or when UPDATE_SNAPSHOTS is set.
var suiteTemplate = template.Must(template.New("suite").Parse(`// Code generated by ntc. DO NOT EDIT.

package {{.Package}}

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	parser {{printf "%q" .ParserImport}}
)

type nikicTest struct {
	name          string
	file          string
	expectsErrors bool
}

var nikicTests = []nikicTest{
{{- range .Entries}}
	{name: {{printf "%q" .Identifier}}, file: {{printf "%q" .FixturePath}}, expectsErrors: {{.ExpectsErrors}}},
{{- end}}
}

func TestNikicSuite(t *testing.T) {
	base := filepath.FromSlash({{printf "%q" .FixtureBase}})

	var failures []string

	for _, tc := range nikicTests {
		source, err := os.ReadFile(filepath.Join(base, filepath.FromSlash(tc.file)))
		if err != nil {
			t.Fatalf("failed to read %s: %v", tc.file, err)
		}

		result, panicked := parseRecovered(string(source))
		if panicked {
			failures = append(failures, fmt.Sprintf("PANIC: %s (%s)", tc.name, tc.file))
			continue
		}

		if tc.expectsErrors {
			if len(result.Errors) == 0 {
				failures = append(failures, fmt.Sprintf("expected errors but got none: %s (%s)", tc.name, tc.file))
				continue
			}
		} else if len(result.Errors) > 0 {
			failures = append(failures, fmt.Sprintf("unexpected errors for %s (%s): %v", tc.name, tc.file, result.Errors))
			continue
		}

		if err := compareSnapshot(tc.name, result.Program.String()); err != nil {
			failures = append(failures, fmt.Sprintf("snapshot mismatch for %s (%s): %v", tc.name, tc.file, err))
		}
	}

	if len(failures) > 0 {
		t.Fatalf("\n=== nikic test failures (%d/%d) ===\n%s",
			len(failures), len(nikicTests), strings.Join(failures, "\n"))
	}
}

func parseRecovered(source string) (result parser.Result, panicked bool) {
	defer func() {
		if recover() != nil {
			panicked = true
		}
	}()
	return parser.Parse(source), false
}

func compareSnapshot(name, got string) error {
	path := filepath.Join("testdata", "snapshots", name+".snap")
	if os.Getenv("UPDATE_SNAPSHOTS") != "" {
		return writeSnapshot(path, got)
	}
	want, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return writeSnapshot(path, got)
	}
	if err != nil {
		return err
	}
	if string(want) != got {
		return fmt.Errorf("result differs from %s", path)
	}
	return nil
}

func writeSnapshot(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}
`))
