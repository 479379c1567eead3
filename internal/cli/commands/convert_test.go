package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"ntc/internal/config"
	"ntc/internal/domain"
	"ntc/internal/storage"
)

const delimiter = "\n-----\n"

func writeFixture(t *testing.T, root, rel string, sections ...string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(strings.Join(sections, delimiter)), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", rel, err)
	}
}

func TestConvertCommand_Execute(t *testing.T) {
	tmpDir := t.TempDir()
	corpus := filepath.Join(tmpDir, "corpus")

	// Single clean case: bare fixture name, no identifier suffix
	writeFixture(t, corpus, "expr/math.test",
		"Test1\nSimple", "<?php echo 1;", "array(\n  0: Stmt\n)")

	// Single error case
	writeFixture(t, corpus, "errors/eof.test",
		"Unexpected EOF", "<?php if (", "Syntax error, unexpected EOF")

	// Malformed shape: 4 sections, skipped entirely
	writeFixture(t, corpus, "bad.test",
		"Broken", "<?php echo 1;", "array(\n)", "dangling")

	// Two cases, first is a template: the survivor is alone, so it keeps
	// the bare base name and an unsuffixed identifier
	writeFixture(t, corpus, "multi.test",
		"Template case", "<?php echo @@{ expr }@@;", "array(\n)\nReal case", "<?php echo 42;", "array(\n  0: Stmt\n)")

	// Two surviving cases: raw-index file names, survivor-index identifiers
	writeFixture(t, corpus, "pair.test",
		"Pair one", "<?php echo 1;", "array(\n)\nPair two", "<?php fail(", "Syntax error, unexpected EOF")

	cfg := config.New()
	cfg.ProjectPath = tmpDir
	cfg.FixturesPath = "corpus"
	cfg.ParserImport = "example.com/php/parser"

	cmds := NewCommands(cfg)
	if err := cmds.Convert.Execute(nil, nil); err != nil {
		t.Fatalf("convert failed: %v", err)
	}

	t.Run("emits fixture files verbatim", func(t *testing.T) {
		checks := map[string]string{
			"expr/math.php":  "<?php echo 1;",
			"errors/eof.php": "<?php if (",
			"multi.php":      "<?php echo 42;",
			"pair_1.php":     "<?php echo 1;",
			"pair_2.php":     "<?php fail(",
		}
		for rel, code := range checks {
			content, err := os.ReadFile(filepath.Join(corpus, filepath.FromSlash(rel)))
			if err != nil {
				t.Errorf("expected fixture %s: %v", rel, err)
				continue
			}
			if string(content) != code {
				t.Errorf("fixture %s: expected %q, got %q", rel, code, string(content))
			}
		}

		if _, err := os.Stat(filepath.Join(corpus, "multi_1.php")); !os.IsNotExist(err) {
			t.Error("template case must not be written")
		}
		if _, err := os.Stat(filepath.Join(corpus, "bad.php")); !os.IsNotExist(err) {
			t.Error("malformed file must not produce fixtures")
		}
	})

	t.Run("writes the generated harness", func(t *testing.T) {
		src, err := os.ReadFile(filepath.Join(tmpDir, "tests", "nikic_gen_test.go"))
		if err != nil {
			t.Fatalf("harness was not written: %v", err)
		}
		out := string(src)
		for _, fragment := range []string{
			"package tests",
			`parser "example.com/php/parser"`,
			"func TestNikicSuite(t *testing.T)",
		} {
			if !strings.Contains(out, fragment) {
				t.Errorf("harness is missing %q", fragment)
			}
		}
	})

	t.Run("saves the run report", func(t *testing.T) {
		report, err := storage.NewJSONStorage(cfg).Load()
		if err != nil {
			t.Fatalf("report was not saved: %v", err)
		}

		meta := report.Meta
		if meta.FilesFound != 5 {
			t.Errorf("expected 5 files found, got %d", meta.FilesFound)
		}
		if meta.FilesSkipped != 1 {
			t.Errorf("expected 1 file skipped, got %d", meta.FilesSkipped)
		}
		if meta.CasesFound != 6 {
			t.Errorf("expected 6 cases found, got %d", meta.CasesFound)
		}
		if meta.CasesFiltered != 1 {
			t.Errorf("expected 1 case filtered, got %d", meta.CasesFiltered)
		}
		if meta.FixturesEmitted != 5 {
			t.Errorf("expected 5 fixtures emitted, got %d", meta.FixturesEmitted)
		}
		if meta.Duplicates != 0 {
			t.Errorf("expected no duplicates, got %d", meta.Duplicates)
		}

		expected := []domain.Entry{
			{Identifier: "nikic_errors_eof", FixturePath: "errors/eof.php", ExpectsErrors: true},
			{Identifier: "nikic_expr_math", FixturePath: "expr/math.php", ExpectsErrors: false},
			{Identifier: "nikic_multi", FixturePath: "multi.php", ExpectsErrors: false},
			{Identifier: "nikic_pair_1", FixturePath: "pair_1.php", ExpectsErrors: false},
			{Identifier: "nikic_pair_2", FixturePath: "pair_2.php", ExpectsErrors: true},
		}
		if diff := cmp.Diff(expected, report.Entries); diff != "" {
			t.Errorf("entries mismatch (-want +got):\n%s", diff)
		}

		expectedSkips := []domain.SkippedFile{{Path: "bad.test", Sections: 4}}
		if diff := cmp.Diff(expectedSkips, report.Skips); diff != "" {
			t.Errorf("skips mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestConvertCommand_DryRun(t *testing.T) {
	tmpDir := t.TempDir()
	corpus := filepath.Join(tmpDir, "corpus")

	writeFixture(t, corpus, "expr/math.test",
		"Simple", "<?php echo 1;", "array(\n)")

	cfg := config.New()
	cfg.ProjectPath = tmpDir
	cfg.FixturesPath = "corpus"
	cfg.Flags.DryRun = true

	cmds := NewCommands(cfg)
	if err := cmds.Convert.Execute(nil, nil); err != nil {
		t.Fatalf("convert failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(corpus, "expr", "math.php")); !os.IsNotExist(err) {
		t.Error("dry run must not write fixtures")
	}
	if _, err := os.Stat(filepath.Join(tmpDir, "tests", "nikic_gen_test.go")); !os.IsNotExist(err) {
		t.Error("dry run must not write the harness")
	}

	// The report is still saved so the run can be reviewed
	report, err := storage.NewJSONStorage(cfg).Load()
	if err != nil {
		t.Fatalf("report was not saved: %v", err)
	}
	if !report.Meta.DryRun {
		t.Error("report must be flagged as a dry run")
	}
	if len(report.Entries) != 1 {
		t.Errorf("expected 1 entry, got %d", len(report.Entries))
	}
}

func TestConvertCommand_DuplicateIdentifiers(t *testing.T) {
	tmpDir := t.TempDir()
	corpus := filepath.Join(tmpDir, "corpus")

	// Both sanitize to nikic_expr_some_math
	writeFixture(t, corpus, "expr/some-math.test",
		"A", "<?php echo 1;", "array(\n)")
	writeFixture(t, corpus, "expr/some_math.test",
		"B", "<?php echo 2;", "array(\n)")

	cfg := config.New()
	cfg.ProjectPath = tmpDir
	cfg.FixturesPath = "corpus"

	cmds := NewCommands(cfg)
	if err := cmds.Convert.Execute(nil, nil); err != nil {
		t.Fatalf("convert failed: %v", err)
	}

	report, err := storage.NewJSONStorage(cfg).Load()
	if err != nil {
		t.Fatalf("report was not saved: %v", err)
	}

	// Duplicates are warned about but both entries stay in the table
	if len(report.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(report.Entries))
	}
	if report.Meta.Duplicates != 1 {
		t.Fatalf("expected 1 duplicate warning, got %d", report.Meta.Duplicates)
	}
	warning := report.Warnings[0]
	if warning.Identifier != "nikic_expr_some_math" {
		t.Errorf("unexpected duplicate identifier %q", warning.Identifier)
	}
	if warning.FirstPath != "expr/some-math.php" {
		t.Errorf("unexpected first path %q", warning.FirstPath)
	}
}
