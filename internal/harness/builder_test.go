package harness

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"ntc/internal/domain"
)

func TestIdentifier(t *testing.T) {
	tests := []struct {
		name          string
		base          string
		survivorIndex int
		survivors     int
		expected      string
	}{
		{"single survivor has no suffix", "expr/math", 1, 1, "nikic_expr_math"},
		{"multiple survivors are numbered", "expr/math", 1, 2, "nikic_expr_math_1"},
		{"second survivor", "expr/math", 2, 2, "nikic_expr_math_2"},
		{"base is sanitized", "Stmt/Class-Const", 1, 1, "nikic_stmt_class_const"},
		{"leading digit in base", "5_4/features", 1, 1, "nikic__5_4_features"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Identifier(tt.base, tt.survivorIndex, tt.survivors)
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestBuilder_DuplicateDetection(t *testing.T) {
	builder := NewBuilder("tests", "example.com/parser", "fixtures/nikic")

	builder.Add(domain.Entry{Identifier: "nikic_expr_math", FixturePath: "expr/math.php"})
	builder.Add(domain.Entry{Identifier: "nikic_stmt_if", FixturePath: "stmt/if.php"})
	builder.Add(domain.Entry{Identifier: "nikic_expr_math", FixturePath: "expr/math-dup.php"})
	builder.Add(domain.Entry{Identifier: "nikic_expr_math", FixturePath: "expr/math-dup2.php"})

	// Duplicates stay in the table
	if len(builder.Entries()) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(builder.Entries()))
	}

	expected := []domain.DuplicateWarning{
		{Identifier: "nikic_expr_math", Path: "expr/math-dup.php", FirstPath: "expr/math.php"},
		{Identifier: "nikic_expr_math", Path: "expr/math-dup2.php", FirstPath: "expr/math.php"},
	}
	if diff := cmp.Diff(expected, builder.Warnings()); diff != "" {
		t.Errorf("warnings mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_Render(t *testing.T) {
	builder := NewBuilder("tests", "example.com/php/parser", "fixtures/nikic")
	builder.Add(domain.Entry{Identifier: "nikic_expr_math", FixturePath: "expr/math.php", ExpectsErrors: false})
	builder.Add(domain.Entry{Identifier: "nikic_errors_eof", FixturePath: "errors/eof.php", ExpectsErrors: true})

	src, err := builder.Render()
	if err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	out := string(src)

	// Render gofmt-formats the output, so reaching here already means the
	// generated source parses. Check the pieces a consumer relies on.
	wantFragments := []string{
		"// Code generated by ntc. DO NOT EDIT.",
		"package tests",
		`parser "example.com/php/parser"`,
		`{name: "nikic_expr_math", file: "expr/math.php", expectsErrors: false},`,
		`{name: "nikic_errors_eof", file: "errors/eof.php", expectsErrors: true},`,
		`filepath.FromSlash("fixtures/nikic")`,
		"func TestNikicSuite(t *testing.T)",
		`"PANIC: %s (%s)"`,
		"expected errors but got none",
		"unexpected errors for",
		"=== nikic test failures",
	}
	for _, fragment := range wantFragments {
		if !strings.Contains(out, fragment) {
			t.Errorf("generated source is missing %q", fragment)
		}
	}
}

func TestBuilder_RenderEmptyTable(t *testing.T) {
	builder := NewBuilder("tests", "example.com/parser", "fixtures")

	src, err := builder.Render()
	if err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	out := string(src)
	if !strings.Contains(out, "var nikicTests = []nikicTest{") {
		t.Errorf("missing table declaration:\n%s", out)
	}
	if strings.Contains(out, "{name:") {
		t.Errorf("empty table must have no rows:\n%s", out)
	}
}
