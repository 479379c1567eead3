package ui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"ntc/internal/config"
	"ntc/internal/domain"
	"ntc/internal/fixture"
)

// Formatter formats and displays output
type Formatter struct {
	config    *config.Config
	extractor *fixture.Extractor
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config, extractor *fixture.Extractor) *Formatter {
	return &Formatter{
		config:    cfg,
		extractor: extractor,
	}
}

// PrintRunStats displays the run report's metadata as a summary table,
// followed by duplicate-identifier warnings when present
func (f *Formatter) PrintRunStats(report *domain.Report) error {
	meta := report.Meta

	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                   Fixture Conversion Summary                  ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	printRow := func(label string, paint *color.Color, value string) {
		fmt.Printf("│ %-31s │ ", label)
		paint.Printf("%-27s │\n", value)
	}
	divider := func() {
		fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")
	}

	printRow("Fixture Files Found", color.New(color.FgWhite), fmt.Sprintf("%d", meta.FilesFound))
	divider()
	printRow("Files Skipped (bad shape)", color.New(color.FgYellow), fmt.Sprintf("%d", meta.FilesSkipped))
	divider()
	printRow("Cases Found", color.New(color.FgWhite), fmt.Sprintf("%d", meta.CasesFound))
	divider()
	printRow("Cases Filtered (template)", color.New(color.FgYellow), fmt.Sprintf("%d", meta.CasesFiltered))
	divider()
	printRow("Fixtures Emitted", color.New(color.FgGreen), fmt.Sprintf("%d", meta.FixturesEmitted))
	divider()
	printRow("Duplicate Identifiers", dupColor(meta.Duplicates), fmt.Sprintf("%d", meta.Duplicates))
	divider()
	printRow("Duration", color.New(color.FgWhite), fmt.Sprintf("%.2fs", meta.DurationSeconds))
	divider()
	printRow("Timestamp", color.New(color.FgWhite), meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if meta.DryRun {
		color.Yellow("Dry run: no fixtures or harness were written")
	}
	if meta.Duplicates == 0 {
		color.Green("✓ Generated %d table entries", len(report.Entries))
	} else {
		color.Red("✗ %d duplicate identifier(s) in %d table entries", meta.Duplicates, len(report.Entries))
		fmt.Println()
		f.printWarnings(report.Warnings)
	}

	return nil
}

func dupColor(n int) *color.Color {
	if n > 0 {
		return color.New(color.FgRed)
	}
	return color.New(color.FgGreen)
}

// printWarnings lists each duplicate identifier with both paths involved
func (f *Formatter) printWarnings(warnings []domain.DuplicateWarning) {
	for _, w := range warnings {
		color.Yellow("  WARNING: duplicate name %s for %s and %s", w.Identifier, w.Path, w.FirstPath)
	}
}

// PrintFixtureList prints a tree of fixture files, optionally with the
// case titles extracted from each file
func (f *Formatter) PrintFixtureList(fixtures []string, showCases bool) error {
	if !showCases {
		color.Green("Found %d fixture file(s):\n", len(fixtures))
		for i, file := range fixtures {
			color.Cyan("%s %s", branch(i == len(fixtures)-1), f.relPath(file))
		}
		return nil
	}

	color.Green("Found %d fixture file(s) with cases:\n", len(fixtures))

	for i, file := range fixtures {
		isLastFile := i == len(fixtures)-1
		color.Cyan("%s %s", branch(isLastFile), f.relPath(file))

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read fixture file %s: %w", f.relPath(file), err)
		}

		childPrefix := "│   "
		if isLastFile {
			childPrefix = "    "
		}

		cases, ok := f.extractor.Extract(fixture.Split(string(content)))
		if !ok {
			fmt.Printf("%s%s\n", childPrefix+"└── ", color.RedString("(unsupported shape)"))
			continue
		}

		for j, c := range cases {
			title := c.Title
			if title == "" {
				title = fmt.Sprintf("case %d", j+1)
			}
			if c.ExpectsErrors {
				title += " " + color.RedString("[error]")
			}
			fmt.Printf("%s%s %s\n", childPrefix, branch(j == len(cases)-1), color.YellowString(title))
		}
	}

	return nil
}

func branch(last bool) string {
	if last {
		return "└──"
	}
	return "├──"
}

func (f *Formatter) relPath(path string) string {
	rel, err := filepath.Rel(f.config.GetFixturesPath(), path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
