package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ntc/internal/config"
	"ntc/internal/discovery"
	"ntc/internal/domain"
	"ntc/internal/emit"
	"ntc/internal/fixture"
	"ntc/internal/harness"
	"ntc/internal/storage"
	"ntc/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ConvertCommand handles the convert command
type ConvertCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	extractor *fixture.Extractor
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewConvertCommand creates a new ConvertCommand
func NewConvertCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	extractor *fixture.Extractor,
	st storage.Storage,
	formatter *ui.Formatter,
) *ConvertCommand {
	return &ConvertCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		extractor: extractor,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command: walk the corpus, extract and classify cases,
// emit fixtures, render the harness, save and print the run report.
// Files are processed one at a time, in path order.
func (cc *ConvertCommand) Execute(cmd *cobra.Command, args []string) error {
	start := time.Now()

	root := cc.config.GetFixturesPath()
	files, err := cc.scanner.Scan(root)
	if err != nil {
		return err
	}
	files = cc.filter.ByName(files, cc.config.Flags.NameFilter)

	if len(files) == 0 {
		color.Yellow("No fixture files found")
		return nil
	}
	fmt.Printf("Found %d fixture file(s)\n", len(files))

	emitter := emit.NewEmitter(root, cc.config.FixtureExt, cc.config.Flags.DryRun)
	builder := harness.NewBuilder(
		cc.config.GetHarnessPackage(),
		cc.config.GetParserImport(),
		cc.config.GetFixtureBase(),
	)
	bar := ui.NewProgressBar(len(files))

	var skips []domain.SkippedFile
	casesFound := 0
	filtered := 0
	emitted := 0

	for _, path := range files {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)
		base := strings.TrimSuffix(rel, ".test")

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read fixture file %s: %w", rel, err)
		}

		sections := fixture.Split(string(content))
		cases, ok := cc.extractor.Extract(sections)
		if !ok {
			skips = append(skips, domain.SkippedFile{Path: rel, Sections: len(sections)})
			bar.Advance(casesFound, filtered)
			continue
		}
		casesFound += len(cases)

		survivors := 0
		for _, c := range cases {
			if emit.Survives(c) {
				survivors++
			}
		}

		// Two counters walk the surviving cases: the emitter names files by
		// the original index, the harness numbers identifiers by survivor
		// position only.
		survivorIndex := 0
		for idx, c := range cases {
			if !emit.Survives(c) {
				filtered++
				continue
			}
			survivorIndex++

			fixturePath := emitter.FixtureName(base, idx, survivors)
			if err := emitter.Emit(fixturePath, c.Code); err != nil {
				return err
			}
			emitted++

			builder.Add(domain.Entry{
				Identifier:    harness.Identifier(base, survivorIndex, survivors),
				FixturePath:   fixturePath,
				ExpectsErrors: c.ExpectsErrors,
			})
		}

		bar.Advance(casesFound, filtered)
	}
	bar.Finish()

	for _, skip := range skips {
		color.Yellow("  SKIP (no valid cases): %s", skip.Path)
	}

	src, err := builder.Render()
	if err != nil {
		return err
	}
	if !cc.config.Flags.DryRun {
		harnessPath := cc.config.GetHarnessFile()
		if err := os.MkdirAll(filepath.Dir(harnessPath), 0755); err != nil {
			return fmt.Errorf("create harness dir: %w", err)
		}
		if err := os.WriteFile(harnessPath, src, 0644); err != nil {
			return fmt.Errorf("write harness: %w", err)
		}
	}

	duration := time.Since(start)
	report := &domain.Report{
		Meta: domain.ReportMeta{
			FilesFound:      len(files),
			FilesSkipped:    len(skips),
			CasesFound:      casesFound,
			CasesFiltered:   filtered,
			FixturesEmitted: emitted,
			Duplicates:      len(builder.Warnings()),
			DryRun:          cc.config.Flags.DryRun,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Entries:  builder.Entries(),
		Skips:    skips,
		Warnings: builder.Warnings(),
	}

	if err := cc.storage.Save(report); err != nil {
		return fmt.Errorf("failed to save run report: %w", err)
	}

	return cc.formatter.PrintRunStats(report)
}
