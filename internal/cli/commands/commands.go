package commands

import (
	"ntc/internal/cli"
	"ntc/internal/config"
	"ntc/internal/discovery"
	"ntc/internal/fixture"
	"ntc/internal/storage"
	"ntc/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Convert *ConvertCommand
	List    *ListCommand
	Stats   *StatsCommand
	Review  *ReviewCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	scanner := discovery.NewScanner(cfg.SkipDirs)
	filter := discovery.NewFilter()
	extractor := fixture.NewExtractor()
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg, extractor)
	viewer := ui.NewReviewViewer(cfg)

	return &Commands{
		Convert: NewConvertCommand(cfg, scanner, filter, extractor, jsonStorage, formatter),
		List:    NewListCommand(cfg, scanner, filter, formatter),
		Stats:   NewStatsCommand(cfg, jsonStorage, formatter),
		Review:  NewReviewCommand(cfg, jsonStorage, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Convert command
	convertCmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert corpus fixtures and generate the test harness",
		Long:  "Split .test corpus files into individual source fixtures and generate the table-driven test suite that replays them",
		RunE:  c.Convert.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	convertCmd.Flags().StringVarP(&flags.FixturesPath, "fixtures", "d", "", "Path to the fixture corpus root")
	convertCmd.Flags().StringVarP(&flags.HarnessFile, "output", "o", "", "Path of the generated test suite file")
	convertCmd.Flags().StringVar(&flags.Package, "package", "", "Package name of the generated test suite")
	convertCmd.Flags().StringVar(&flags.ParserImport, "parser-import", "", "Import path of the subject parser package")
	convertCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter fixture files by name pattern (supports wildcards, e.g. '*math*')")
	convertCmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "Classify and report without writing fixtures or the harness")
	rootCmd.AddCommand(convertCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered fixture files",
		Long:  "Scan and list all corpus fixture files without converting them",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.FixturesPath, "fixtures", "d", "", "Path to the fixture corpus root")
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter fixture files by name pattern (supports wildcards, e.g. '*math*')")
	listCmd.Flags().BoolVarP(&flags.Cases, "cases", "c", false, "List the cases inside each fixture file")
	rootCmd.AddCommand(listCmd)

	// Stats command
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the last conversion run summary",
		Long:  "Display counts and warnings from the last conversion run report",
		RunE:  c.Stats.Execute,
	}
	rootCmd.AddCommand(statsCmd)

	// Review command
	reviewCmd := &cobra.Command{
		Use:   "review",
		Short: "Browse the generated table interactively",
		Long:  "Display the last run's table entries, classifications and fixture sources in an interactive viewer",
		RunE:  c.Review.Execute,
	}
	rootCmd.AddCommand(reviewCmd)
}
