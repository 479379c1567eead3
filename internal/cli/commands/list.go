package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ntc/internal/config"
	"ntc/internal/discovery"
	"ntc/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	fixtures, err := lc.scanner.Scan(lc.config.GetFixturesPath())
	if err != nil {
		return err
	}

	fixtures = lc.filter.ByName(fixtures, lc.config.Flags.NameFilter)

	if len(fixtures) == 0 {
		color.Yellow("No fixture files found")
		return nil
	}

	return lc.formatter.PrintFixtureList(fixtures, lc.config.Flags.Cases)
}
