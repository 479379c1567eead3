package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"ntc/internal/config"
	"ntc/internal/storage"
	"ntc/internal/ui"
)

// StatsCommand handles the stats command
type StatsCommand struct {
	config    *config.Config
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewStatsCommand creates a new StatsCommand
func NewStatsCommand(cfg *config.Config, st storage.Storage, formatter *ui.Formatter) *StatsCommand {
	return &StatsCommand{
		config:    cfg,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (sc *StatsCommand) Execute(cmd *cobra.Command, args []string) error {
	report, err := sc.storage.Load()
	if err != nil {
		return fmt.Errorf("no run report found, run 'ntc convert' first: %w", err)
	}
	return sc.formatter.PrintRunStats(report)
}
