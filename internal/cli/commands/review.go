package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"ntc/internal/config"
	"ntc/internal/storage"
	"ntc/internal/ui"
)

// ReviewCommand handles the review command
type ReviewCommand struct {
	config  *config.Config
	storage storage.Storage
	viewer  ui.Viewer
}

// NewReviewCommand creates a new ReviewCommand
func NewReviewCommand(cfg *config.Config, st storage.Storage, viewer ui.Viewer) *ReviewCommand {
	return &ReviewCommand{
		config:  cfg,
		storage: st,
		viewer:  viewer,
	}
}

// Execute runs the command
func (rc *ReviewCommand) Execute(cmd *cobra.Command, args []string) error {
	report, err := rc.storage.Load()
	if err != nil {
		return fmt.Errorf("no run report found, run 'ntc convert' first: %w", err)
	}
	return rc.viewer.View(report)
}
