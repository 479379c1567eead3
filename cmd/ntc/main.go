package main

import (
	"fmt"
	"os"

	"ntc/internal/cli"
	"ntc/internal/cli/commands"
	"ntc/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "ntc",
		Short:   "Corpus fixture converter for the PHP parser test suite",
		Long:    `Converts nikic/PHP-Parser style .test corpus files into individual source fixtures and a generated, table-driven test suite that replays each fixture through the parser and checks whether it reports the expected syntax errors.`,
		Version: version,
	}

	// Create initial config with defaults plus .env overrides
	cfg := config.New()
	cfg.LoadEnv()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
