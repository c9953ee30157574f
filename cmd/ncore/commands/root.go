// Package commands implements the CLI command tree for ncore.
package commands

import (
	"context"

	"github.com/spf13/cobra"

	"go.ncore.dev/ncore/internal/core/ports"
)

// CLI is the ncore command line interface.
type CLI struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	progress     ports.ProgressReporter

	rootCmd *cobra.Command
}

// New creates a CLI wired to the given adapters.
func New(configLoader ports.ConfigLoader, logger ports.Logger, progress ports.ProgressReporter) *CLI {
	rootCmd := &cobra.Command{
		Use:           "ncore",
		Short:         "Evaluates and plans a build graph",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringP("config", "c", "", "path to the tool config file (not read; the config loader reads from the working directory)")
	rootCmd.PersistentFlags().StringP("manifest", "f", "", "path to the build manifest")

	c := &CLI{
		configLoader: configLoader,
		logger:       logger,
		progress:     progress,
		rootCmd:      rootCmd,
	}

	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}
