package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"go.ncore.dev/ncore/internal/adapters/fsoracle"
	"go.ncore.dev/ncore/internal/adapters/manifest"
	"go.ncore.dev/ncore/internal/core/domain"
	"go.ncore.dev/ncore/internal/core/planner"
)

// ErrNoTargets is returned when plan is invoked with neither positional
// targets nor a configured default target list.
var ErrNoTargets = zerr.New("no targets given and none configured")

func (c *CLI) newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan [targets...]",
		Short: "Evaluate the build graph and print the commands a build would run",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlan(cmd, args)
		},
	}
}

func (c *CLI) runPlan(cmd *cobra.Command, targets []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to get working directory")
	}

	cfg, err := c.configLoader.Load(cwd)
	if err != nil {
		return zerr.Wrap(err, "failed to load config")
	}

	manifestPath, _ := cmd.Flags().GetString("manifest")
	if manifestPath == "" {
		manifestPath = cfg.DefaultManifest
	}

	if len(targets) == 0 {
		targets = cfg.DefaultTargets
	}
	if len(targets) == 0 {
		return ErrNoTargets
	}

	state := domain.NewState()
	if err := manifest.Load(state, c.logger, manifestPath); err != nil {
		return zerr.Wrap(err, "failed to load manifest")
	}
	if err := fsoracle.Stat(state); err != nil {
		return zerr.Wrap(err, "failed to stat source inputs")
	}

	plan := planner.New(state)
	for _, target := range targets {
		if _, err := plan.AddTargetPath(target); err != nil {
			return zerr.With(err, "target", target)
		}
	}

	ctx := cmd.Context()
	for edge := plan.FindWork(); edge != nil; edge = plan.FindWork() {
		command := edge.EvaluateCommand()
		_, vertex := c.progress.Record(ctx, command)
		_, _ = fmt.Fprintln(vertex.Stdout(), command)
		vertex.Complete(nil)
	}

	return c.progress.Close()
}
