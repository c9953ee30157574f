// Package main is the entry point for the ncore CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"go.ncore.dev/ncore/internal/adapters/config"
	"go.ncore.dev/ncore/internal/adapters/logger"
	"go.ncore.dev/ncore/internal/adapters/telemetry/progrock"
	"go.ncore.dev/ncore/cmd/ncore/commands"
)

func main() {
	os.Exit(run())
}

func run() int {
	cli := commands.New(config.NewLoader(), logger.New(), progrock.New())
	if err := cli.Execute(context.Background()); err != nil {
		// zerr prints a pretty error report with stack trace and metadata when using %+v
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		return 1
	}
	return 0
}
