// Package ports defines the interfaces this module's core depends on
// but does not implement itself — the adapters under
// internal/adapters/ provide them.
package ports

import (
	"context"

	"go.ncore.dev/ncore/internal/core/domain"
)

// Executor defines the interface for running a dispensed edge's
// evaluated command. Subprocess execution is explicitly out of scope
// for this core (spec.md §1: the planner only dispenses work, it never
// runs it), so this interface documents an extension point with no
// adapter implementation in this repo — see SPEC_FULL.md §11.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs command — the result of edge.EvaluateCommand() — with
	// the given environment, typically produced by an EnvironmentFactory.
	//
	// It returns an error if the command fails. Marking the edge's
	// outputs clean and advancing the plan is the caller's
	// responsibility, not this interface's.
	Execute(ctx context.Context, edge *domain.Edge, command string, env []string) error
}
