package ports

import (
	"context"
)

// EnvironmentFactory creates the process environment an Executor runs a
// command in, from a set of tool specifications. No adapter implements
// this in this repo — execution is out of scope (spec.md §1) — but the
// interface is kept as a documented extension point (SPEC_FULL.md §11).
//
//go:generate go run go.uber.org/mock/mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type EnvironmentFactory interface {
	// GetEnvironment constructs an environment from a set of tools.
	//
	// The tools map contains alias->spec pairs (e.g., "go" -> "go@1.25.4").
	// Returns environment variables as "KEY=VALUE" strings suitable for
	// process execution.
	//
	// Returns an error if any tool cannot be resolved or prepared.
	GetEnvironment(ctx context.Context, tools map[string]string) ([]string, error)
}
