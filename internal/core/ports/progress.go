package ports

import (
	"context"
	"io"
)

// Vertex is one unit of build progress — one dispensed edge — being
// reported on. Implementations back it onto whatever rendering the
// ProgressReporter uses.
type Vertex interface {
	// Stdout returns a writer a caller can stream an edge's command
	// output through as the edge runs.
	Stdout() io.Writer
	// Stderr returns the corresponding writer for error output.
	Stderr() io.Writer
	// Complete marks the vertex finished, successfully when err is nil.
	Complete(err error)
	// Cached marks the vertex as having been skipped because its
	// outputs were already up to date.
	Cached()
}

// ProgressReporter renders the progress of a build as edges are
// dispensed by a planner and completed by a caller. No adapter
// implementation is wired to execute anything in this repo — this is
// a reporting surface for a caller that does (SPEC_FULL.md §11).
//
//go:generate go run go.uber.org/mock/mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks
type ProgressReporter interface {
	// Record begins reporting on a vertex named name, returning a
	// context callers should thread through so nested work can find it.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and closes the reporting session.
	Close() error
}
