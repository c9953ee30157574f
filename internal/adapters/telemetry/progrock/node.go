package progrock

import (
	"context"

	"github.com/grindlemire/graft"

	"go.ncore.dev/ncore/internal/core/ports"
)

// NodeID is the unique identifier for the progress-reporter adapter node.
const NodeID graft.ID = "adapter.progress_reporter"

func init() {
	graft.Register(graft.Node[ports.ProgressReporter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProgressReporter, error) {
			return New(), nil
		},
	})
}
