// Package wiring registers all Graft nodes for this module's adapters.
package wiring

import (
	// Register adapter nodes.
	_ "go.ncore.dev/ncore/internal/adapters/config"
	_ "go.ncore.dev/ncore/internal/adapters/logger"
	_ "go.ncore.dev/ncore/internal/adapters/telemetry/progrock"
)
