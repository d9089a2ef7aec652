// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/weave/internal/adapters/cacheconfig"
	_ "go.trai.ch/weave/internal/adapters/logger"
	_ "go.trai.ch/weave/internal/adapters/metrics"
	_ "go.trai.ch/weave/internal/adapters/settingsfile"
	_ "go.trai.ch/weave/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/weave/internal/app"
	_ "go.trai.ch/weave/internal/engine/tree"
)
