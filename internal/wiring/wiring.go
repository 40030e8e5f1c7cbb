// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/hdrview/internal/adapters/config"
	_ "go.trai.ch/hdrview/internal/adapters/fs"
	_ "go.trai.ch/hdrview/internal/adapters/logger"
	_ "go.trai.ch/hdrview/internal/adapters/naga"
	_ "go.trai.ch/hdrview/internal/adapters/rgbe"
	_ "go.trai.ch/hdrview/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/hdrview/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/hdrview/internal/app"
)
