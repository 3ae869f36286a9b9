// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pinch/internal/adapters/cas"
	_ "go.trai.ch/pinch/internal/adapters/config"
	_ "go.trai.ch/pinch/internal/adapters/fs"
	_ "go.trai.ch/pinch/internal/adapters/logger"
	_ "go.trai.ch/pinch/internal/adapters/reqfile"
	_ "go.trai.ch/pinch/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/pinch/internal/app"
)
