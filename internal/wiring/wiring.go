// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/sanity/internal/adapters/config"
	_ "go.trai.ch/sanity/internal/adapters/fs"
	_ "go.trai.ch/sanity/internal/adapters/hierarchy"
	_ "go.trai.ch/sanity/internal/adapters/logger"
	_ "go.trai.ch/sanity/internal/adapters/sizer"
	_ "go.trai.ch/sanity/internal/adapters/snapshot"
	_ "go.trai.ch/sanity/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/sanity/internal/app"
	_ "go.trai.ch/sanity/internal/engine/sanity"
)
