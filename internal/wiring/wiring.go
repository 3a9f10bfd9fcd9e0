// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/semvercheck/internal/adapters/logger"
	_ "go.trai.ch/semvercheck/internal/adapters/semver"
	// Register app nodes.
	_ "go.trai.ch/semvercheck/internal/app"
)
