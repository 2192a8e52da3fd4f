// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/gimmisn/internal/adapters/areas"
	_ "go.trai.ch/gimmisn/internal/adapters/clock"
	_ "go.trai.ch/gimmisn/internal/adapters/config"
	_ "go.trai.ch/gimmisn/internal/adapters/fs"
	_ "go.trai.ch/gimmisn/internal/adapters/health"
	_ "go.trai.ch/gimmisn/internal/adapters/logger"
	_ "go.trai.ch/gimmisn/internal/adapters/metrics"
	_ "go.trai.ch/gimmisn/internal/adapters/overpass"
	_ "go.trai.ch/gimmisn/internal/adapters/procstatus"
	_ "go.trai.ch/gimmisn/internal/adapters/settlements"
	_ "go.trai.ch/gimmisn/internal/adapters/stats"
	_ "go.trai.ch/gimmisn/internal/adapters/store"
	// Register app and engine nodes.
	_ "go.trai.ch/gimmisn/internal/app"
	_ "go.trai.ch/gimmisn/internal/engine/aggregate"
	_ "go.trai.ch/gimmisn/internal/engine/artifactcache"
	_ "go.trai.ch/gimmisn/internal/engine/freshness"
	_ "go.trai.ch/gimmisn/internal/engine/refresh"
	_ "go.trai.ch/gimmisn/internal/engine/retry"
)
