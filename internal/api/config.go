// SPDX-License-Identifier: MIT
// Package: plantsim/api
//
// config.go — server configuration and its defaults.
//
// Defaults:
//   • logger        = slog.Default()
//   • engine        = simulation.Placeholder{}
//   • allowedOrigin = "http://localhost:5173" (Vite dev server)
//   • maxCount      = 1 << 20

package api

import (
	"log/slog"

	"github.com/katalvlaran/plantsim/simulation"
)

const (
	// DefaultAllowedOrigin is the CORS origin allowed when none is configured.
	DefaultAllowedOrigin = "http://localhost:5173"

	// DefaultMaxCount is the default cap on generated values per request.
	DefaultMaxCount int64 = 1 << 20

	// maxBodyBytes bounds every request body.
	maxBodyBytes = 1 << 20
)

// config holds everything handlers read. It is never mutated after NewServer.
type config struct {
	logger        *slog.Logger
	engine        simulation.Engine
	allowedOrigin string
	maxCount      int64
}

// newConfig applies opts over the defaults; later options win.
func newConfig(opts ...Option) config {
	cfg := config{
		logger:        slog.Default(),
		engine:        simulation.Placeholder{},
		allowedOrigin: DefaultAllowedOrigin,
		maxCount:      DefaultMaxCount,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
