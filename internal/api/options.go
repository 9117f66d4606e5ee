// SPDX-License-Identifier: MIT
// Package: plantsim/api
//
// options.go — functional options for NewServer.
//
// Option constructors validate their argument and panic on values that can
// only be a programming error (nil logger, empty origin, non-positive limit).
// Request handling itself never panics.

package api

import (
	"log/slog"

	"github.com/katalvlaran/plantsim/simulation"
)

// Option customizes a Server before its routes are built.
type Option func(*config)

// WithLogger sets the structured logger for request and error lines.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("api: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithEngine sets the engine behind POST /api/simulate. Panics on nil.
func WithEngine(e simulation.Engine) Option {
	if e == nil {
		panic("api: WithEngine(nil)")
	}
	return func(c *config) {
		c.engine = e
	}
}

// WithAllowedOrigin sets the single origin allowed by CORS; "*" allows any
// origin (echoed back, since credentials are allowed). Panics on "".
func WithAllowedOrigin(origin string) Option {
	if origin == "" {
		panic("api: WithAllowedOrigin(\"\")")
	}
	return func(c *config) {
		c.allowedOrigin = origin
	}
}

// WithMaxCount caps the count accepted by /api/generate and /api/variates.
// Panics if n <= 0.
func WithMaxCount(n int64) Option {
	if n <= 0 {
		panic("api: WithMaxCount(n<=0)")
	}
	return func(c *config) {
		c.maxCount = n
	}
}
