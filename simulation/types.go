// SPDX-License-Identifier: MIT

// Package simulation defines the boundary of the plant simulation engine:
// its input parameters, its result shape, and the Engine interface the HTTP
// layer depends on.
//
// The discrete-event engine itself is not written yet. Placeholder satisfies
// Engine with fixed example figures so the transport layer and its clients
// can be built and tested against the final contract.
package simulation

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidParams is returned (wrapped with the offending field) by
// Params.Validate.
var ErrInvalidParams = errors.New("simulation: invalid parameters")

// Defaults for omitted request fields.
const (
	DefaultReplications     = 10
	DefaultSimulationTime   = 480.0 // minutes
	DefaultMeanInterarrival = 20.0  // minutes
	DefaultSeed             = 42
)

// Params is the engine input.
type Params struct {
	Replications     int     `json:"replications"`
	SimulationTime   float64 `json:"simulation_time"`   // minutes
	MeanInterarrival float64 `json:"mean_interarrival"` // minutes, exponential mean
	Seed             int64   `json:"seed"`
}

// DefaultParams returns the documented defaults.
func DefaultParams() Params {
	return Params{
		Replications:     DefaultReplications,
		SimulationTime:   DefaultSimulationTime,
		MeanInterarrival: DefaultMeanInterarrival,
		Seed:             DefaultSeed,
	}
}

// Validate checks replications, simulation_time, mean_interarrival and seed
// in that order.
func (p Params) Validate() error {
	if p.Replications <= 0 {
		return fmt.Errorf("replications must be > 0, got %d: %w", p.Replications, ErrInvalidParams)
	}
	if !(p.SimulationTime > 0) {
		return fmt.Errorf("simulation_time must be > 0, got %v: %w", p.SimulationTime, ErrInvalidParams)
	}
	if !(p.MeanInterarrival > 0) {
		return fmt.Errorf("mean_interarrival must be > 0, got %v: %w", p.MeanInterarrival, ErrInvalidParams)
	}
	if p.Seed < 0 {
		return fmt.Errorf("seed must be >= 0, got %d: %w", p.Seed, ErrInvalidParams)
	}

	return nil
}

// GroupResult reports one machine group.
type GroupResult struct {
	ID           int     `json:"id"`
	Machines     int     `json:"machines"`
	Utilization  float64 `json:"utilization"`  // percent, 0–100
	AverageWait  float64 `json:"average_wait"` // minutes
	AverageQueue float64 `json:"average_queue"`
}

// ComparisonRow reports the effect of adding one machine to Group.
type ComparisonRow struct {
	Group          int     `json:"group"`
	Throughput     float64 `json:"throughput"`
	ImprovementPct float64 `json:"improvement_pct"`
	WaitGroup5     float64 `json:"wait_group5"` // average wait at the bottleneck group 5
}

// Result is the engine output.
type Result struct {
	Throughput float64         `json:"throughput"`
	TotalTime  float64         `json:"total_time"`
	Groups     []GroupResult   `json:"groups"`
	Comparison []ComparisonRow `json:"comparison"`
}

// Engine runs a simulation.
type Engine interface {
	Run(ctx context.Context, p Params) (Result, error)
}
