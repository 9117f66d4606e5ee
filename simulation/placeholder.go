// SPDX-License-Identifier: MIT

package simulation

import (
	"context"

	"github.com/katalvlaran/plantsim/plant"
)

// Placeholder is an Engine that returns fixed example figures.
//
// It validates its input and honours cancellation like a real engine would,
// takes machine counts from the plant tables, and echoes SimulationTime as
// TotalTime. Every other number is sample data.
type Placeholder struct{}

// sample figures per group, indexed like plant.Groups().
var (
	sampleGroups = [...]struct{ utilization, wait, queue float64 }{
		{87.0, 14.2, 2.1},
		{72.0, 6.8, 0.8},
		{61.0, 3.1, 0.4},
		{78.0, 9.5, 1.2},
		{95.0, 41.3, 3.9},
	}

	sampleComparison = [...]ComparisonRow{
		{Group: 1, Throughput: 22.7, ImprovementPct: 1.3, WaitGroup5: 40.1},
		{Group: 2, Throughput: 23.0, ImprovementPct: 2.7, WaitGroup5: 39.8},
		{Group: 3, Throughput: 22.5, ImprovementPct: 0.4, WaitGroup5: 41.0},
		{Group: 4, Throughput: 23.2, ImprovementPct: 3.6, WaitGroup5: 40.5},
		{Group: 5, Throughput: 25.8, ImprovementPct: 15.2, WaitGroup5: 12.6},
	}
)

const sampleThroughput = 22.4

// Run implements Engine.
func (Placeholder) Run(ctx context.Context, p Params) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	gs := plant.Groups()
	out := Result{
		Throughput: sampleThroughput,
		TotalTime:  p.SimulationTime,
		Groups:     make([]GroupResult, len(gs)),
		Comparison: append([]ComparisonRow(nil), sampleComparison[:]...),
	}
	for i, g := range gs {
		s := sampleGroups[i]
		out.Groups[i] = GroupResult{
			ID:           g.ID,
			Machines:     g.Machines,
			Utilization:  s.utilization,
			AverageWait:  s.wait,
			AverageQueue: s.queue,
		}
	}

	return out, nil
}
