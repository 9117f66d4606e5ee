// SPDX-License-Identifier: MIT

// Package plant holds the static description of the manufacturing plant:
// five machine groups and four job types, each job type with a routing
// sequence through the groups, processing times, and an arrival probability.
//
// The tables are package data; accessors return copies so callers can never
// mutate them.
package plant

import (
	"errors"
	"fmt"
)

// MeanArrivalMinutes is the mean of the exponential interarrival time.
const MeanArrivalMinutes = 20.0

// ErrNoJobType is returned by JobTypeFor for draws outside [0, 1).
var ErrNoJobType = errors.New("plant: no job type for draw")

// Group is one machine group.
type Group struct {
	ID       int `json:"id"`
	Machines int `json:"machines"`
}

// JobType is one routing through the plant.
//
// Route[i] is the group visited at step i and Hours[i] the mean processing
// time there. A uniform draw u selects the job type with Lower ≤ u < Upper.
type JobType struct {
	ID          int       `json:"id"`
	Probability float64   `json:"probability"`
	Route       []int     `json:"route"`
	Hours       []float64 `json:"hours"`
	Lower       float64   `json:"lower"`
	Upper       float64   `json:"upper"`
}

var groups = [...]Group{
	{ID: 1, Machines: 3},
	{ID: 2, Machines: 2},
	{ID: 3, Machines: 4},
	{ID: 4, Machines: 3},
	{ID: 5, Machines: 1},
}

var jobTypes = [...]JobType{
	{ID: 1, Probability: 0.3, Route: []int{3, 1, 2}, Hours: []float64{0.5, 0.8, 0.8}, Lower: 0.0, Upper: 0.3},
	{ID: 2, Probability: 0.4, Route: []int{4, 1, 3}, Hours: []float64{1.1, 0.8, 0.75}, Lower: 0.3, Upper: 0.7},
	{ID: 3, Probability: 0.1, Route: []int{2, 5, 1, 4, 3}, Hours: []float64{1.9, 0.25, 0.7, 0.9, 1.0}, Lower: 0.7, Upper: 0.8},
	{ID: 4, Probability: 0.2, Route: []int{1, 5, 4}, Hours: []float64{1.4, 1.8, 0.4}, Lower: 0.8, Upper: 1.0},
}

// Groups returns the machine groups ordered by ID.
func Groups() []Group {
	out := make([]Group, len(groups))
	copy(out, groups[:])

	return out
}

// JobTypes returns the job types ordered by ID.
func JobTypes() []JobType {
	out := make([]JobType, len(jobTypes))
	for i, jt := range jobTypes {
		out[i] = jt.clone()
	}

	return out
}

// JobTypeFor returns the job type whose interval [Lower, Upper) contains u.
// Draws outside [0, 1) yield ErrNoJobType.
func JobTypeFor(u float64) (JobType, error) {
	for _, jt := range jobTypes {
		if jt.Lower <= u && u < jt.Upper {
			return jt.clone(), nil
		}
	}

	return JobType{}, fmt.Errorf("JobTypeFor(%v): %w", u, ErrNoJobType)
}

// clone deep-copies the slices of jt.
func (jt JobType) clone() JobType {
	jt.Route = append([]int(nil), jt.Route...)
	jt.Hours = append([]float64(nil), jt.Hours...)

	return jt
}
