// SPDX-License-Identifier: MIT

package variate

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ToExponential returns −mean·ln(1 − u) for every u, in order.
//
// The result always has len(u) elements; a nil input yields an empty slice.
// ToExponential([]float64{0}, 10) is [0], and the output grows without bound
// as u approaches 1.
//
// Complexity: O(len(u)).
func ToExponential(u []float64, mean float64) []float64 {
	dist := distuv.Exponential{Rate: 1 / mean}
	out := quantiles(u, dist.Quantile)
	for i, x := range out {
		if x == 0 {
			out[i] = 0 // −ln(1) is −0; report it as 0
		}
	}

	return out
}

// ToUniform returns low + (high − low)·u for every u, in order.
// For u in [0, 1) and low ≤ high every result lies in [low, high).
//
// Complexity: O(len(u)).
func ToUniform(u []float64, low, high float64) []float64 {
	dist := distuv.Uniform{Min: low, Max: high}

	return quantiles(u, dist.Quantile)
}

// quantiles applies an inverse CDF element-wise into a fresh slice.
func quantiles(u []float64, inv func(p float64) float64) []float64 {
	out := make([]float64, len(u))
	for i, p := range u {
		out[i] = inv(p)
	}

	return out
}

// Summary describes a variate sequence.
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"` // sample standard deviation, 0 for fewer than two values
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summarize computes a Summary of xs; the zero Summary for empty input.
func Summarize(xs []float64) Summary {
	if len(xs) == 0 {
		return Summary{}
	}

	s := Summary{
		Count: len(xs),
		Min:   floats.Min(xs),
		Max:   floats.Max(xs),
	}
	if len(xs) == 1 {
		s.Mean = xs[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(xs, nil)

	return s
}
