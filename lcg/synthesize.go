// SPDX-License-Identifier: MIT
// Package: plantsim/lcg
//
// synthesize.go — derive a valid parameter set from the wanted count alone.
//
// Policy (fixed; callers rely on the exact values, not just validity):
//   • modulus:    smallest power of two strictly greater than count, found by
//                 doubling from 2. The period (≤ m) is never exhausted early.
//   • multiplier: 1 + 4k with k = max(1, round(√m / 4)); k is decremented
//                 while 1 + 4k ≥ m; below k = 1 the minimal multiplier 5 is
//                 used. The √m heuristic is empirical.
//   • increment:  7 (odd, so coprime to any power of two).
//   • seed:       0.

package lcg

import (
	"fmt"
	"math"
	"strconv"
)

// Synthesizer defaults.
const (
	synthSeed           int64 = 0
	synthIncrement      int64 = 7
	minimalMultiplier   int64 = 5
	maxSynthesizedCount int64 = 1<<62 - 1 // 2^62 is the largest power of two in int64
)

// Synthesize returns a parameter set for count values that passes Validate.
//
// Errors:
//   - ErrInvalidCount: count ≤ 0, or count ≥ 2^62 (no power of two above it
//     fits in int64).
//
// Complexity: O(log count).
func Synthesize(count int64) (Synthesis, error) {
	if count <= 0 || count > maxSynthesizedCount {
		return Synthesis{}, paramErrorf(KindInvalidCount, FieldCount, strconv.FormatInt(count, 10),
			"count must be a positive integer below 2^62, got %d", count)
	}

	// Modulus: double until strictly above count.
	g, modulus := 1, int64(2)
	for modulus <= count {
		g++
		modulus *= 2
	}

	// Multiplier: 1 + 4k with k ≈ √m / 4, kept below the modulus.
	k := int64(math.RoundToEven(math.Sqrt(float64(modulus)) / multiplierStep))
	if k < 1 {
		k = 1
	}
	multiplier := 1 + multiplierStep*k
	for multiplier >= modulus && k > 0 {
		k--
		multiplier = 1 + multiplierStep*k
	}
	if k < 1 {
		k, multiplier = 1, minimalMultiplier
	}

	return Synthesis{
		Params: Params{
			Seed:       synthSeed,
			Count:      count,
			Modulus:    modulus,
			Multiplier: multiplier,
			Increment:  synthIncrement,
		},
		Exponent: g,
		K:        k,
		Rationale: Rationale{
			Modulus:    fmt.Sprintf("2^%d = %d (> %d)", g, modulus, count),
			Multiplier: fmt.Sprintf("1 + 4×%d = %d", k, multiplier),
			Increment:  fmt.Sprintf("%d (odd, gcd with %d = 1)", synthIncrement, modulus),
		},
	}, nil
}
