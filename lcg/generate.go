// SPDX-License-Identifier: MIT
// Package: plantsim/lcg
//
// generate.go — deterministic sequence generation.
//
// Goals:
//   - Determinism: identical Params ⇒ identical Sequence, on every platform.
//   - No hidden state: the running value lives on the stack of one call.
//   - Exactness: Raw values are the mathematical (a·x + c) mod m and the
//     normalization never rounds up to 1.
//
// Arithmetic:
//   - m = 2^g divides 2^64, so (a·x + c) computed with uint64 wraparound and
//     then masked with m−1 equals the true residue for any int64 inputs.
//   - Normalized values are x/m, exact for g ≤ 53. For larger moduli x is
//     first shifted right by g−53 (truncating bits float64 cannot hold) and
//     divided by 2^53, so the quotient is still exact and strictly below 1.

package lcg

import "strconv"

// mantissaBits is the float64 significand width including the implicit bit.
const mantissaBits = 53

// MaxCount is the largest Count Generate accepts. The two output slices of a
// Sequence at this length take 16 GiB.
const MaxCount int64 = 1 << 30

// Generate validates p and produces p.Count values of the LCG
//
//	state ← (Multiplier·state + Increment) mod Modulus
//
// starting from state = Seed. The seed itself is never emitted.
// Validation errors from Validate are returned unchanged. A Count above
// MaxCount is rejected with ErrOutOfRange before anything is allocated.
//
// Complexity: O(Count) time, O(Count) memory.
func Generate(p Params) (Sequence, error) {
	if _, err := Validate(p); err != nil {
		return Sequence{}, err
	}
	if p.Count > MaxCount {
		return Sequence{}, paramErrorf(KindOutOfRange, FieldCount, strconv.FormatInt(p.Count, 10),
			"parameter %q must be at most %d, got %d", FieldCount, MaxCount, p.Count)
	}

	return generate(p), nil
}

// generate runs the recurrence; p must be valid.
func generate(p Params) Sequence {
	var (
		g, _  = exponentOf(p.Modulus)
		mask  = uint64(p.Modulus) - 1
		a     = uint64(p.Multiplier)
		c     = uint64(p.Increment)
		state = uint64(p.Seed)
		raw   = make([]int64, p.Count)
		norm  = make([]float64, p.Count)
	)

	for i := range raw {
		state = (a*state + c) & mask
		raw[i] = int64(state)
		norm[i] = normalize(state, g)
	}

	return Sequence{Raw: raw, Normalized: norm}
}

// normalize returns x / 2^g for x < 2^g, truncated to float64 resolution.
func normalize(x uint64, g int) float64 {
	if g > mantissaBits {
		shift := uint(g - mantissaBits)
		return float64(x>>shift) / float64(uint64(1)<<mantissaBits)
	}

	return float64(x) / float64(uint64(1)<<uint(g))
}
