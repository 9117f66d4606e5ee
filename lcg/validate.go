// SPDX-License-Identifier: MIT
// Package: plantsim/lcg
//
// validate.go — Hull–Dobell full-period checks for power-of-two moduli.
//
// Purpose:
//  - Single source of truth for parameter validity; Generate and the HTTP
//    layer both call Validate and never re-implement a check.
//  - Each check is an independent function returning nil or one *ParamError.
//
// Order (fixed, first failure wins):
//  ValidateRange → ValidateModulus → ValidateMultiplier → ValidateIncrement
//
// Determinism & Performance:
//  - Pure, allocation-free on success except for the confirmation strings.
//  - gcd runs O(log m) Euclid steps.

package lcg

import (
	"fmt"
	"math/bits"
	"strconv"
)

// multiplierStep is the 4 in a = 1 + 4k.
const multiplierStep = 4

// Validate checks p against every full-period condition in order and returns
// a Confirmation restating why each one holds.
//
// Errors (exactly one, as *ParamError):
//   - ErrOutOfRange:        a field is negative (first in field order).
//   - ErrInvalidModulus:    Modulus is not 2^g with g ≥ 1.
//   - ErrInvalidMultiplier: Multiplier is not 1 + 4k with k ≥ 1.
//   - ErrInvalidIncrement:  gcd(Increment, Modulus) != 1.
//
// Complexity: O(log Modulus).
func Validate(p Params) (Confirmation, error) {
	checks := [...]func(Params) error{
		ValidateRange,
		ValidateModulus,
		ValidateMultiplier,
		ValidateIncrement,
	}
	for _, check := range checks {
		if err := check(p); err != nil {
			return Confirmation{}, err
		}
	}

	g, _ := exponentOf(p.Modulus)
	k := (p.Multiplier - 1) / multiplierStep

	return Confirmation{
		Valid:      true,
		Exponent:   g,
		K:          k,
		Modulus:    fmt.Sprintf("2^%d = %d", g, p.Modulus),
		Multiplier: fmt.Sprintf("1 + 4×%d = %d", k, p.Multiplier),
		Increment:  fmt.Sprintf("%d (gcd with %d = 1)", p.Increment, p.Modulus),
	}, nil
}

// ValidateRange ensures every field is ≥ 0, checking seed, count, modulus,
// multiplier, increment in that order.
func ValidateRange(p Params) error {
	for _, f := range fieldOrder {
		if v := p.value(f); v < 0 {
			return errNegative(f, v)
		}
	}

	return nil
}

// ValidateModulus ensures Modulus = 2^g for some g ≥ 1.
func ValidateModulus(p Params) error {
	if _, ok := exponentOf(p.Modulus); !ok {
		return paramErrorf(KindInvalidModulus, FieldModulus, strconv.FormatInt(p.Modulus, 10),
			"modulus must be of the form 2^g with g >= 1 (2, 4, 8, 16, 32, ...), got %d", p.Modulus)
	}

	return nil
}

// ValidateMultiplier ensures Multiplier = 1 + 4k for some k ≥ 1.
func ValidateMultiplier(p Params) error {
	if p.Multiplier <= 1 || (p.Multiplier-1)%multiplierStep != 0 {
		return paramErrorf(KindInvalidMultiplier, FieldMultiplier, strconv.FormatInt(p.Multiplier, 10),
			"multiplier must be of the form 1 + 4k with k >= 1 (5, 9, 13, 17, 21, ...), got %d: "+
				"(multiplier - 1) must be divisible by 4 and multiplier > 1", p.Multiplier)
	}

	return nil
}

// ValidateIncrement ensures gcd(Increment, Modulus) = 1.
// Assumes Modulus already passed ValidateModulus when the message mentions 2^g.
func ValidateIncrement(p Params) error {
	d := gcd(p.Increment, p.Modulus)
	if d == 1 {
		return nil
	}

	msg := "increment must be coprime to modulus: gcd(%d, %d) = %d, want 1"
	args := []interface{}{p.Increment, p.Modulus, d}
	if g, ok := exponentOf(p.Modulus); ok {
		msg += "; with modulus 2^%d the increment must be odd"
		args = append(args, g)
	}

	return paramErrorf(KindInvalidIncrement, FieldIncrement, strconv.FormatInt(p.Increment, 10), msg, args...)
}

// errNegative reports a negative field.
func errNegative(f Field, v int64) *ParamError {
	return paramErrorf(KindOutOfRange, f, strconv.FormatInt(v, 10),
		"parameter %q must be greater than or equal to 0, got %d", f, v)
}

// IsPowerOfTwo reports whether m = 2^g for some g ≥ 1.
func IsPowerOfTwo(m int64) bool {
	return m >= 2 && m&(m-1) == 0
}

// exponentOf returns g with m = 2^g, or ok=false when m is not a power of two
// ≥ 2. For an exact power of two the exponent is the trailing-zero count,
// identical to repeated halving.
func exponentOf(m int64) (g int, ok bool) {
	if !IsPowerOfTwo(m) {
		return 0, false
	}

	return bits.TrailingZeros64(uint64(m)), true
}

// gcd returns the greatest common divisor of two non-negative integers,
// with gcd(0, n) = n.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
