// SPDX-License-Identifier: MIT
// Package: plantsim/lcg
//
// errors.go — sentinel errors and the typed validation failure.
//
// Error policy:
//   • Every failure is a *ParamError carrying the violated condition (Kind),
//     the offending field and the received value.
//   • (*ParamError).Unwrap returns exactly one of the sentinels below, so
//     callers branch with errors.Is and never compare strings.
//   • Validation stops at the first violated condition (fixed order), so there
//     is never more than one reported reason.

package lcg

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidType indicates that a parameter is not an integer.
	ErrInvalidType = errors.New("lcg: parameter is not an integer")

	// ErrOutOfRange indicates that a parameter is negative or does not fit int64.
	ErrOutOfRange = errors.New("lcg: parameter out of range")

	// ErrInvalidModulus indicates that the modulus is not a power of two ≥ 2.
	ErrInvalidModulus = errors.New("lcg: modulus is not a power of two")

	// ErrInvalidMultiplier indicates that the multiplier is not 1 + 4k with k ≥ 1.
	ErrInvalidMultiplier = errors.New("lcg: multiplier is not of the form 1 + 4k")

	// ErrInvalidIncrement indicates that gcd(increment, modulus) != 1.
	ErrInvalidIncrement = errors.New("lcg: increment is not coprime to modulus")

	// ErrInvalidCount indicates that the synthesizer received a count that is
	// not a positive integer (or is too large to have a power of two above it).
	ErrInvalidCount = errors.New("lcg: count must be a positive integer")
)

// Kind tags the condition a *ParamError reports.
type Kind int

const (
	KindInvalidType Kind = iota + 1
	KindOutOfRange
	KindInvalidModulus
	KindInvalidMultiplier
	KindInvalidIncrement
	KindInvalidCount
)

// kindNames are the stable wire names used by the HTTP layer.
var kindNames = map[Kind]string{
	KindInvalidType:       "invalid-type",
	KindOutOfRange:        "out-of-range",
	KindInvalidModulus:    "invalid-modulus",
	KindInvalidMultiplier: "invalid-multiplier",
	KindInvalidIncrement:  "invalid-increment",
	KindInvalidCount:      "invalid-count",
}

// kindSentinels maps every Kind to the sentinel returned by Unwrap.
var kindSentinels = map[Kind]error{
	KindInvalidType:       ErrInvalidType,
	KindOutOfRange:        ErrOutOfRange,
	KindInvalidModulus:    ErrInvalidModulus,
	KindInvalidMultiplier: ErrInvalidMultiplier,
	KindInvalidIncrement:  ErrInvalidIncrement,
	KindInvalidCount:      ErrInvalidCount,
}

// String returns the wire name of k, e.g. "invalid-modulus".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

// ParamError is the single failure type of this package.
//
// Fields:
//   - Kind:  which condition was violated.
//   - Field: the parameter at fault ("seed", "count", "modulus", ...).
//   - Value: the received value rendered as text (JSON kind for type errors).
//   - Msg:   human-readable message; always names Field and Value.
type ParamError struct {
	Kind  Kind
	Field Field
	Value string
	Msg   string
}

// Error returns the human-readable message.
func (e *ParamError) Error() string {
	return e.Msg
}

// Unwrap exposes the sentinel matching e.Kind for errors.Is.
func (e *ParamError) Unwrap() error {
	return kindSentinels[e.Kind]
}

// paramErrorf builds a *ParamError; the message is prefixed like the sentinels.
func paramErrorf(kind Kind, field Field, value string, format string, args ...interface{}) *ParamError {
	return &ParamError{
		Kind:  kind,
		Field: field,
		Value: value,
		Msg:   "lcg: " + fmt.Sprintf(format, args...),
	}
}
