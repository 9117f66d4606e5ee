// SPDX-License-Identifier: MIT
// Package: plantsim/lcg
//
// decode.go — JSON boundary for parameter sets.
//
// Go's type system already guarantees that a Params field is an integer, so
// the "invalid-type" condition can only arise while decoding untyped input.
// DecodeParams performs the type and range part of the first validation stage
// per field, in field order, so the first offending field is always the one
// reported.

package lcg

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// maxExactFloat bounds integral floats accepted as integers (2^63).
const maxExactFloat = float64(1 << 63)

// DecodeParams decodes a JSON object carrying the five parameter fields.
// Unknown keys are ignored.
//
// Errors:
//   - ErrInvalidType: the body is not an object, or a field is missing or is
//     not an integer (string, bool, null, fraction, array, object).
//   - ErrOutOfRange:  a field is an integer but negative or beyond int64.
//
// The returned Params has NOT been through Validate.
func DecodeParams(data []byte) (Params, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		kind := "invalid JSON"
		if json.Valid(data) {
			kind = jsonKind(data)
		}
		return Params{}, paramErrorf(KindInvalidType, "", kind, "parameters must be a JSON object, got %s", kind)
	}

	var p Params
	for _, f := range fieldOrder {
		v, err := decodeInt(f, raw[string(f)])
		if err != nil {
			return Params{}, err
		}
		p.set(f, v)
	}

	return p, nil
}

// decodeInt parses one field as a non-negative int64.
func decodeInt(f Field, msg json.RawMessage) (int64, error) {
	msg = bytes.TrimSpace(msg)
	if len(msg) == 0 {
		return 0, paramErrorf(KindInvalidType, f, "missing", "parameter %q is required", f)
	}

	var num json.Number
	if kind := jsonKind(msg); kind != "number" {
		return 0, errNotInteger(f, kind)
	}
	if err := json.Unmarshal(msg, &num); err != nil {
		return 0, errNotInteger(f, jsonKind(msg))
	}

	v, err := strconv.ParseInt(num.String(), 10, 64)
	if err == nil {
		if v < 0 {
			return 0, errNegative(f, v)
		}
		return v, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, errOverflow(f, num.String())
	}

	// Not a plain integer literal: accept integral floats such as 16.0 or 1e3.
	x, ferr := num.Float64()
	if ferr != nil || math.IsNaN(x) || math.IsInf(x, 0) || x != math.Trunc(x) {
		return 0, errNotInteger(f, "float")
	}
	if x < 0 {
		return 0, paramErrorf(KindOutOfRange, f, num.String(),
			"parameter %q must be greater than or equal to 0, got %s", f, num.String())
	}
	if x >= maxExactFloat {
		return 0, errOverflow(f, num.String())
	}

	return int64(x), nil
}

// errNotInteger reports a field whose JSON kind is not an integer.
func errNotInteger(f Field, kind string) *ParamError {
	return paramErrorf(KindInvalidType, f, kind, "parameter %q must be an integer, got %s", f, kind)
}

// errOverflow reports an integer that does not fit int64.
func errOverflow(f Field, literal string) *ParamError {
	return paramErrorf(KindOutOfRange, f, literal,
		"parameter %q must fit a 64-bit signed integer, got %s", f, literal)
}

// jsonKind names the JSON type of a raw value by its first byte.
func jsonKind(msg []byte) string {
	msg = bytes.TrimSpace(msg)
	if len(msg) == 0 {
		return "empty input"
	}
	switch c := msg[0]; {
	case c == '"':
		return "string"
	case c == 't' || c == 'f':
		return "bool"
	case c == 'n':
		return "null"
	case c == '[':
		return "array"
	case c == '{':
		return "object"
	case c == '-' || (c >= '0' && c <= '9'):
		return "number"
	default:
		return "invalid JSON"
	}
}

// ParseCount parses a decimal count as received in a URL path segment.
// Text that is not a base-10 integer yields ErrInvalidCount; the range check
// is left to Synthesize.
func ParseCount(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, paramErrorf(KindInvalidCount, FieldCount, s, "count must be a positive integer, got %q", s)
	}

	return n, nil
}
