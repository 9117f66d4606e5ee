// SPDX-License-Identifier: MIT
// Package: plantsim/api
//
// errors.go — sentinels and the error → status mapping.
//
// Mapping (first match wins):
//   • *lcg.ParamError          → 422, kind/field from the error
//   • ErrCountTooLarge         → 422 "count-too-large"
//   • *http.MaxBytesError      → 413 "body-too-large"
//   • ErrMalformedBody         → 400 "malformed-body"
//   • ErrInvalidDistribution   → 422 "invalid-distribution"
//   • simulation.ErrInvalidParams → 422 "invalid-params"
//   • context cancellation     → 503 "unavailable"
//   • anything else            → 500 "internal", detail hidden

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/katalvlaran/plantsim/lcg"
	"github.com/katalvlaran/plantsim/simulation"
)

var (
	// ErrCountTooLarge indicates a count above the configured server limit.
	ErrCountTooLarge = errors.New("api: count exceeds server limit")

	// ErrMalformedBody indicates a request body that is not valid JSON.
	ErrMalformedBody = errors.New("api: malformed request body")

	// ErrInvalidDistribution indicates an unknown distribution or bad
	// distribution parameters.
	ErrInvalidDistribution = errors.New("api: invalid distribution")
)

// fieldError attaches the offending request field to an error.
type fieldError struct {
	field string
	err   error
}

func (e *fieldError) Error() string { return e.err.Error() }
func (e *fieldError) Unwrap() error { return e.err }

// errorBody is the JSON shape of every failure response.
type errorBody struct {
	Detail string `json:"detail"`
	Kind   string `json:"kind"`
	Field  string `json:"field,omitempty"`
}

// errorResponse maps err to a status code and response body.
func errorResponse(err error) (int, errorBody) {
	var (
		pe  *lcg.ParamError
		mbe *http.MaxBytesError
		fe  *fieldError
	)
	field := ""
	if errors.As(err, &fe) {
		field = fe.field
	}

	switch {
	case errors.As(err, &pe):
		return http.StatusUnprocessableEntity, errorBody{Detail: pe.Msg, Kind: pe.Kind.String(), Field: string(pe.Field)}
	case errors.Is(err, ErrCountTooLarge):
		return http.StatusUnprocessableEntity, errorBody{Detail: err.Error(), Kind: "count-too-large", Field: string(lcg.FieldCount)}
	case errors.As(err, &mbe):
		return http.StatusRequestEntityTooLarge, errorBody{Detail: err.Error(), Kind: "body-too-large"}
	case errors.Is(err, ErrMalformedBody):
		return http.StatusBadRequest, errorBody{Detail: err.Error(), Kind: "malformed-body", Field: field}
	case errors.Is(err, ErrInvalidDistribution):
		return http.StatusUnprocessableEntity, errorBody{Detail: err.Error(), Kind: "invalid-distribution", Field: field}
	case errors.Is(err, simulation.ErrInvalidParams):
		return http.StatusUnprocessableEntity, errorBody{Detail: err.Error(), Kind: "invalid-params", Field: field}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, errorBody{Detail: err.Error(), Kind: "unavailable"}
	default:
		return http.StatusInternalServerError, errorBody{Detail: "internal server error", Kind: "internal"}
	}
}
