// SPDX-License-Identifier: MIT
// Package: plantsim/api
//
// handlers.go — one handler per route.
//
// Every lcg-backed handler decodes with lcg.DecodeParams so type and range
// failures are reported per field in the same order Validate uses; the
// server count cap is checked only after the parameters are valid.

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/katalvlaran/plantsim/lcg"
	"github.com/katalvlaran/plantsim/plant"
	"github.com/katalvlaran/plantsim/simulation"
	"github.com/katalvlaran/plantsim/variate"
)

// Distribution names accepted by /api/variates.
const (
	distExponential = "exponential"
	distUniform     = "uniform"
)

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type generateResponse struct {
	Raw        []int64   `json:"raw"`
	Normalized []float64 `json:"normalized"`
	Count      int       `json:"count"`
}

// variatesRequest carries the distribution part of a /api/variates body; the
// five lcg fields are decoded separately by lcg.DecodeParams.
type variatesRequest struct {
	Distribution string   `json:"distribution"`
	Mean         *float64 `json:"mean"`
	Low          *float64 `json:"low"`
	High         *float64 `json:"high"`
}

type variatesResponse struct {
	Normalized []float64       `json:"normalized"`
	Variates   []float64       `json:"variates"`
	JobTypes   []int           `json:"job_types"` // job type selected by each normalized draw
	Summary    variate.Summary `json:"summary"`
}

type plantResponse struct {
	Groups           []plant.Group   `json:"groups"`
	JobTypes         []plant.JobType `json:"job_types"`
	MeanInterarrival float64         `json:"mean_interarrival"`
}

// sampler is a resolved distribution. field names the request field blamed
// when the output does not fit a float64.
type sampler struct {
	field string
	apply func([]float64) []float64
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Message: "plant simulation API is running"})
}

func (s *Server) handlePlant(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, plantResponse{
		Groups:           plant.Groups(),
		JobTypes:         plant.JobTypes(),
		MeanInterarrival: plant.MeanArrivalMinutes,
	})
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	data, err := readJSON(w, r, true)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	p := simulation.DefaultParams()
	if data != nil {
		if err := json.Unmarshal(data, &p); err != nil {
			s.writeError(w, r, simulationDecodeError(err))
			return
		}
	}

	res, err := s.cfg.engine.Run(r.Context(), p)
	if err != nil {
		s.writeError(w, r, fmt.Errorf("simulate: %w", err))
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}

// simulationDecodeError classifies a json.Unmarshal failure on simulation
// parameters: a wrongly typed field is invalid input, anything else is a
// malformed body.
func simulationDecodeError(err error) error {
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) && te.Field != "" {
		return &fieldError{
			field: te.Field,
			err:   fmt.Errorf("%s must be a %s, got %s: %w", te.Field, te.Type, te.Value, simulation.ErrInvalidParams),
		}
	}

	return fmt.Errorf("%v: %w", err, ErrMalformedBody)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	p, err := s.decodeGeneratorParams(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	seq, err := lcg.Generate(p)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, generateResponse{Raw: seq.Raw, Normalized: seq.Normalized, Count: seq.Len()})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	data, err := readJSON(w, r, false)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	p, err := lcg.DecodeParams(data)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	conf, err := lcg.Validate(p)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, conf)
}

func (s *Server) handleParams(w http.ResponseWriter, r *http.Request) {
	count, err := lcg.ParseCount(r.PathValue("count"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	syn, err := lcg.Synthesize(count)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, syn)
}

func (s *Server) handleVariates(w http.ResponseWriter, r *http.Request) {
	data, err := readJSON(w, r, false)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	p, err := s.checkedParams(data)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req variatesRequest
	if err := json.Unmarshal(data, &req); err != nil {
		s.writeError(w, r, &fieldError{field: "distribution", err: fmt.Errorf("%v: %w", err, ErrInvalidDistribution)})
		return
	}
	smp, err := req.resolve()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	seq, err := lcg.Generate(p)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	xs := smp.apply(seq.Normalized)
	sum := variate.Summarize(xs)
	if !allFinite(xs) || !allFinite([]float64{sum.Mean, sum.StdDev, sum.Min, sum.Max}) {
		s.writeError(w, r, &fieldError{field: smp.field, err: fmt.Errorf("%s variates overflow float64 for these parameters: %w",
			req.Distribution, ErrInvalidDistribution)})
		return
	}
	jobs, err := jobTypeIDs(seq.Normalized)
	if err != nil {
		s.writeError(w, r, fmt.Errorf("job types: %w", err))
		return
	}

	s.writeJSON(w, http.StatusOK, variatesResponse{
		Normalized: seq.Normalized,
		Variates:   xs,
		JobTypes:   jobs,
		Summary:    sum,
	})
}

// allFinite reports whether xs holds neither NaN nor ±Inf.
func allFinite(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}

// jobTypeIDs maps each uniform draw onto the ID of the job type it selects.
func jobTypeIDs(u []float64) ([]int, error) {
	ids := make([]int, len(u))
	for i, x := range u {
		jt, err := plant.JobTypeFor(x)
		if err != nil {
			return nil, err
		}
		ids[i] = jt.ID
	}

	return ids, nil
}

// decodeGeneratorParams reads, decodes, validates and caps an lcg parameter body.
func (s *Server) decodeGeneratorParams(w http.ResponseWriter, r *http.Request) (lcg.Params, error) {
	data, err := readJSON(w, r, false)
	if err != nil {
		return lcg.Params{}, err
	}

	return s.checkedParams(data)
}

// checkedParams decodes and validates data, then applies the count cap.
func (s *Server) checkedParams(data []byte) (lcg.Params, error) {
	p, err := lcg.DecodeParams(data)
	if err != nil {
		return lcg.Params{}, err
	}
	if _, err := lcg.Validate(p); err != nil {
		return lcg.Params{}, err
	}
	if p.Count > s.cfg.maxCount {
		return lcg.Params{}, fmt.Errorf("count %d exceeds the limit of %d: %w", p.Count, s.cfg.maxCount, ErrCountTooLarge)
	}

	return p, nil
}

// resolve turns the requested distribution into an element-wise
// transform. The exponential mean defaults to the plant's mean interarrival
// time. Parameters are checked here; overflow of the output is checked by the
// caller once the variates exist.
func (req variatesRequest) resolve() (sampler, error) {
	switch req.Distribution {
	case distExponential:
		mean := plant.MeanArrivalMinutes
		if req.Mean != nil {
			mean = *req.Mean
		}
		if !(mean > 0) || math.IsInf(mean, 0) {
			return sampler{}, &fieldError{field: "mean", err: fmt.Errorf("mean must be a finite number > 0, got %v: %w", mean, ErrInvalidDistribution)}
		}
		return sampler{field: "mean", apply: func(u []float64) []float64 { return variate.ToExponential(u, mean) }}, nil

	case distUniform:
		if req.Low == nil || req.High == nil {
			return sampler{}, &fieldError{field: "low", err: fmt.Errorf("uniform needs both low and high: %w", ErrInvalidDistribution)}
		}
		low, high := *req.Low, *req.High
		if math.IsInf(low, 0) || math.IsInf(high, 0) || !(low <= high) {
			return sampler{}, &fieldError{field: "high", err: fmt.Errorf("need finite low <= high, got low=%v high=%v: %w", low, high, ErrInvalidDistribution)}
		}
		if math.IsInf(high-low, 0) {
			return sampler{}, &fieldError{field: "high", err: fmt.Errorf("high - low must be finite, got low=%v high=%v: %w", low, high, ErrInvalidDistribution)}
		}
		return sampler{field: "high", apply: func(u []float64) []float64 { return variate.ToUniform(u, low, high) }}, nil

	default:
		return sampler{}, &fieldError{field: "distribution", err: fmt.Errorf("distribution must be %q or %q, got %q: %w",
			distExponential, distUniform, req.Distribution, ErrInvalidDistribution)}
	}
}
