// Package plantsim is the random-number core of a discrete-event simulation
// of a five-group manufacturing plant, plus the HTTP API that exposes it.
//
// 🚀 What is in the box?
//
//	A deterministic, dependency-light toolkit that brings together:
//		• A linear congruential generator with power-of-two moduli
//		• Hull–Dobell full-period validation with a precise reason per failure
//		• A parameter synthesizer: give it a count, get a valid set back
//		• Inverse-CDF transforms to exponential and uniform variates
//		• The plant tables (machine groups, job types, routings)
//		• A simulation engine boundary and a JSON/HTTP surface
//
// ✨ Guarantees
//
//   - Same parameters, same sequence, on every platform
//   - Pure functions: no globals mutated, safe for concurrent callers
//   - Every rejected parameter set names its field, value and broken rule
//
// Packages:
//
//	lcg/          — Validate, Generate, Synthesize, DecodeParams
//	variate/      — ToExponential, ToUniform, Summarize
//	plant/        — machine groups and job types
//	simulation/   — Params, Result, the Engine interface, Placeholder
//	internal/api/ — HTTP handlers, CORS, request logging
//	cmd/plantsim/ — the server binary
//
// Quick example (m = 16, a = 5, c = 7, seed 5):
//
//	x₁ = (5·5 + 7) mod 16 = 0
//	x₂ = (5·0 + 7) mod 16 = 7
//	x₃ = (5·7 + 7) mod 16 = 10
//
//	go run github.com/katalvlaran/plantsim/cmd/plantsim -addr :8000
package plantsim
