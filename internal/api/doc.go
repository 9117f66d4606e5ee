// Package api exposes the generator, the synthesizer, the distribution
// transforms and the simulation engine over HTTP/JSON.
//
// Routes (all under /api):
//
//	GET  /api/health          liveness
//	GET  /api/plant           machine groups, job types, mean interarrival
//	POST /api/simulate        simulation.Params → simulation.Result
//	POST /api/generate        lcg parameters → {raw, normalized, count}
//	POST /api/validate        lcg parameters → lcg.Confirmation
//	GET  /api/params/{count}  → lcg.Synthesis
//	POST /api/variates        lcg parameters + distribution → {normalized, variates, job_types, summary}
//
// Failures are answered as {"detail", "kind", "field"}. Every lcg validation
// failure is a 422 carrying the message of the *lcg.ParamError verbatim;
// malformed JSON is a 400.
//
// Handlers share only the immutable configuration built by NewServer, so a
// Server is safe for concurrent use.
package api
