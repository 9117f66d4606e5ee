// Package variate maps uniform [0, 1) draws onto target distributions by
// inverse-CDF transformation.
//
// ✨ Transforms:
//   - ToExponential(u, mean): x = −mean·ln(1 − u), interarrival times.
//   - ToUniform(u, low, high): x = low + (high − low)·u.
//
// Both delegate the inverse CDF to the Quantile method of the matching gonum
// distuv distribution, apply it element-wise, and keep input order.
// Summarize reports count, mean, standard deviation, min and max of a result.
//
// ⚙️ Usage:
//
//	seq, _ := lcg.Generate(params)
//	arrivals := variate.ToExponential(seq.Normalized, 20)
//	fmt.Println(variate.Summarize(arrivals).Mean)
//
// Preconditions (not checked at runtime):
//   - every u lies in [0, 1]; values from lcg.Generate always do. gonum panics
//     on anything outside that interval.
//   - mean > 0 for ToExponential, low ≤ high for ToUniform.
package variate
