// Package lcg implements a linear congruential generator restricted to
// power-of-two moduli, together with the Hull–Dobell full-period checks that
// make a parameter set usable and a synthesizer that derives such a set from
// nothing but the number of values wanted.
//
// 🚀 What is an LCG?
//
//	state ← (a·state + c) mod m
//
//	For m = 2^g the generator visits all m states before repeating
//	(full period) iff
//	  • a = 1 + 4k with k ≥ 1
//	  • gcd(c, m) = 1, i.e. c is odd
//
// ✨ Key features:
//   - Validate: ordered chain of checks, first violation wins, one typed error
//     (*ParamError) per violated condition, each unwrapping to a sentinel.
//   - Generate: deterministic raw sequence in [0, m) and its exact [0, 1)
//     normalization; validates before producing anything.
//   - Synthesize: smallest power-of-two modulus above count, multiplier near
//     √m, increment 7, seed 0. The result always passes Validate.
//   - DecodeParams: JSON boundary that reports non-integer fields by name.
//
// ⚙️ Usage:
//
//	syn, err := lcg.Synthesize(100)
//	if err != nil {
//		// errors.Is(err, lcg.ErrInvalidCount)
//	}
//	seq, err := lcg.Generate(syn.Params)
//	fmt.Println(seq.Raw[:3], seq.Normalized[:3])
//
// Concurrency:
//
//	Every exported function is pure; callers may use them from any number of
//	goroutines without coordination.
//
// Complexity:
//
//   - Validate:   O(log m)
//   - Generate:   O(count) time and memory
//   - Synthesize: O(log count)
package lcg
