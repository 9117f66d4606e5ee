// SPDX-License-Identifier: MIT

package lcg

// Field names one of the five LCG parameters. The values double as JSON keys.
type Field string

const (
	FieldSeed       Field = "seed"
	FieldCount      Field = "count"
	FieldModulus    Field = "modulus"
	FieldMultiplier Field = "multiplier"
	FieldIncrement  Field = "increment"
)

// fieldOrder is the fixed order in which per-field checks run.
var fieldOrder = [...]Field{FieldSeed, FieldCount, FieldModulus, FieldMultiplier, FieldIncrement}

// Params is one LCG parameter set.
//
// A Params value is plain data; it becomes meaningful only after Validate
// accepts it. Generate never mutates it.
type Params struct {
	Seed       int64 `json:"seed"`       // initial state, never emitted
	Count      int64 `json:"count"`      // number of values to emit
	Modulus    int64 `json:"modulus"`    // m = 2^g, g ≥ 1
	Multiplier int64 `json:"multiplier"` // a = 1 + 4k, k ≥ 1
	Increment  int64 `json:"increment"`  // c, gcd(c, m) = 1
}

// value returns the field of p named by f.
func (p Params) value(f Field) int64 {
	switch f {
	case FieldSeed:
		return p.Seed
	case FieldCount:
		return p.Count
	case FieldModulus:
		return p.Modulus
	case FieldMultiplier:
		return p.Multiplier
	default:
		return p.Increment
	}
}

// set assigns v to the field of p named by f.
func (p *Params) set(f Field, v int64) {
	switch f {
	case FieldSeed:
		p.Seed = v
	case FieldCount:
		p.Count = v
	case FieldModulus:
		p.Modulus = v
	case FieldMultiplier:
		p.Multiplier = v
	default:
		p.Increment = v
	}
}

// Confirmation is the success payload of Validate.
//
// The three strings restate why each condition holds, e.g.
//
//	Modulus:    "2^4 = 16"
//	Multiplier: "1 + 4×3 = 13"
//	Increment:  "7 (gcd with 16 = 1)"
type Confirmation struct {
	Valid      bool   `json:"valid"`
	Exponent   int    `json:"exponent"` // g with Modulus = 2^g
	K          int64  `json:"k"`        // k with Multiplier = 1 + 4k
	Modulus    string `json:"modulus"`
	Multiplier string `json:"multiplier"`
	Increment  string `json:"increment"`
}

// Sequence is the output of Generate: Raw[i] in [0, m) and
// Normalized[i] = Raw[i]/m in [0, 1), same length and order.
type Sequence struct {
	Raw        []int64   `json:"raw"`
	Normalized []float64 `json:"normalized"`
}

// Len returns the number of generated values.
func (s Sequence) Len() int {
	return len(s.Raw)
}

// Rationale explains each derived value of a Synthesis.
type Rationale struct {
	Modulus    string `json:"modulus"`
	Multiplier string `json:"multiplier"`
	Increment  string `json:"increment"`
}

// Synthesis is the output of Synthesize.
type Synthesis struct {
	Params    Params    `json:"params"`
	Exponent  int       `json:"exponent"`
	K         int64     `json:"k"`
	Rationale Rationale `json:"rationale"`
}
