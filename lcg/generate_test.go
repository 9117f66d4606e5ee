// SPDX-License-Identifier: MIT
package lcg_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/plantsim/lcg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerate_WorkedExample pins seed=5, m=16, a=5, c=7 step by step:
//
//	(5·5+7)  mod 16 = 32 mod 16 = 0
//	(5·0+7)  mod 16 =  7
//	(5·7+7)  mod 16 = 42 mod 16 = 10
//	(5·10+7) mod 16 = 57 mod 16 = 9
//	(5·9+7)  mod 16 = 52 mod 16 = 4
func TestGenerate_WorkedExample(t *testing.T) {
	t.Parallel()

	p := lcg.Params{Seed: 5, Count: 5, Modulus: 16, Multiplier: 5, Increment: 7}
	seq, err := lcg.Generate(p)
	require.NoError(t, err)

	assert.Equal(t, []int64{0, 7, 10, 9, 4}, seq.Raw)
	assert.Equal(t, []float64{0, 0.4375, 0.625, 0.5625, 0.25}, seq.Normalized)
	assert.Equal(t, 5, seq.Len())
}

// TestGenerate_SeedNotEmitted checks that the first value is already an update.
func TestGenerate_SeedNotEmitted(t *testing.T) {
	t.Parallel()

	seq, err := lcg.Generate(lcg.Params{Seed: 3, Count: 1, Modulus: 8, Multiplier: 5, Increment: 1})
	require.NoError(t, err)
	assert.Equal(t, []int64{(5*3 + 1) % 8}, seq.Raw)
}

// TestGenerate_PropagatesValidation returns the validator's error unchanged.
func TestGenerate_PropagatesValidation(t *testing.T) {
	t.Parallel()

	bad := lcg.Params{Seed: 1, Count: 4, Modulus: 15, Multiplier: 5, Increment: 7}
	_, wantErr := lcg.Validate(bad)
	seq, err := lcg.Generate(bad)

	require.Error(t, err)
	assert.Equal(t, wantErr, err)
	assert.ErrorIs(t, err, lcg.ErrInvalidModulus)
	assert.Nil(t, seq.Raw)
	assert.Nil(t, seq.Normalized)
}

// TestGenerate_Deterministic runs the same parameters twice.
func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	p := lcg.Params{Seed: 42, Count: 500, Modulus: 1024, Multiplier: 33, Increment: 7}
	first, err := lcg.Generate(p)
	require.NoError(t, err)
	second, err := lcg.Generate(p)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestGenerate_FullPeriod verifies Hull–Dobell: with count = m the raw values
// are a permutation of [0, m).
func TestGenerate_FullPeriod(t *testing.T) {
	t.Parallel()

	for _, p := range []lcg.Params{
		{Seed: 0, Count: 16, Modulus: 16, Multiplier: 5, Increment: 7},
		{Seed: 9, Count: 64, Modulus: 64, Multiplier: 13, Increment: 3},
		{Seed: 1, Count: 1024, Modulus: 1024, Multiplier: 33, Increment: 7},
		{Seed: 0, Count: 2, Modulus: 2, Multiplier: 5, Increment: 1},
	} {
		seq, err := lcg.Generate(p)
		require.NoError(t, err)

		got := append([]int64(nil), seq.Raw...)
		sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
		for i, v := range got {
			require.Equalf(t, int64(i), v, "m=%d: value %d missing from the period", p.Modulus, i)
		}
	}
}

// TestGenerate_Range keeps raw in [0, m) and normalized in [0, 1),
// including seeds above the modulus.
func TestGenerate_Range(t *testing.T) {
	t.Parallel()

	p := lcg.Params{Seed: 1 << 40, Count: 2000, Modulus: 256, Multiplier: 17, Increment: 11}
	seq, err := lcg.Generate(p)
	require.NoError(t, err)
	require.Len(t, seq.Raw, 2000)
	require.Len(t, seq.Normalized, 2000)

	for i := range seq.Raw {
		assert.GreaterOrEqual(t, seq.Raw[i], int64(0))
		assert.Less(t, seq.Raw[i], p.Modulus)
		assert.GreaterOrEqual(t, seq.Normalized[i], 0.0)
		assert.Less(t, seq.Normalized[i], 1.0)
		assert.Equal(t, float64(seq.Raw[i])/float64(p.Modulus), seq.Normalized[i])
	}
}

// TestGenerate_LargeModulus exercises wraparound arithmetic and the
// normalization path above 2^53: the last state below m must stay below 1.
func TestGenerate_LargeModulus(t *testing.T) {
	t.Parallel()

	const m = int64(1) << 62
	// Seed 0 with c = m−1 makes the first output m−1.
	p := lcg.Params{Seed: 0, Count: 3, Modulus: m, Multiplier: 5, Increment: m - 1}
	seq, err := lcg.Generate(p)
	require.NoError(t, err)

	assert.Equal(t, m-1, seq.Raw[0])
	assert.Less(t, seq.Normalized[0], 1.0)
	// (5·(m−1) + m−1) mod m = (6m − 6) mod m = m − 6
	assert.Equal(t, m-6, seq.Raw[1])
	for _, u := range seq.Normalized {
		assert.GreaterOrEqual(t, u, 0.0)
		assert.Less(t, u, 1.0)
	}
}

// TestGenerate_ZeroCount yields empty, non-nil slices.
func TestGenerate_ZeroCount(t *testing.T) {
	t.Parallel()

	seq, err := lcg.Generate(lcg.Params{Seed: 1, Count: 0, Modulus: 8, Multiplier: 5, Increment: 1})
	require.NoError(t, err)
	assert.NotNil(t, seq.Raw)
	assert.Empty(t, seq.Raw)
	assert.Empty(t, seq.Normalized)
}

// TestGenerate_InputUntouched guards the immutability of Params.
func TestGenerate_InputUntouched(t *testing.T) {
	t.Parallel()

	p := lcg.Params{Seed: 5, Count: 10, Modulus: 16, Multiplier: 5, Increment: 7}
	before := p
	_, err := lcg.Generate(p)
	require.NoError(t, err)
	assert.Equal(t, before, p)
}

// TestGenerate_CountAboveLimit rejects counts Validate accepts but no slice can hold.
func TestGenerate_CountAboveLimit(t *testing.T) {
	t.Parallel()

	for _, count := range []int64{lcg.MaxCount + 1, 1 << 61, 1<<63 - 1} {
		p := lcg.Params{Count: count, Modulus: 16, Multiplier: 5, Increment: 7}
		_, err := lcg.Validate(p)
		require.NoError(t, err)

		var seq lcg.Sequence
		require.NotPanics(t, func() { seq, err = lcg.Generate(p) })
		require.ErrorIs(t, err, lcg.ErrOutOfRange)
		assert.Nil(t, seq.Raw)

		var pe *lcg.ParamError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, lcg.FieldCount, pe.Field)
		assert.Contains(t, pe.Msg, "at most")
	}
}
