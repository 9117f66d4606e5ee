// SPDX-License-Identifier: MIT
// Package lcg_test contains unit tests for the full-period validators.
package lcg_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/plantsim/lcg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// valid is a known-good parameter set (m=16, a=13=1+4×3, c=7).
var valid = lcg.Params{Seed: 5, Count: 5, Modulus: 16, Multiplier: 13, Increment: 7}

// with returns a copy of valid modified by fn.
func with(fn func(p *lcg.Params)) lcg.Params {
	p := valid
	fn(&p)
	return p
}

// TestValidate_Table covers every condition with one passing and one failing case.
func TestValidate_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		p         lcg.Params
		wantErr   error
		wantKind  lcg.Kind
		wantField lcg.Field
	}{
		{"valid", valid, nil, 0, ""},
		{"modulus 16 ok", with(func(p *lcg.Params) { p.Modulus = 16 }), nil, 0, ""},
		{"modulus 2 ok", with(func(p *lcg.Params) { p.Modulus = 2; p.Increment = 1 }), nil, 0, ""},
		{"modulus 15", with(func(p *lcg.Params) { p.Modulus = 15 }), lcg.ErrInvalidModulus, lcg.KindInvalidModulus, lcg.FieldModulus},
		{"modulus 1", with(func(p *lcg.Params) { p.Modulus = 1 }), lcg.ErrInvalidModulus, lcg.KindInvalidModulus, lcg.FieldModulus},
		{"modulus 0", with(func(p *lcg.Params) { p.Modulus = 0 }), lcg.ErrInvalidModulus, lcg.KindInvalidModulus, lcg.FieldModulus},
		{"multiplier 13 ok", with(func(p *lcg.Params) { p.Multiplier = 13 }), nil, 0, ""},
		{"multiplier 10", with(func(p *lcg.Params) { p.Multiplier = 10 }), lcg.ErrInvalidMultiplier, lcg.KindInvalidMultiplier, lcg.FieldMultiplier},
		{"multiplier 1", with(func(p *lcg.Params) { p.Multiplier = 1 }), lcg.ErrInvalidMultiplier, lcg.KindInvalidMultiplier, lcg.FieldMultiplier},
		{"multiplier 0", with(func(p *lcg.Params) { p.Multiplier = 0 }), lcg.ErrInvalidMultiplier, lcg.KindInvalidMultiplier, lcg.FieldMultiplier},
		{"increment 7 ok", with(func(p *lcg.Params) { p.Increment = 7 }), nil, 0, ""},
		{"increment 8", with(func(p *lcg.Params) { p.Increment = 8 }), lcg.ErrInvalidIncrement, lcg.KindInvalidIncrement, lcg.FieldIncrement},
		{"increment 0", with(func(p *lcg.Params) { p.Increment = 0 }), lcg.ErrInvalidIncrement, lcg.KindInvalidIncrement, lcg.FieldIncrement},
		{"seed -1", with(func(p *lcg.Params) { p.Seed = -1 }), lcg.ErrOutOfRange, lcg.KindOutOfRange, lcg.FieldSeed},
		{"count -1", with(func(p *lcg.Params) { p.Count = -1 }), lcg.ErrOutOfRange, lcg.KindOutOfRange, lcg.FieldCount},
		{"increment -1", with(func(p *lcg.Params) { p.Increment = -1 }), lcg.ErrOutOfRange, lcg.KindOutOfRange, lcg.FieldIncrement},
		{"count zero ok", with(func(p *lcg.Params) { p.Count = 0 }), nil, 0, ""},
		{"multiplier above modulus ok", with(func(p *lcg.Params) { p.Multiplier = 21 }), nil, 0, ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			conf, err := lcg.Validate(tc.p)
			if tc.wantErr == nil {
				require.NoError(t, err)
				assert.True(t, conf.Valid)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.False(t, conf.Valid, "failed validation must not confirm")

			var pe *lcg.ParamError
			require.True(t, errors.As(err, &pe), "error must be *ParamError, got %T", err)
			assert.Equal(t, tc.wantKind, pe.Kind)
			assert.Equal(t, tc.wantField, pe.Field)
			assert.Contains(t, pe.Error(), pe.Value, "message must embed the received value")
		})
	}
}

// TestValidate_FirstViolationWins ensures the fixed check order decides which
// single reason is reported when several conditions fail at once.
func TestValidate_FirstViolationWins(t *testing.T) {
	t.Parallel()

	everythingWrong := lcg.Params{Seed: -1, Count: -1, Modulus: 15, Multiplier: 10, Increment: 8}
	_, err := lcg.Validate(everythingWrong)
	require.ErrorIs(t, err, lcg.ErrOutOfRange)
	assert.Contains(t, err.Error(), `"seed"`)

	noRange := lcg.Params{Seed: 0, Count: 1, Modulus: 15, Multiplier: 10, Increment: 8}
	_, err = lcg.Validate(noRange)
	assert.ErrorIs(t, err, lcg.ErrInvalidModulus)

	goodModulus := lcg.Params{Seed: 0, Count: 1, Modulus: 16, Multiplier: 10, Increment: 8}
	_, err = lcg.Validate(goodModulus)
	assert.ErrorIs(t, err, lcg.ErrInvalidMultiplier)

	onlyIncrement := lcg.Params{Seed: 0, Count: 1, Modulus: 16, Multiplier: 13, Increment: 8}
	_, err = lcg.Validate(onlyIncrement)
	assert.ErrorIs(t, err, lcg.ErrInvalidIncrement)
}

// TestValidate_Confirmation checks the restated conditions for m=16, a=13, c=7.
func TestValidate_Confirmation(t *testing.T) {
	t.Parallel()

	conf, err := lcg.Validate(valid)
	require.NoError(t, err)

	assert.Equal(t, 4, conf.Exponent)
	assert.Equal(t, int64(3), conf.K)
	assert.Equal(t, "2^4 = 16", conf.Modulus)
	assert.Equal(t, "1 + 4×3 = 13", conf.Multiplier)
	assert.Equal(t, "7 (gcd with 16 = 1)", conf.Increment)
}

// TestValidate_Messages pins the human-readable details callers act on.
func TestValidate_Messages(t *testing.T) {
	t.Parallel()

	_, err := lcg.Validate(with(func(p *lcg.Params) { p.Modulus = 15 }))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2^g")
	assert.Contains(t, err.Error(), "got 15")

	_, err = lcg.Validate(with(func(p *lcg.Params) { p.Multiplier = 10 }))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 + 4k")
	assert.Contains(t, err.Error(), "got 10")

	_, err = lcg.Validate(with(func(p *lcg.Params) { p.Increment = 8 }))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gcd(8, 16) = 8")
	assert.Contains(t, err.Error(), "2^4")

	_, err = lcg.Validate(with(func(p *lcg.Params) { p.Seed = -1 }))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"seed"`)
	assert.Contains(t, err.Error(), "got -1")
}

// TestIsPowerOfTwo covers the boundary of the modulus family.
func TestIsPowerOfTwo(t *testing.T) {
	t.Parallel()

	for _, m := range []int64{2, 4, 8, 16, 1 << 30, 1 << 62} {
		assert.Truef(t, lcg.IsPowerOfTwo(m), "%d is a power of two", m)
	}
	for _, m := range []int64{-16, -1, 0, 1, 3, 6, 15, 1<<62 + 1} {
		assert.Falsef(t, lcg.IsPowerOfTwo(m), "%d is not a power of two ≥ 2", m)
	}
}

// TestKind_String checks the stable wire names.
func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "invalid-type", lcg.KindInvalidType.String())
	assert.Equal(t, "out-of-range", lcg.KindOutOfRange.String())
	assert.Equal(t, "invalid-modulus", lcg.KindInvalidModulus.String())
	assert.Equal(t, "invalid-multiplier", lcg.KindInvalidMultiplier.String())
	assert.Equal(t, "invalid-increment", lcg.KindInvalidIncrement.String())
	assert.Equal(t, "invalid-count", lcg.KindInvalidCount.String())
	assert.Equal(t, "kind(99)", lcg.Kind(99).String())
}
