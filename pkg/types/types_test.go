// pkg/types/types_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test parameter kinds, the value sum type and description checks

package types_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confhaus/confval/pkg/errors"
	"github.com/confhaus/confval/pkg/types"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    types.ParameterKind
		wantErr bool
	}{
		{"boolean", types.KindBoolean, false},
		{"text", types.KindText, false},
		{"integer", types.KindInteger, false},
		{"decimal", types.KindDecimal, false},
		{"INTEGER", types.KindInteger, false},
		{" Decimal ", types.KindDecimal, false},
		{"float", types.KindUnknown, true},
		{"", types.KindUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := types.ParseKind(tt.input)
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKindString_RoundTrip(t *testing.T) {
	for _, kind := range types.Kinds() {
		parsed, err := types.ParseKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}
}

func TestValue_String(t *testing.T) {
	big, err := types.BigDecimalFromString("3.7")
	require.NoError(t, err)

	tests := []struct {
		name  string
		value types.Value
		want  string
	}{
		{"bool", types.BoolValue(true), "true"},
		{"text", types.TextValue("hue"), "hue"},
		{"int", types.IntValue(-42), "-42"},
		{"decimal", types.DecimalValue(2.5), "2.5"},
		{"big decimal", big, "3.7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.String())
		})
	}
}

func TestBigDecimalValue_Int64Exact(t *testing.T) {
	t.Run("whole number converts", func(t *testing.T) {
		v := types.NewBigDecimal(decimal.NewFromInt(3))
		got, err := v.Int64Exact()
		require.NoError(t, err)
		assert.Equal(t, int64(3), got)
	})

	t.Run("trailing zeros still convert", func(t *testing.T) {
		v, err := types.BigDecimalFromString("3.000")
		require.NoError(t, err)
		got, err := v.Int64Exact()
		require.NoError(t, err)
		assert.Equal(t, int64(3), got)
	})

	t.Run("fractional part fails", func(t *testing.T) {
		v, err := types.BigDecimalFromString("3.7")
		require.NoError(t, err)
		_, err = v.Int64Exact()
		assert.True(t, errors.IsErrorCode(err, errors.ErrExactConversion))
	})

	t.Run("overflow fails", func(t *testing.T) {
		v, err := types.BigDecimalFromString("9223372036854775808")
		require.NoError(t, err)
		_, err = v.Int64Exact()
		assert.True(t, errors.IsErrorCode(err, errors.ErrExactConversion))
	})
}

func TestBigDecimalValue_Float64(t *testing.T) {
	// Narrowing never fails, it only loses precision
	v, err := types.BigDecimalFromString("3.14159265358979323846264338327950288")
	require.NoError(t, err)
	assert.InDelta(t, 3.141592653589793, v.Float64(), 1e-15)
}

func TestConfigDescription_Parameter(t *testing.T) {
	desc := types.ConfigDescription{
		URI: "thing-type:hue:bridge",
		Parameters: []types.Parameter{
			{Name: "host", Kind: types.KindText, Required: true},
			{Name: "port", Kind: types.KindInteger},
		},
	}

	p, err := desc.Parameter("port")
	require.NoError(t, err)
	assert.Equal(t, types.KindInteger, p.Kind)

	_, err = desc.Parameter("user")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestConfigDescription_Validate(t *testing.T) {
	min := decimal.NewFromInt(10)
	max := decimal.NewFromInt(2)

	tests := []struct {
		name string
		desc types.ConfigDescription
		code errors.ErrorCode
	}{
		{
			name: "valid description",
			desc: types.ConfigDescription{
				URI: "ok",
				Parameters: []types.Parameter{
					{Name: "host", Kind: types.KindText},
				},
			},
		},
		{
			name: "unnamed parameter",
			desc: types.ConfigDescription{
				URI:        "bad",
				Parameters: []types.Parameter{{Kind: types.KindText}},
			},
			code: errors.ErrDescInvalid,
		},
		{
			name: "duplicate parameter",
			desc: types.ConfigDescription{
				URI: "bad",
				Parameters: []types.Parameter{
					{Name: "host", Kind: types.KindText},
					{Name: "host", Kind: types.KindText},
				},
			},
			code: errors.ErrDescInvalid,
		},
		{
			name: "missing kind",
			desc: types.ConfigDescription{
				URI:        "bad",
				Parameters: []types.Parameter{{Name: "host"}},
			},
			code: errors.ErrDescInvalid,
		},
		{
			name: "inverted bounds",
			desc: types.ConfigDescription{
				URI: "bad",
				Parameters: []types.Parameter{
					{Name: "port", Kind: types.KindInteger, Min: &min, Max: &max},
				},
			},
			code: errors.ErrDescInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.desc.Validate()
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}
