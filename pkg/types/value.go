package types

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/confhaus/confval/pkg/errors"
)

// Value is a candidate configuration value. The implementer set is fixed:
// BoolValue, TextValue, IntValue, DecimalValue, BigDecimalValue and
// ListValue. Values read from description or value files carry their
// numbers as BigDecimalValue since file formats do not preserve the
// declared width of a number.
type Value interface {
	// String returns the lexical form of the value for messages and logs
	String() string

	isValue()
}

// BoolValue is a native boolean value
type BoolValue bool

// TextValue is a native string value
type TextValue string

// IntValue is a native 64-bit integer value
type IntValue int64

// DecimalValue is a native fixed-precision floating point value
type DecimalValue float64

// BigDecimalValue is an arbitrary-precision decimal value
type BigDecimalValue struct {
	dec decimal.Decimal
}

// ListValue is an ordered list of values supplied for a parameter that
// declares Multiple
type ListValue []Value

func (BoolValue) isValue()       {}
func (TextValue) isValue()       {}
func (IntValue) isValue()        {}
func (DecimalValue) isValue()    {}
func (BigDecimalValue) isValue() {}
func (ListValue) isValue()       {}

func (v BoolValue) String() string {
	return strconv.FormatBool(bool(v))
}

func (v TextValue) String() string {
	return string(v)
}

func (v IntValue) String() string {
	return strconv.FormatInt(int64(v), 10)
}

func (v DecimalValue) String() string {
	return strconv.FormatFloat(float64(v), 'f', -1, 64)
}

func (v BigDecimalValue) String() string {
	return v.dec.String()
}

func (v ListValue) String() string {
	parts := make([]string, len(v))
	for i, el := range v {
		parts[i] = el.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// NewBigDecimal wraps an arbitrary-precision decimal as a Value
func NewBigDecimal(d decimal.Decimal) BigDecimalValue {
	return BigDecimalValue{dec: d}
}

// BigDecimalFromString parses the lexical form of a decimal number
func BigDecimalFromString(s string) (BigDecimalValue, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return BigDecimalValue{}, errors.Wrapf(err, errors.ErrInvalidInput, "invalid decimal %q", s)
	}
	return BigDecimalValue{dec: d}, nil
}

// Decimal returns the wrapped arbitrary-precision decimal
func (v BigDecimalValue) Decimal() decimal.Decimal {
	return v.dec
}

// Int64Exact converts the decimal to an int64 without rounding. It fails
// with ErrExactConversion when the decimal has a fractional part or does
// not fit into 64 bits.
func (v BigDecimalValue) Int64Exact() (int64, error) {
	if !v.dec.IsInteger() {
		return 0, errors.Newf(errors.ErrExactConversion,
			"value %s has a fractional part and cannot be converted to an integer", v.dec)
	}
	bi := v.dec.BigInt()
	if !bi.IsInt64() {
		return 0, errors.Newf(errors.ErrExactConversion,
			"value %s overflows the integer range", v.dec)
	}
	return bi.Int64(), nil
}

// Float64 converts the decimal to a float64. The conversion narrows the
// precision and never fails.
func (v BigDecimalValue) Float64() float64 {
	f, _ := v.dec.Float64()
	return f
}
