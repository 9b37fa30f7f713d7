package introspect

import (
	"github.com/shopspring/decimal"

	"github.com/confhaus/confval/pkg/errors"
	"github.com/confhaus/confval/pkg/messages"
	"github.com/confhaus/confval/pkg/types"
)

// decimalIntrospection covers decimal parameters. Comparisons run in
// float64; converting an arbitrary-precision decimal candidate narrows its
// precision and never fails.
type decimalIntrospection struct {
	introspection
}

func newDecimalIntrospection() decimalIntrospection {
	return decimalIntrospection{introspection{
		kind:   types.KindDecimal,
		minKey: messages.MinValueNumericViolated,
		maxKey: messages.MaxValueNumericViolated,
	}}
}

func (decimalIntrospection) IsAssignable(v types.Value) bool {
	switch v.(type) {
	case types.DecimalValue, types.BigDecimalValue:
		return true
	default:
		return false
	}
}

func (d decimalIntrospection) IsMinViolated(v types.Value, min decimal.Decimal) (bool, error) {
	f, err := d.floatValue(v)
	if err != nil {
		return false, err
	}
	bound, _ := min.Float64()
	return f < bound, nil
}

func (d decimalIntrospection) IsMaxViolated(v types.Value, max decimal.Decimal) (bool, error) {
	f, err := d.floatValue(v)
	if err != nil {
		return false, err
	}
	bound, _ := max.Float64()
	return f > bound, nil
}

func (decimalIntrospection) floatValue(v types.Value) (float64, error) {
	switch v := v.(type) {
	case types.DecimalValue:
		return float64(v), nil
	case types.BigDecimalValue:
		return v.Float64(), nil
	default:
		return 0, errors.Newf(errors.ErrInvalidInput, "value %s is not a decimal", v)
	}
}
