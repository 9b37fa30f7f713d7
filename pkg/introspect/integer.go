package introspect

import (
	"github.com/shopspring/decimal"

	"github.com/confhaus/confval/pkg/errors"
	"github.com/confhaus/confval/pkg/messages"
	"github.com/confhaus/confval/pkg/types"
)

// integerIntrospection covers integer parameters. Comparisons run in exact
// integer arithmetic; an arbitrary-precision decimal candidate is converted
// without rounding and the conversion failure propagates as
// ErrExactConversion, distinct from a bound violation.
type integerIntrospection struct {
	introspection
}

func newIntegerIntrospection() integerIntrospection {
	return integerIntrospection{introspection{
		kind:   types.KindInteger,
		minKey: messages.MinValueNumericViolated,
		maxKey: messages.MaxValueNumericViolated,
	}}
}

func (integerIntrospection) IsAssignable(v types.Value) bool {
	switch v := v.(type) {
	case types.IntValue:
		return true
	case types.BigDecimalValue:
		_, err := v.Int64Exact()
		return err == nil
	default:
		return false
	}
}

func (i integerIntrospection) IsMinViolated(v types.Value, min decimal.Decimal) (bool, error) {
	n, err := i.intValue(v)
	if err != nil {
		return false, err
	}
	return decimal.NewFromInt(n).LessThan(min), nil
}

func (i integerIntrospection) IsMaxViolated(v types.Value, max decimal.Decimal) (bool, error) {
	n, err := i.intValue(v)
	if err != nil {
		return false, err
	}
	return decimal.NewFromInt(n).GreaterThan(max), nil
}

func (integerIntrospection) intValue(v types.Value) (int64, error) {
	switch v := v.(type) {
	case types.IntValue:
		return int64(v), nil
	case types.BigDecimalValue:
		return v.Int64Exact()
	default:
		return 0, errors.Newf(errors.ErrInvalidInput, "value %s is not an integer", v)
	}
}
