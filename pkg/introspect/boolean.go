package introspect

import (
	"github.com/shopspring/decimal"

	"github.com/confhaus/confval/pkg/errors"
	"github.com/confhaus/confval/pkg/types"
)

// booleanIntrospection covers boolean parameters. Booleans have no ordering
// or length, so bound checks are categorically unsupported.
type booleanIntrospection struct {
	introspection
}

func newBooleanIntrospection() booleanIntrospection {
	return booleanIntrospection{introspection{kind: types.KindBoolean}}
}

func (booleanIntrospection) IsAssignable(v types.Value) bool {
	_, ok := v.(types.BoolValue)
	return ok
}

func (booleanIntrospection) IsMinViolated(_ types.Value, _ decimal.Decimal) (bool, error) {
	return false, errors.New(errors.ErrUnsupportedOperation, "min attribute not supported for boolean parameter")
}

func (booleanIntrospection) IsMaxViolated(_ types.Value, _ decimal.Decimal) (bool, error) {
	return false, errors.New(errors.ErrUnsupportedOperation, "max attribute not supported for boolean parameter")
}
