package introspect

import (
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/confhaus/confval/pkg/errors"
	"github.com/confhaus/confval/pkg/messages"
	"github.com/confhaus/confval/pkg/types"
)

// textIntrospection covers text parameters. Min and max bound the character
// count of the value, not its lexical ordering.
type textIntrospection struct {
	introspection
}

func newTextIntrospection() textIntrospection {
	return textIntrospection{introspection{
		kind:   types.KindText,
		minKey: messages.MinValueTextViolated,
		maxKey: messages.MaxValueTextViolated,
	}}
}

func (textIntrospection) IsAssignable(v types.Value) bool {
	_, ok := v.(types.TextValue)
	return ok
}

func (t textIntrospection) IsMinViolated(v types.Value, min decimal.Decimal) (bool, error) {
	length, err := t.length(v)
	if err != nil {
		return false, err
	}
	return decimal.NewFromInt(length).LessThan(min), nil
}

func (t textIntrospection) IsMaxViolated(v types.Value, max decimal.Decimal) (bool, error) {
	length, err := t.length(v)
	if err != nil {
		return false, err
	}
	return decimal.NewFromInt(length).GreaterThan(max), nil
}

func (textIntrospection) length(v types.Value) (int64, error) {
	text, ok := v.(types.TextValue)
	if !ok {
		return 0, errors.Newf(errors.ErrInvalidInput, "value %s is not text", v)
	}
	return int64(utf8.RuneCountInString(string(text))), nil
}
