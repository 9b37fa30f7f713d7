// Package introspect provides a per-kind introspection strategy for
// configuration parameter values: whether a candidate value is assignable
// to a declared kind, and whether it violates a declared min or max bound.
//
// The strategy set is closed. A fixed registry maps every ParameterKind to
// exactly one TypeIntrospection; it is populated once at init and never
// mutated, so any number of callers may share it without locking.
package introspect

import (
	"github.com/shopspring/decimal"

	"github.com/confhaus/confval/pkg/errors"
	"github.com/confhaus/confval/pkg/messages"
	"github.com/confhaus/confval/pkg/registry"
	"github.com/confhaus/confval/pkg/types"
)

// TypeIntrospection introspects candidate values for one parameter kind.
// Implementations are stateless; identical inputs yield identical results.
type TypeIntrospection interface {
	// Kind returns the parameter kind this introspection covers
	Kind() types.ParameterKind

	// IsAssignable reports whether the value's runtime representation
	// matches this kind. Integer and Decimal also accept an
	// arbitrary-precision decimal: Integer only when it is exactly
	// representable as an int64, Decimal always.
	IsAssignable(v types.Value) bool

	// IsMinViolated reports whether the value is strictly less than min
	// (numeric kinds) or shorter than min characters (text). Boolean has
	// no bound semantics and fails with ErrUnsupportedOperation.
	IsMinViolated(v types.Value, min decimal.Decimal) (bool, error)

	// IsMaxViolated mirrors IsMinViolated for the upper bound
	IsMaxViolated(v types.Value, max decimal.Decimal) (bool, error)

	// MinViolationMessageKey returns the message key to report on a min
	// violation; zero for kinds without bounds
	MinViolationMessageKey() messages.MessageKey

	// MaxViolationMessageKey mirrors MinViolationMessageKey
	MaxViolationMessageKey() messages.MessageKey
}

// introspection carries the per-kind constants shared by all variants
type introspection struct {
	kind   types.ParameterKind
	minKey messages.MessageKey
	maxKey messages.MessageKey
}

func (i introspection) Kind() types.ParameterKind {
	return i.kind
}

func (i introspection) MinViolationMessageKey() messages.MessageKey {
	return i.minKey
}

func (i introspection) MaxViolationMessageKey() messages.MessageKey {
	return i.maxKey
}

var introspections registry.Registry[types.ParameterKind, TypeIntrospection]

func init() {
	introspections = registry.New[types.ParameterKind, TypeIntrospection]()
	registry.MustRegister[types.ParameterKind, TypeIntrospection](introspections, types.KindBoolean, newBooleanIntrospection())
	registry.MustRegister[types.ParameterKind, TypeIntrospection](introspections, types.KindText, newTextIntrospection())
	registry.MustRegister[types.ParameterKind, TypeIntrospection](introspections, types.KindInteger, newIntegerIntrospection())
	registry.MustRegister[types.ParameterKind, TypeIntrospection](introspections, types.KindDecimal, newDecimalIntrospection())
}

// Get returns the introspection for the given kind. The kind set is closed,
// so a failed lookup indicates a programming error; it is still reported
// explicitly with ErrUnsupportedKind rather than crashing.
func Get(kind types.ParameterKind) (TypeIntrospection, error) {
	ti, err := introspections.Get(kind)
	if err != nil {
		return nil, errors.Newf(errors.ErrUnsupportedKind, "there is no type introspection for kind %s", kind)
	}
	return ti, nil
}
