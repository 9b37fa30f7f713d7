package types

import (
	"strings"

	"github.com/confhaus/confval/pkg/errors"
)

// ParameterKind is the declared data type of a configuration parameter.
// The set is closed: every declared parameter is one of the four kinds below.
type ParameterKind int

const (
	// KindUnknown is the zero value and never a valid declaration
	KindUnknown ParameterKind = iota

	// KindBoolean represents a true/false parameter
	KindBoolean

	// KindText represents a free-form text parameter
	KindText

	// KindInteger represents a whole-number parameter
	KindInteger

	// KindDecimal represents a fractional-number parameter
	KindDecimal
)

// Kinds returns all valid parameter kinds in declaration order
func Kinds() []ParameterKind {
	return []ParameterKind{KindBoolean, KindText, KindInteger, KindDecimal}
}

// String returns the lowercase name used in description files
func (k ParameterKind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	case KindDecimal:
		return "decimal"
	default:
		return "unknown"
	}
}

// ParseKind converts a description-file kind name into a ParameterKind.
// Matching is case-insensitive to accept both TOML ("integer") and the
// upper-case spelling XML descriptions use ("INTEGER").
func ParseKind(s string) (ParameterKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "boolean":
		return KindBoolean, nil
	case "text":
		return KindText, nil
	case "integer":
		return KindInteger, nil
	case "decimal":
		return KindDecimal, nil
	default:
		return KindUnknown, errors.Newf(errors.ErrInvalidInput, "unknown parameter kind %q", s)
	}
}
