package types

import (
	"github.com/shopspring/decimal"

	"github.com/confhaus/confval/pkg/errors"
)

// Parameter is the declaration of a single configuration parameter within
// a configuration description.
type Parameter struct {
	// Name identifies the parameter within its description
	Name string

	// Kind is the declared data type
	Kind ParameterKind

	// Required marks the parameter as mandatory
	Required bool

	// Min is the lower bound: minimum numeric value for Integer and
	// Decimal parameters, minimum character count for Text parameters
	Min *decimal.Decimal

	// Max is the upper bound, mirroring Min
	Max *decimal.Decimal

	// Pattern is an optional regular expression Text values must match
	Pattern string

	// Options restricts the value to a fixed set of lexical forms
	Options []string

	// Multiple allows a list of values instead of a single value
	Multiple bool

	// MultipleLimit caps the list size when Multiple is set (0 = no limit)
	MultipleLimit int
}

// ConfigDescription declares the parameters a configuration may carry.
// Descriptions are identified by a URI, e.g. "thing-type:hue:bridge".
type ConfigDescription struct {
	URI        string
	Parameters []Parameter
}

// Parameter returns the declaration for the given name
func (d *ConfigDescription) Parameter(name string) (*Parameter, error) {
	for i := range d.Parameters {
		if d.Parameters[i].Name == name {
			return &d.Parameters[i], nil
		}
	}
	return nil, errors.Newf(errors.ErrNotFound, "parameter %q not declared in %s", name, d.URI)
}

// Validate checks the description itself for declaration errors: unnamed
// or duplicate parameters, unknown kinds and inverted bounds.
func (d *ConfigDescription) Validate() error {
	seen := make(map[string]bool, len(d.Parameters))
	for i := range d.Parameters {
		p := &d.Parameters[i]
		if p.Name == "" {
			return errors.Newf(errors.ErrDescInvalid, "description %s declares an unnamed parameter", d.URI)
		}
		if seen[p.Name] {
			return errors.Newf(errors.ErrDescInvalid, "description %s declares parameter %q twice", d.URI, p.Name)
		}
		seen[p.Name] = true
		if p.Kind == KindUnknown {
			return errors.Newf(errors.ErrDescInvalid, "parameter %q has no kind", p.Name)
		}
		if p.Kind == KindBoolean && (p.Min != nil || p.Max != nil) {
			return errors.Newf(errors.ErrDescInvalid, "boolean parameter %q must not declare bounds", p.Name)
		}
		if p.Min != nil && p.Max != nil && p.Min.GreaterThan(*p.Max) {
			return errors.Newf(errors.ErrDescInvalid, "parameter %q declares min > max", p.Name)
		}
	}
	return nil
}
