// Package validation checks candidate configuration values against a
// configuration description. Each declared parameter runs through a fixed
// pipeline (required, data type, bounds, pattern, options) and contributes
// at most one violation message to the aggregated result.
//
// Violations are data, not errors: Validate returns an error only for
// declaration or programming faults (an invalid description, a kind
// without introspection). A candidate number that cannot be exactly
// converted to an integer parameter is reported as a data-type violation.
package validation

import (
	"regexp"

	"github.com/rs/zerolog"

	"github.com/confhaus/confval/pkg/errors"
	"github.com/confhaus/confval/pkg/introspect"
	"github.com/confhaus/confval/pkg/logging"
	"github.com/confhaus/confval/pkg/messages"
	"github.com/confhaus/confval/pkg/types"
)

// Validator validates value maps against configuration descriptions
type Validator struct {
	logger zerolog.Logger
}

// New creates a new Validator
func New() *Validator {
	return &Validator{
		logger: logging.GetLogger("validation"),
	}
}

// Validate checks the given values against the description and aggregates
// all violations into a Result. Keys in values that the description does
// not declare are ignored.
func (v *Validator) Validate(desc *types.ConfigDescription, values map[string]types.Value) (*Result, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}

	v.logger.Debug().
		Str("uri", desc.URI).
		Int("parameterCount", len(desc.Parameters)).
		Int("valueCount", len(values)).
		Msg("Validating configuration")

	result := &Result{URI: desc.URI}
	for i := range desc.Parameters {
		if err := v.validateParameter(&desc.Parameters[i], values, result); err != nil {
			return nil, err
		}
	}

	for name := range values {
		if _, err := desc.Parameter(name); err != nil {
			v.logger.Debug().Str("uri", desc.URI).Str("parameter", name).
				Msg("Ignoring value for undeclared parameter")
		}
	}

	v.logger.Debug().
		Str("uri", desc.URI).
		Int("violations", len(result.Messages)).
		Msg("Validation finished")

	return result, nil
}

func (v *Validator) validateParameter(param *types.Parameter, values map[string]types.Value, result *Result) error {
	value, present := values[param.Name]
	if !present {
		if param.Required {
			result.add(param.Name, messages.ParameterRequired)
		}
		return nil
	}

	elements := []types.Value{value}
	if list, ok := value.(types.ListValue); ok {
		if !param.Multiple {
			result.add(param.Name, messages.DataTypeViolated, value, param.Kind)
			return nil
		}
		if param.MultipleLimit > 0 && len(list) > param.MultipleLimit {
			result.add(param.Name, messages.MultipleLimitViolated, param.MultipleLimit)
			return nil
		}
		elements = list
	}

	ti, err := introspect.Get(param.Kind)
	if err != nil {
		return err
	}

	for _, el := range elements {
		reported, err := v.checkElement(param, ti, el, result)
		if err != nil {
			return err
		}
		if reported {
			// First violation per parameter wins
			return nil
		}
	}
	return nil
}

func (v *Validator) checkElement(param *types.Parameter, ti introspect.TypeIntrospection, el types.Value, result *Result) (bool, error) {
	if !ti.IsAssignable(el) {
		result.add(param.Name, messages.DataTypeViolated, el, param.Kind)
		return true, nil
	}

	if param.Min != nil {
		violated, err := ti.IsMinViolated(el, *param.Min)
		if reported, err := v.reportBound(param, el, violated, err, ti.MinViolationMessageKey(), *param.Min, result); reported || err != nil {
			return reported, err
		}
	}

	if param.Max != nil {
		violated, err := ti.IsMaxViolated(el, *param.Max)
		if reported, err := v.reportBound(param, el, violated, err, ti.MaxViolationMessageKey(), *param.Max, result); reported || err != nil {
			return reported, err
		}
	}

	if param.Pattern != "" {
		if param.Kind != types.KindText {
			v.logger.Warn().Str("parameter", param.Name).Stringer("kind", param.Kind).
				Msg("Pattern is only applicable to text parameters, skipping")
		} else {
			re, err := regexp.Compile("^(?:" + param.Pattern + ")$")
			if err != nil {
				return false, errors.Wrapf(err, errors.ErrDescInvalid,
					"parameter %q declares an invalid pattern", param.Name)
			}
			if !re.MatchString(el.String()) {
				result.add(param.Name, messages.PatternViolated, el, param.Pattern)
				return true, nil
			}
		}
	}

	if len(param.Options) > 0 {
		found := false
		for _, opt := range param.Options {
			if el.String() == opt {
				found = true
				break
			}
		}
		if !found {
			result.add(param.Name, messages.OptionsViolated, el)
			return true, nil
		}
	}

	return false, nil
}

// reportBound folds a bound-check outcome into the result. An exact
// conversion failure counts as a data-type violation; any other error is a
// declaration or programming fault and propagates.
func (v *Validator) reportBound(param *types.Parameter, el types.Value, violated bool, err error, key messages.MessageKey, bound interface{}, result *Result) (bool, error) {
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrExactConversion) {
			result.add(param.Name, messages.DataTypeViolated, el, param.Kind)
			return true, nil
		}
		return false, err
	}
	if violated {
		result.add(param.Name, key, bound)
		return true, nil
	}
	return false, nil
}
