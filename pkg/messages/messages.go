// Package messages defines the keys and default templates for the
// user-facing texts a validation run can produce. Keys are stable and
// opaque so callers can map them to localized catalogs; the default
// templates are the English fallback.
package messages

import "fmt"

// MessageKey names a violation message template
type MessageKey struct {
	// Key is the stable identifier, e.g. "max_value_numeric_violated"
	Key string

	// Default is the English template, using fmt verbs for the content
	Default string
}

// Violation message keys
var (
	ParameterRequired = MessageKey{
		Key:     "parameter_required",
		Default: "The parameter is required."}

	DataTypeViolated = MessageKey{
		Key:     "data_type_violated",
		Default: "The value %v does not match the declared type %v."}

	MinValueNumericViolated = MessageKey{
		Key:     "min_value_numeric_violated",
		Default: "The value must not be less than %v."}

	MaxValueNumericViolated = MessageKey{
		Key:     "max_value_numeric_violated",
		Default: "The value must not be greater than %v."}

	MinValueTextViolated = MessageKey{
		Key:     "min_value_text_violated",
		Default: "The text must be at least %v characters long."}

	MaxValueTextViolated = MessageKey{
		Key:     "max_value_text_violated",
		Default: "The text must not be longer than %v characters."}

	PatternViolated = MessageKey{
		Key:     "pattern_violated",
		Default: "The value %v does not match the pattern %v."}

	OptionsViolated = MessageKey{
		Key:     "options_violated",
		Default: "The value %v is not one of the allowed options."}

	MultipleLimitViolated = MessageKey{
		Key:     "multiple_limit_violated",
		Default: "The list must not have more than %v entries."}
)

// IsZero reports whether the key is unset. Kinds without bound semantics
// carry zero keys.
func (k MessageKey) IsZero() bool {
	return k.Key == ""
}

// Format renders the default template with the given content
func (k MessageKey) Format(content ...interface{}) string {
	return fmt.Sprintf(k.Default, content...)
}
