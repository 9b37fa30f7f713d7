package validation

import "github.com/confhaus/confval/pkg/messages"

// ValidationMessage reports a single violation for one parameter
type ValidationMessage struct {
	// Parameter is the name of the violating parameter
	Parameter string

	// Key identifies the message template
	Key messages.MessageKey

	// Message is the template rendered with Content using the default
	// catalog; callers with their own catalogs render from Key and Content
	Message string

	// Content is the data the template was rendered with
	Content []interface{}
}

// Result aggregates all violations of one validation run
type Result struct {
	// URI identifies the validated configuration description
	URI string

	// Messages holds one entry per violating parameter, in declaration order
	Messages []ValidationMessage
}

// Valid reports whether the run produced no violations
func (r *Result) Valid() bool {
	return len(r.Messages) == 0
}

func (r *Result) add(parameter string, key messages.MessageKey, content ...interface{}) {
	r.Messages = append(r.Messages, ValidationMessage{
		Parameter: parameter,
		Key:       key,
		Message:   key.Format(content...),
		Content:   content,
	})
}
