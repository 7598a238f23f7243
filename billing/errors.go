package billing

import "strings"

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is a user-correctable rejection. It never involves I/O and
// the draft is left untouched apart from the sub-form echo.
type ValidationError struct {
	Message string
	Fields  []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return e.Message + ": " + strings.Join(msgs, "; ")
}

func invalid(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func invalidField(field, message string) *ValidationError {
	return &ValidationError{
		Message: message,
		Fields:  []FieldError{{Field: field, Message: message}},
	}
}
