package errs

import "strings"

// FieldError is a field-level validation error.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the error type serialized to API clients.
//
// Code is a stable machine-readable identifier (e.g. "USER_ALREADY_EXISTS"),
// Message is for humans, Status is the HTTP status code. Override signals to
// clients that Message is safe to display verbatim.
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors,omitempty"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports a match for any other *HTTPError, so
// errors.Is(err, &HTTPError{}) checks the type without comparing fields.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of the error with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	clone := *e
	clone.Message = message
	return &clone
}

// MakeUpperCaseWithUnderscores converts HTTP status text into a stable code,
// e.g. "Bad Request" -> "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
