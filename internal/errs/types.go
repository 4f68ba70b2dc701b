package errs

import "strings"

// FieldError represents a field-level validation error.
//
//	{ "field": "code", "error": "is required" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the application error carried up to the global error handler.
//
// Only Message (as "detail") and Errors reach the client. Code and Status
// drive logging and the response status; Cause keeps the underlying error
// for server-side logs.
type HTTPError struct {
	Code     string       `json:"-"`
	Message  string       `json:"detail"`
	Status   int          `json:"-"`
	Override bool         `json:"-"`
	Errors   []FieldError `json:"errors,omitempty"`
	Cause    error        `json:"-"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Unwrap exposes Cause to errors.Is / errors.As.
func (e *HTTPError) Unwrap() error {
	return e.Cause
}

// Is reports true for any *HTTPError target; status and code are not compared.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithCause returns a copy of e that records cause for logging.
func (e *HTTPError) WithCause(cause error) *HTTPError {
	cp := *e
	cp.Cause = cause
	return &cp
}

// MakeUpperCaseWithUnderscores converts "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
