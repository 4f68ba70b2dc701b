// Package errs defines the error type returned to API clients.
//
// Every error response has the shape {"detail": "<message>"}, optionally
// with field-level validation errors, so clients always parse the same
// body regardless of status.
package errs
