// Package handler is the HTTP layer behind the router.
//
// It binds and validates requests through the validation package, calls
// the service layer and maps service outcomes to HTTP responses.
package handler
