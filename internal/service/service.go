// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives validated
// payloads from the handlers, calls the repositories and passes their
// outcomes (value, repository.ErrNotFound or a driver error) back up.
package service
