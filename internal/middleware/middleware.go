// Package middleware holds the cross-cutting request handling: request ids,
// the request-scoped logger, CORS, request logging, panic recovery, secure
// headers, New Relic tracing and the global error handler.
package middleware
