// Package middleware stores the global middleware chain.
//
// These intercept requests to handle cross-cutting concerns
// such as request ids, request logging, CORS, tracing and panic
// recovery, plus the error handler every failed request ends in.
package middleware
