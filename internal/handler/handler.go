// Package handler is the first layer after the router.
//
// It binds and validates requests using the validation package, calls
// the service layer and writes the JSON response; errors are returned
// for the global error handler to render.
package handler
