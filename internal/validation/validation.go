// Package validation contains the logic for validating
// request data.
//
// It binds path, query and JSON body values with echo, runs the
// `validator` rules declared in struct tags and turns failures into
// field-level errors keyed by the JSON name the client sent.
package validation
