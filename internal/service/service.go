// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives
// validated data from the handler, calls the repository, and turns
// database outcomes into API errors: no rows become 404, empty patches
// 400, and every other failure a 500 carrying the raw database message.
package service
