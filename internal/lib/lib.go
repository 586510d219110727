// Package lib acts as a library for modules that do not fit
// strictly into other layers.
//
// It currently holds the PostgREST client used to reach the
// hosted (Supabase) database.
package lib
