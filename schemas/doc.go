// Package schemas defines the request and response record types exchanged
// over the user-management API, together with their field validation.
//
// Every type exposes a Validate method that checks each field independently
// and aggregates all failures into a validator.ValidationErrors value, so a
// client correcting its input sees every offending field at once. Records
// are treated as immutable once validated: update operations produce a new
// partial record (UserUpdate) whose present fields are validated with the
// same rules before being merged into stored state.
//
// Validation never mutates input. A record built from the field values of an
// already-validated record validates again and compares equal field for
// field.
package schemas
