// Package users implements the user-management module: registration,
// profile reads and partial updates, deletion, paginated listing, and
// credential verification, all working on the validated record types from
// the schemas package. Persistence sits behind the Storage interface with a
// PostgreSQL implementation.
package users
