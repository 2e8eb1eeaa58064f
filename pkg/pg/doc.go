// Package pg wires PostgreSQL connectivity for the service: pgxpool
// connection with startup retries, goose migrations bridged through
// database/sql, a readiness probe helper, and error classifiers used by the
// storage layer to map constraint violations to domain errors.
package pg
