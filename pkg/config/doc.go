// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Struct fields are annotated with `env` tags understood by
// github.com/caarlos0/env; defaults and required markers live next to the
// fields they describe, so each package owns its own Config type and the
// binary composes them at startup.
package config
