// Package config handles configuration loading and validation from
// environment variables. Both binaries share one Config struct with
// type-safe access to the settings they need, keeping deployment details
// separate from business logic.
package config
