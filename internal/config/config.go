package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
// Both binaries load the same struct; each reads only the groups it needs.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Mongo    MongoConfig    `mapstructure:"mongo"    validate:"required"`
}

// ServerConfig contains settings shared by both HTTP listeners.
type ServerConfig struct {
	Port      int    `mapstructure:"port"       validate:"required,gt=0,lt=65536"`
	LogLevel  string `mapstructure:"log_level"  validate:"required,oneof=debug info warn error"`
	StaticDir string `mapstructure:"static_dir" validate:"required"`
}

// DatabaseConfig contains the relational store settings used by the case service.
type DatabaseConfig struct {
	Host     string `mapstructure:"host" validate:"required"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name" validate:"required"`

	// RetryInterval is the fixed wait between startup connection attempts.
	RetryInterval time.Duration `mapstructure:"retry_interval" validate:"required"`

	// MaxAttempts bounds the startup connection retry loop. Zero means
	// retry indefinitely.
	MaxAttempts int `mapstructure:"max_attempts" validate:"gte=0"`
}

// DSN returns the connection string for the configured database.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.User, c.Password, c.Name,
	)
}

// MongoConfig contains the document store settings used by the auth service.
type MongoConfig struct {
	URI string `mapstructure:"uri" validate:"required"`

	// AllowedOrigin is the single origin permitted to call the auth API
	// cross-origin.
	AllowedOrigin string `mapstructure:"allowed_origin" validate:"required"`
}
