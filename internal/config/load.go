package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Environment variable names recognized by Load. They match the deployment
// environment of the legacy services, so existing compose files keep working.
var envBindings = map[string]string{
	"server.port":             "PORT",
	"server.log_level":        "LOG_LEVEL",
	"server.static_dir":       "STATIC_DIR",
	"database.host":           "DB_HOST",
	"database.user":           "DB_USER",
	"database.password":       "DB_PASSWORD",
	"database.name":           "DB_NAME",
	"database.retry_interval": "DB_CONNECT_RETRY_INTERVAL",
	"database.max_attempts":   "DB_CONNECT_MAX_ATTEMPTS",
	"mongo.uri":               "MONGO_URI",
	"mongo.allowed_origin":    "CORS_ORIGIN",
}

// Load reads configuration from environment variables, applies defaults for
// local use, and validates the result.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults applies the local-development defaults of the legacy services.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.static_dir", "public")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "law_department")
	v.SetDefault("database.retry_interval", "5s")
	v.SetDefault("database.max_attempts", 0)
	v.SetDefault("mongo.uri", "mongodb://localhost:27017/justiceDB")
	v.SetDefault("mongo.allowed_origin", "http://localhost:8080")
}
