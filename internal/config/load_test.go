package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every recognized variable so a test sees only what it sets.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range envBindings {
		t.Setenv(env, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "public", cfg.Server.StaticDir)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "postgres", cfg.Database.User)
	assert.Equal(t, "law_department", cfg.Database.Name)
	assert.Equal(t, 5*time.Second, cfg.Database.RetryInterval)
	assert.Equal(t, 0, cfg.Database.MaxAttempts)

	assert.Equal(t, "mongodb://localhost:27017/justiceDB", cfg.Mongo.URI)
	assert.Equal(t, "http://localhost:8080", cfg.Mongo.AllowedOrigin)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "caseapp")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "cases_prod")
	t.Setenv("DB_CONNECT_RETRY_INTERVAL", "2s")
	t.Setenv("DB_CONNECT_MAX_ATTEMPTS", "10")
	t.Setenv("MONGO_URI", "mongodb://mongo.internal:27017/authdb")
	t.Setenv("CORS_ORIGIN", "https://cases.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "caseapp", cfg.Database.User)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "cases_prod", cfg.Database.Name)
	assert.Equal(t, 2*time.Second, cfg.Database.RetryInterval)
	assert.Equal(t, 10, cfg.Database.MaxAttempts)
	assert.Equal(t, "mongodb://mongo.internal:27017/authdb", cfg.Mongo.URI)
	assert.Equal(t, "https://cases.example.com", cfg.Mongo.AllowedOrigin)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		value string
	}{
		{name: "port out of range", env: "PORT", value: "70000"},
		{name: "unknown log level", env: "LOG_LEVEL", value: "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.env, tt.value)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestDatabaseDSN(t *testing.T) {
	t.Parallel()

	cfg := DatabaseConfig{
		Host:     "db.internal",
		User:     "caseapp",
		Password: "secret",
		Name:     "cases_prod",
	}

	assert.Equal(t,
		"host=db.internal user=caseapp password=secret dbname=cases_prod sslmode=disable",
		cfg.DSN(),
	)
}
