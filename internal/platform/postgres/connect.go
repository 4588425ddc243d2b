package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // register the pgx database/sql driver
)

// RetryPolicy controls the startup connection retry loop.
type RetryPolicy struct {
	// Interval is the fixed wait between attempts.
	Interval time.Duration

	// MaxAttempts bounds the number of attempts. Zero means retry
	// indefinitely.
	MaxAttempts int
}

// DefaultRetryPolicy matches the legacy deployment: a fixed five second
// wait with no attempt limit.
var DefaultRetryPolicy = RetryPolicy{Interval: 5 * time.Second}

// pingTimeout bounds each individual connection probe.
const pingTimeout = 5 * time.Second

// Connect opens a database handle for the given DSN and verifies it with a
// ping, retrying per the supplied policy. The returned handle is shared by
// all request handlers; pooling is left to database/sql.
// The context cancels the retry loop between attempts.
func Connect(ctx context.Context, dsn string, policy RetryPolicy, logger *slog.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}

	return connect(ctx, policy, logger, func() (*sql.DB, error) {
		return open(dsn)
	})
}

// connect runs the retry loop around the supplied dial function.
func connect(
	ctx context.Context,
	policy RetryPolicy,
	logger *slog.Logger,
	dial func() (*sql.DB, error),
) (*sql.DB, error) {
	for attempt := 1; ; attempt++ {
		db, err := dial()
		if err == nil {
			logger.Info("database connection established", slog.Int("attempt", attempt))
			return db, nil
		}

		logger.Error("database connection failed",
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()))

		if policy.MaxAttempts > 0 && attempt >= policy.MaxAttempts {
			return nil, fmt.Errorf("database connection failed after %d attempts: %w",
				attempt, err)
		}

		logger.Info("retrying database connection",
			slog.Duration("wait", policy.Interval))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(policy.Interval):
		}
	}
}

// open creates and pings a database handle.
func open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to ping database: %w (close: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
