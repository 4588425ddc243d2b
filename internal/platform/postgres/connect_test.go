package postgres

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestConnectSucceedsAfterFailures(t *testing.T) {
	t.Parallel()

	want := &sql.DB{}
	attempts := 0
	dial := func() (*sql.DB, error) {
		attempts++
		if attempts < 3 {
			return nil, errors.New("connection refused")
		}
		return want, nil
	}

	policy := RetryPolicy{Interval: time.Millisecond}
	db, err := connect(context.Background(), policy, discardLogger(), dial)

	require.NoError(t, err)
	assert.Same(t, want, db)
	assert.Equal(t, 3, attempts)
}

func TestConnectStopsAtMaxAttempts(t *testing.T) {
	t.Parallel()

	attempts := 0
	dial := func() (*sql.DB, error) {
		attempts++
		return nil, errors.New("connection refused")
	}

	policy := RetryPolicy{Interval: time.Millisecond, MaxAttempts: 4}
	db, err := connect(context.Background(), policy, discardLogger(), dial)

	require.Error(t, err)
	assert.Nil(t, db)
	assert.Equal(t, 4, attempts)
	assert.Contains(t, err.Error(), "after 4 attempts")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestConnectHonorsContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	dial := func() (*sql.DB, error) {
		cancel()
		return nil, errors.New("connection refused")
	}

	// A long interval with no attempt cap: only cancellation can end the loop.
	policy := RetryPolicy{Interval: time.Hour}
	db, err := connect(ctx, policy, discardLogger(), dial)

	assert.Nil(t, db)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDefaultRetryPolicy(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5*time.Second, DefaultRetryPolicy.Interval)
	assert.Zero(t, DefaultRetryPolicy.MaxAttempts)
}
