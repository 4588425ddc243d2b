package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/lawdept/justice-api/internal/store"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{
			name:    "nil error",
			err:     nil,
			wantErr: nil,
		},
		{
			name:    "no rows maps to not found",
			err:     sql.ErrNoRows,
			wantErr: store.ErrNotFound,
		},
		{
			name:    "wrapped no rows maps to not found",
			err:     fmt.Errorf("query failed: %w", sql.ErrNoRows),
			wantErr: store.ErrNotFound,
		},
		{
			name:    "unique violation maps to duplicate",
			err:     &pgconn.PgError{Code: "23505", ConstraintName: "cases_case_no_key"},
			wantErr: store.ErrDuplicate,
		},
		{
			name:    "not null violation maps to invalid entity",
			err:     &pgconn.PgError{Code: "23502", ColumnName: "customer_name"},
			wantErr: store.ErrInvalidEntity,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := MapError(tt.err)
			if tt.wantErr == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.wantErr)
		})
	}
}

func TestMapErrorPreservesDriverMessage(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: "23502", ColumnName: "customer_name", Message: "null value"}
	got := MapError(pgErr)

	assert.Contains(t, got.Error(), "customer_name")
}

func TestMapErrorPassesThroughUnknownErrors(t *testing.T) {
	t.Parallel()

	underlying := errors.New("connection refused")
	assert.Equal(t, underlying, MapError(underlying))
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23502"}))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
	assert.False(t, IsUniqueViolation(nil))
}

// fakeResult implements sql.Result for CheckRowsAffected tests.
type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	notFound := fmt.Errorf("%w: case", store.ErrCaseNotFound)

	t.Run("rows affected", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, CheckRowsAffected(fakeResult{rows: 1}, notFound))
	})

	t.Run("zero rows returns not found", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, CheckRowsAffected(fakeResult{rows: 0}, notFound), store.ErrCaseNotFound)
	})

	t.Run("driver error is wrapped", func(t *testing.T) {
		t.Parallel()
		err := CheckRowsAffected(fakeResult{err: errors.New("not supported")}, notFound)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, store.ErrCaseNotFound)
	})
}
