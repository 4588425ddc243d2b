package store

import (
	"context"

	"github.com/lawdept/justice-api/internal/domain"
)

// CaseStore defines the interface for case data persistence.
type CaseStore interface {
	// Create inserts a new case and returns the generated identifier.
	// Returns ErrCaseNumberExists if the case number is already taken.
	// Returns ErrInvalidEntity if a storage constraint other than
	// uniqueness is violated (e.g., a missing customer name).
	Create(ctx context.Context, c *domain.Case) (int64, error)

	// List returns all cases ordered by creation time, newest first.
	List(ctx context.Context) ([]*domain.Case, error)

	// Search returns cases whose case number, customer name, or complainant
	// name contains the query as a case-insensitive substring, ordered by
	// creation time, newest first.
	Search(ctx context.Context, query string) ([]*domain.Case, error)

	// GetByID retrieves a case by its identifier.
	// Returns ErrCaseNotFound if the case does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Case, error)

	// GetByCaseNo retrieves a case by its case number.
	// Returns ErrCaseNotFound if the case does not exist.
	GetByCaseNo(ctx context.Context, caseNo string) (*domain.Case, error)

	// Update replaces the full row identified by c.ID with the supplied
	// values, including empty ones. Fields the caller leaves blank are
	// overwritten, not preserved.
	// Returns ErrCaseNotFound if the case does not exist.
	Update(ctx context.Context, c *domain.Case) error

	// Delete removes a case by its identifier.
	// Returns ErrCaseNotFound if the case does not exist.
	Delete(ctx context.Context, id int64) error
}
