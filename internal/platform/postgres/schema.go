package postgres

import (
	"context"
	"log/slog"

	"github.com/lawdept/justice-api/internal/store"
)

// createCasesTable is the single idempotent statement that defines the cases
// table. Column types and defaults follow the legacy deployment; case_no
// carries the unique constraint and customer_name is the only required field.
const createCasesTable = `
CREATE TABLE IF NOT EXISTS cases (
	id SERIAL PRIMARY KEY,
	case_by_or_against VARCHAR(50),
	allocation_code VARCHAR(100),
	loan_no VARCHAR(100),
	customer_name VARCHAR(100) NOT NULL,
	complainant_name VARCHAR(100),
	claim_amount VARCHAR(50),
	contingent_amount VARCHAR(50),
	provision VARCHAR(50),
	risk_level VARCHAR(50),
	status VARCHAR(50) DEFAULT 'Live',
	division VARCHAR(100),
	product VARCHAR(100),
	location VARCHAR(100),
	state VARCHAR(100),
	region VARCHAR(100),
	nature VARCHAR(100),
	case_type VARCHAR(100),
	brief_details TEXT,
	case_no VARCHAR(100) UNIQUE,
	cnr_number VARCHAR(100),
	court_name VARCHAR(200),
	court_place VARCHAR(100),
	filing_date DATE,
	filing_year VARCHAR(10),
	last_date DATE,
	next_date DATE,
	present_status TEXT,
	advocate_name VARCHAR(100),
	advocate_mobile VARCHAR(20),
	advocate_email VARCHAR(100),
	fpr VARCHAR(100),
	rlm VARCHAR(100),
	rlm_email VARCHAR(100),
	documents_available VARCHAR(50),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)
`

// EnsureSchema creates the cases table if it does not exist yet. It runs once
// at startup after a connection is established. Failure is logged and
// reported but is not fatal: the process keeps serving, and subsequent
// queries fail at the store layer instead.
func EnsureSchema(ctx context.Context, db store.DBTX, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	if _, err := db.ExecContext(ctx, createCasesTable); err != nil {
		logger.Error("failed to create cases table", slog.String("error", err.Error()))
		return err
	}

	logger.Info("cases table is ready")
	return nil
}
