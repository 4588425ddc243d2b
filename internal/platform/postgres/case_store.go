package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lawdept/justice-api/internal/domain"
	"github.com/lawdept/justice-api/internal/platform/logger"
	"github.com/lawdept/justice-api/internal/store"
)

// dateLayout is the wire format for the DATE columns.
const dateLayout = "2006-01-02"

// caseColumns lists the descriptive columns of the cases table in insert
// order. The id and timestamp columns are server-assigned and excluded.
const caseColumns = `case_by_or_against, allocation_code, loan_no, customer_name, complainant_name,
	claim_amount, contingent_amount, provision, risk_level, status, division,
	product, location, state, region, nature, case_type, brief_details,
	case_no, cnr_number, court_name, court_place, filing_date, filing_year,
	last_date, next_date, present_status, advocate_name, advocate_mobile,
	advocate_email, fpr, rlm, rlm_email, documents_available`

// PostgresCaseStore implements the store.CaseStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCaseStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCaseStore creates a new PostgreSQL implementation of the
// CaseStore interface. It accepts a database connection that should be
// initialized and managed by the caller.
// If logger is nil, the default logger is used.
func NewPostgresCaseStore(db store.DBTX, logger *slog.Logger) *PostgresCaseStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCaseStore{
		db:     db,
		logger: logger.With(slog.String("component", "case_store")),
	}
}

// Ensure PostgresCaseStore implements store.CaseStore interface
var _ store.CaseStore = (*PostgresCaseStore)(nil)

// Create implements store.CaseStore.Create
// It inserts a new row and returns the generated identifier. Empty fields are
// persisted as NULL; the status default is applied before insertion.
func (s *PostgresCaseStore) Create(ctx context.Context, c *domain.Case) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	c.ApplyDefaults()

	query := fmt.Sprintf(`
		INSERT INTO cases (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29,
			$30, $31, $32, $33, $34)
		RETURNING id
	`, caseColumns)

	var id int64
	err := s.db.QueryRowContext(ctx, query, fieldArgs(c)...).Scan(&id)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate case number on create",
				slog.String("case_no", c.CaseNo),
				slog.String("error", err.Error()))
			return 0, fmt.Errorf("%w: %v", store.ErrCaseNumberExists, err)
		}
		log.Error("failed to create case",
			slog.String("case_no", c.CaseNo),
			slog.String("error", err.Error()))
		return 0, MapError(err)
	}

	log.Info("case created",
		slog.Int64("case_id", id),
		slog.String("case_no", c.CaseNo))
	return id, nil
}

// List implements store.CaseStore.List
// It returns all cases ordered by creation time, newest first.
func (s *PostgresCaseStore) List(ctx context.Context) ([]*domain.Case, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := fmt.Sprintf(`
		SELECT id, %s, created_at, updated_at
		FROM cases
		ORDER BY created_at DESC
	`, caseColumns)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list cases", slog.String("error", err.Error()))
		return nil, err
	}

	return collectCases(rows, log)
}

// Search implements store.CaseStore.Search
// It matches the query as a case-insensitive substring against the case
// number, customer name, and complainant name.
func (s *PostgresCaseStore) Search(ctx context.Context, query string) ([]*domain.Case, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	stmt := fmt.Sprintf(`
		SELECT id, %s, created_at, updated_at
		FROM cases
		WHERE case_no ILIKE $1
		   OR customer_name ILIKE $1
		   OR complainant_name ILIKE $1
		ORDER BY created_at DESC
	`, caseColumns)

	pattern := "%" + query + "%"

	rows, err := s.db.QueryContext(ctx, stmt, pattern)
	if err != nil {
		log.Error("failed to search cases",
			slog.String("query", query),
			slog.String("error", err.Error()))
		return nil, err
	}

	return collectCases(rows, log)
}

// GetByID implements store.CaseStore.GetByID
// Returns store.ErrCaseNotFound if the case does not exist.
func (s *PostgresCaseStore) GetByID(ctx context.Context, id int64) (*domain.Case, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := fmt.Sprintf(`
		SELECT id, %s, created_at, updated_at
		FROM cases
		WHERE id = $1
	`, caseColumns)

	c, err := scanCase(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("case not found", slog.Int64("case_id", id))
			return nil, store.ErrCaseNotFound
		}
		log.Error("failed to get case by ID",
			slog.Int64("case_id", id),
			slog.String("error", err.Error()))
		return nil, err
	}

	return c, nil
}

// GetByCaseNo implements store.CaseStore.GetByCaseNo
// Returns store.ErrCaseNotFound if the case does not exist.
func (s *PostgresCaseStore) GetByCaseNo(ctx context.Context, caseNo string) (*domain.Case, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := fmt.Sprintf(`
		SELECT id, %s, created_at, updated_at
		FROM cases
		WHERE case_no = $1
	`, caseColumns)

	c, err := scanCase(s.db.QueryRowContext(ctx, query, caseNo))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("case not found", slog.String("case_no", caseNo))
			return nil, store.ErrCaseNotFound
		}
		log.Error("failed to get case by case number",
			slog.String("case_no", caseNo),
			slog.String("error", err.Error()))
		return nil, err
	}

	return c, nil
}

// Update implements store.CaseStore.Update
// It replaces the full row with the supplied values. Fields left blank by the
// caller are overwritten with NULL, not preserved.
// Returns store.ErrCaseNotFound if the case does not exist.
func (s *PostgresCaseStore) Update(ctx context.Context, c *domain.Case) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE cases SET
			case_by_or_against = $1, allocation_code = $2, loan_no = $3,
			customer_name = $4, complainant_name = $5, claim_amount = $6,
			contingent_amount = $7, provision = $8, risk_level = $9,
			status = $10, division = $11, product = $12, location = $13,
			state = $14, region = $15, nature = $16, case_type = $17,
			brief_details = $18, case_no = $19, cnr_number = $20,
			court_name = $21, court_place = $22, filing_date = $23,
			filing_year = $24, last_date = $25, next_date = $26,
			present_status = $27, advocate_name = $28, advocate_mobile = $29,
			advocate_email = $30, fpr = $31, rlm = $32, rlm_email = $33,
			documents_available = $34, updated_at = now()
		WHERE id = $35
	`

	args := append(fieldArgs(c), c.ID)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate case number on update",
				slog.Int64("case_id", c.ID),
				slog.String("case_no", c.CaseNo),
				slog.String("error", err.Error()))
			return fmt.Errorf("%w: %v", store.ErrCaseNumberExists, err)
		}
		log.Error("failed to update case",
			slog.Int64("case_id", c.ID),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrCaseNotFound); err != nil {
		log.Debug("case not found for update", slog.Int64("case_id", c.ID))
		return err
	}

	log.Info("case updated", slog.Int64("case_id", c.ID))
	return nil
}

// Delete implements store.CaseStore.Delete
// Returns store.ErrCaseNotFound if the case does not exist.
func (s *PostgresCaseStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM cases WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete case",
			slog.Int64("case_id", id),
			slog.String("error", err.Error()))
		return err
	}

	if err := CheckRowsAffected(result, store.ErrCaseNotFound); err != nil {
		log.Debug("case not found for delete", slog.Int64("case_id", id))
		return err
	}

	log.Info("case deleted", slog.Int64("case_id", id))
	return nil
}

// fieldArgs returns the descriptive field values of c in caseColumns order,
// with empty strings converted to NULL so storage constraints and defaults
// behave the same as for omitted fields.
func fieldArgs(c *domain.Case) []any {
	return []any{
		nullIfEmpty(c.CaseByOrAgainst),
		nullIfEmpty(c.AllocationCode),
		nullIfEmpty(c.LoanNo),
		nullIfEmpty(c.CustomerName),
		nullIfEmpty(c.ComplainantName),
		nullIfEmpty(c.ClaimAmount),
		nullIfEmpty(c.ContingentAmount),
		nullIfEmpty(c.Provision),
		nullIfEmpty(c.RiskLevel),
		nullIfEmpty(c.Status),
		nullIfEmpty(c.Division),
		nullIfEmpty(c.Product),
		nullIfEmpty(c.Location),
		nullIfEmpty(c.State),
		nullIfEmpty(c.Region),
		nullIfEmpty(c.Nature),
		nullIfEmpty(c.CaseType),
		nullIfEmpty(c.BriefDetails),
		nullIfEmpty(c.CaseNo),
		nullIfEmpty(c.CNRNumber),
		nullIfEmpty(c.CourtName),
		nullIfEmpty(c.CourtPlace),
		nullIfEmpty(c.FilingDate),
		nullIfEmpty(c.FilingYear),
		nullIfEmpty(c.LastDate),
		nullIfEmpty(c.NextDate),
		nullIfEmpty(c.PresentStatus),
		nullIfEmpty(c.AdvocateName),
		nullIfEmpty(c.AdvocateMobile),
		nullIfEmpty(c.AdvocateEmail),
		nullIfEmpty(c.FPR),
		nullIfEmpty(c.RLM),
		nullIfEmpty(c.RLMEmail),
		nullIfEmpty(c.DocumentsAvailable),
	}
}

// nullIfEmpty converts an empty string to a NULL parameter.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// rowScanner abstracts *sql.Row and *sql.Rows for scanCase.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanCase reads one row into a domain.Case, converting NULL columns back to
// empty strings and DATE columns to their wire format.
func scanCase(row rowScanner) (*domain.Case, error) {
	var c domain.Case
	var (
		text  [31]sql.NullString
		dates [3]sql.NullTime
	)

	err := row.Scan(
		&c.ID,
		&text[0],  // case_by_or_against
		&text[1],  // allocation_code
		&text[2],  // loan_no
		&text[3],  // customer_name
		&text[4],  // complainant_name
		&text[5],  // claim_amount
		&text[6],  // contingent_amount
		&text[7],  // provision
		&text[8],  // risk_level
		&text[9],  // status
		&text[10], // division
		&text[11], // product
		&text[12], // location
		&text[13], // state
		&text[14], // region
		&text[15], // nature
		&text[16], // case_type
		&text[17], // brief_details
		&text[18], // case_no
		&text[19], // cnr_number
		&text[20], // court_name
		&text[21], // court_place
		&dates[0], // filing_date
		&text[22], // filing_year
		&dates[1], // last_date
		&dates[2], // next_date
		&text[23], // present_status
		&text[24], // advocate_name
		&text[25], // advocate_mobile
		&text[26], // advocate_email
		&text[27], // fpr
		&text[28], // rlm
		&text[29], // rlm_email
		&text[30], // documents_available
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.CaseByOrAgainst = text[0].String
	c.AllocationCode = text[1].String
	c.LoanNo = text[2].String
	c.CustomerName = text[3].String
	c.ComplainantName = text[4].String
	c.ClaimAmount = text[5].String
	c.ContingentAmount = text[6].String
	c.Provision = text[7].String
	c.RiskLevel = text[8].String
	c.Status = text[9].String
	c.Division = text[10].String
	c.Product = text[11].String
	c.Location = text[12].String
	c.State = text[13].String
	c.Region = text[14].String
	c.Nature = text[15].String
	c.CaseType = text[16].String
	c.BriefDetails = text[17].String
	c.CaseNo = text[18].String
	c.CNRNumber = text[19].String
	c.CourtName = text[20].String
	c.CourtPlace = text[21].String
	c.FilingYear = text[22].String
	c.PresentStatus = text[23].String
	c.AdvocateName = text[24].String
	c.AdvocateMobile = text[25].String
	c.AdvocateEmail = text[26].String
	c.FPR = text[27].String
	c.RLM = text[28].String
	c.RLMEmail = text[29].String
	c.DocumentsAvailable = text[30].String

	c.FilingDate = formatDate(dates[0])
	c.LastDate = formatDate(dates[1])
	c.NextDate = formatDate(dates[2])

	return &c, nil
}

// formatDate renders a nullable DATE column as YYYY-MM-DD, or empty when NULL.
func formatDate(t sql.NullTime) string {
	if !t.Valid {
		return ""
	}
	return t.Time.Format(dateLayout)
}

// collectCases drains rows into a slice, always returning a non-nil slice so
// list responses serialize as an empty array rather than null.
func collectCases(rows *sql.Rows, log *slog.Logger) ([]*domain.Case, error) {
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	cases := []*domain.Case{}
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			log.Error("failed to scan case row", slog.String("error", err.Error()))
			return nil, err
		}
		cases = append(cases, c)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return cases, nil
}
