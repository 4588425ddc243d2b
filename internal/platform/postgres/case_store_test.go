package postgres

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawdept/justice-api/internal/domain"
)

// fakeRow implements rowScanner over a fixed slice of column values, in the
// same select order the real queries use. A nil value leaves the destination
// at its zero value, like a NULL column.
type fakeRow struct {
	values []any
}

func (r fakeRow) Scan(dest ...any) error {
	if len(dest) != len(r.values) {
		return fmt.Errorf("expected %d scan destinations, got %d", len(r.values), len(dest))
	}
	for i, v := range r.values {
		if v == nil {
			continue
		}
		switch d := dest[i].(type) {
		case *int64:
			*d = v.(int64)
		case *sql.NullString:
			*d = sql.NullString{String: v.(string), Valid: true}
		case *sql.NullTime:
			*d = sql.NullTime{Time: v.(time.Time), Valid: true}
		case *time.Time:
			*d = v.(time.Time)
		default:
			return fmt.Errorf("unsupported scan destination %T at position %d", dest[i], i)
		}
	}
	return nil
}

func TestNullIfEmpty(t *testing.T) {
	t.Parallel()

	assert.Nil(t, nullIfEmpty(""))
	assert.Equal(t, "Acme Traders", nullIfEmpty("Acme Traders"))
}

func TestFieldArgsOrderAndNulls(t *testing.T) {
	t.Parallel()

	c := &domain.Case{
		CaseByOrAgainst: "Against",
		CustomerName:    "Acme Traders",
		CaseNo:          "CRL-1/2025",
		FilingDate:      "2025-03-14",
	}

	args := fieldArgs(c)
	require.Len(t, args, 34)

	// Populated fields land at their column positions; everything else is NULL.
	assert.Equal(t, "Against", args[0])      // case_by_or_against
	assert.Equal(t, "Acme Traders", args[3]) // customer_name
	assert.Equal(t, "CRL-1/2025", args[18])  // case_no
	assert.Equal(t, "2025-03-14", args[22])  // filing_date

	assert.Nil(t, args[1])  // allocation_code
	assert.Nil(t, args[4])  // complainant_name
	assert.Nil(t, args[33]) // documents_available
}

// TestScanCaseFieldMapping pins the read-side column mapping: every column
// value must land on its own Case field. Each value is distinct, so any two
// swapped scan positions fail the test.
func TestScanCaseFieldMapping(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, time.January, 2, 10, 30, 0, 0, time.UTC)
	updated := time.Date(2025, time.June, 5, 16, 45, 0, 0, time.UTC)
	filing := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	last := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)
	next := time.Date(2025, time.September, 15, 0, 0, 0, 0, time.UTC)

	row := fakeRow{values: []any{
		int64(42),
		"Against",             // case_by_or_against
		"ALLOC-7",             // allocation_code
		"LN-2001",             // loan_no
		"Acme Traders",        // customer_name
		"State Bank",          // complainant_name
		"500000",              // claim_amount
		"120000",              // contingent_amount
		"80000",               // provision
		"High",                // risk_level
		"Live",                // status
		"Retail",              // division
		"Gold Loan",           // product
		"Pune",                // location
		"Maharashtra",         // state
		"West",                // region
		"Recovery",            // nature
		"Criminal",            // case_type
		"Cheque bounce",       // brief_details
		"CRL-42/2025",         // case_no
		"CNR-123456",          // cnr_number
		"District Court",      // court_name
		"Shivajinagar",        // court_place
		filing,                // filing_date
		"2025",                // filing_year
		last,                  // last_date
		next,                  // next_date
		"Hearing scheduled",   // present_status
		"A Kulkarni",          // advocate_name
		"9800000001",          // advocate_mobile
		"advocate@lawdept.in", // advocate_email
		"R Mehta",             // fpr
		"S Iyer",              // rlm
		"rlm@lawdept.in",      // rlm_email
		"Yes",                 // documents_available
		created,
		updated,
	}}

	c, err := scanCase(row)
	require.NoError(t, err)

	want := &domain.Case{
		ID:                 42,
		CaseByOrAgainst:    "Against",
		AllocationCode:     "ALLOC-7",
		LoanNo:             "LN-2001",
		CustomerName:       "Acme Traders",
		ComplainantName:    "State Bank",
		ClaimAmount:        "500000",
		ContingentAmount:   "120000",
		Provision:          "80000",
		RiskLevel:          "High",
		Status:             "Live",
		Division:           "Retail",
		Product:            "Gold Loan",
		Location:           "Pune",
		State:              "Maharashtra",
		Region:             "West",
		Nature:             "Recovery",
		CaseType:           "Criminal",
		BriefDetails:       "Cheque bounce",
		CaseNo:             "CRL-42/2025",
		CNRNumber:          "CNR-123456",
		CourtName:          "District Court",
		CourtPlace:         "Shivajinagar",
		FilingDate:         "2025-03-14",
		FilingYear:         "2025",
		LastDate:           "2025-08-01",
		NextDate:           "2025-09-15",
		PresentStatus:      "Hearing scheduled",
		AdvocateName:       "A Kulkarni",
		AdvocateMobile:     "9800000001",
		AdvocateEmail:      "advocate@lawdept.in",
		FPR:                "R Mehta",
		RLM:                "S Iyer",
		RLMEmail:           "rlm@lawdept.in",
		DocumentsAvailable: "Yes",
		CreatedAt:          created,
		UpdatedAt:          updated,
	}
	assert.Equal(t, want, c)
}

func TestScanCaseNullColumns(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, time.January, 2, 10, 30, 0, 0, time.UTC)

	// id, 34 NULL descriptive columns, timestamps.
	values := make([]any, 37)
	values[0] = int64(7)
	values[35] = created
	values[36] = created

	c, err := scanCase(fakeRow{values: values})
	require.NoError(t, err)

	assert.Equal(t, int64(7), c.ID)
	assert.Empty(t, c.CustomerName)
	assert.Empty(t, c.CaseNo)
	assert.Empty(t, c.FilingDate)
	assert.Empty(t, c.LastDate)
	assert.Empty(t, c.NextDate)
	assert.Empty(t, c.DocumentsAvailable)
	assert.Equal(t, created, c.CreatedAt)
	assert.Equal(t, created, c.UpdatedAt)
}

// The write-side argument order and the read-side scan order describe the
// same column list: a case built from distinct values survives being rendered
// to insert arguments and scanned back unchanged.
func TestCaseFieldsRoundTrip(t *testing.T) {
	t.Parallel()

	seed := &domain.Case{
		CaseByOrAgainst:    "By",
		AllocationCode:     "AC-1",
		LoanNo:             "LN-1",
		CustomerName:       "Globex Finance",
		ComplainantName:    "R Sharma",
		ClaimAmount:        "250000",
		ContingentAmount:   "60000",
		Provision:          "40000",
		RiskLevel:          "Medium",
		Status:             "Closed",
		Division:           "Corporate",
		Product:            "Vehicle Loan",
		Location:           "Nagpur",
		State:              "Telangana",
		Region:             "South",
		Nature:             "Defence",
		CaseType:           "Civil",
		BriefDetails:       "Arbitration award challenge",
		CaseNo:             "CIV-9/2025",
		CNRNumber:          "CNR-987",
		CourtName:          "High Court",
		CourtPlace:         "Hyderabad",
		FilingDate:         "2024-11-30",
		FilingYear:         "2024",
		LastDate:           "2025-02-10",
		NextDate:           "2025-04-22",
		PresentStatus:      "Reserved for orders",
		AdvocateName:       "P Reddy",
		AdvocateMobile:     "9800000002",
		AdvocateEmail:      "reddy@lawdept.in",
		FPR:                "M Das",
		RLM:                "K Nair",
		RLMEmail:           "nair@lawdept.in",
		DocumentsAvailable: "No",
	}

	// Render insert arguments, then re-shape them as the select row:
	// id first, DATE columns parsed, timestamps appended.
	args := fieldArgs(seed)
	require.Len(t, args, 34)

	now := time.Date(2025, time.May, 1, 9, 0, 0, 0, time.UTC)
	values := []any{int64(11)}
	for i, arg := range args {
		switch i {
		case 22, 24, 25: // filing_date, last_date, next_date
			parsed, err := time.Parse(dateLayout, arg.(string))
			require.NoError(t, err)
			values = append(values, parsed)
		default:
			values = append(values, arg)
		}
	}
	values = append(values, now, now)

	got, err := scanCase(fakeRow{values: values})
	require.NoError(t, err)

	want := *seed
	want.ID = 11
	want.CreatedAt = now
	want.UpdatedAt = now
	assert.Equal(t, &want, got)
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	filed := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-14", formatDate(sql.NullTime{Time: filed, Valid: true}))
	assert.Equal(t, "", formatDate(sql.NullTime{}))
}
