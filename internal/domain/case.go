package domain

import "time"

// DefaultCaseStatus is assigned to newly created cases with no status supplied.
const DefaultCaseStatus = "Live"

// Case represents a single legal case tracked by the case service.
//
// All descriptive fields are free-form strings supplied by the client; empty
// values are persisted as NULL. The date fields (FilingDate, LastDate,
// NextDate) carry "YYYY-MM-DD" strings and are stored in DATE columns.
// JSON tags are snake_case so that list and get responses mirror the storage
// row shape.
type Case struct {
	ID int64 `json:"id"`

	CaseByOrAgainst    string `json:"case_by_or_against"`
	AllocationCode     string `json:"allocation_code"`
	LoanNo             string `json:"loan_no"`
	CustomerName       string `json:"customer_name"`
	ComplainantName    string `json:"complainant_name"`
	ClaimAmount        string `json:"claim_amount"`
	ContingentAmount   string `json:"contingent_amount"`
	Provision          string `json:"provision"`
	RiskLevel          string `json:"risk_level"`
	Status             string `json:"status"`
	Division           string `json:"division"`
	Product            string `json:"product"`
	Location           string `json:"location"`
	State              string `json:"state"`
	Region             string `json:"region"`
	Nature             string `json:"nature"`
	CaseType           string `json:"case_type"`
	BriefDetails       string `json:"brief_details"`
	CaseNo             string `json:"case_no"`
	CNRNumber          string `json:"cnr_number"`
	CourtName          string `json:"court_name"`
	CourtPlace         string `json:"court_place"`
	FilingDate         string `json:"filing_date"`
	FilingYear         string `json:"filing_year"`
	LastDate           string `json:"last_date"`
	NextDate           string `json:"next_date"`
	PresentStatus      string `json:"present_status"`
	AdvocateName       string `json:"advocate_name"`
	AdvocateMobile     string `json:"advocate_mobile"`
	AdvocateEmail      string `json:"advocate_email"`
	FPR                string `json:"fpr"`
	RLM                string `json:"rlm"`
	RLMEmail           string `json:"rlm_email"`
	DocumentsAvailable string `json:"documents_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ApplyDefaults fills server-side defaults for a case about to be created.
// Updates deliberately skip this: an update replaces the full row with
// whatever the client sent, including empty values.
func (c *Case) ApplyDefaults() {
	if c.Status == "" {
		c.Status = DefaultCaseStatus
	}
}
