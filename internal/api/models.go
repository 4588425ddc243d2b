package api

import "github.com/lawdept/justice-api/internal/domain"

// Auth service request/response structures. The auth endpoints answer with a
// bare {msg} envelope.

// SignupRequest defines the payload for the signup endpoint.
type SignupRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// MessageResponse is the auth service's response envelope.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// Case service structures. Requests carry camelCase field names mapped 1:1 to
// the snake_case storage columns; responses use a {success, ...} envelope.

// CasePayload defines the full case payload accepted by the create and update
// endpoints. Every field is optional from the decoder's point of view;
// storage constraints are the only validation applied.
type CasePayload struct {
	CaseByOrAgainst    string `json:"caseByOrAgainst"`
	AllocationCode     string `json:"allocationCode"`
	LoanNo             string `json:"loanNo"`
	CustomerName       string `json:"customerName"`
	ComplainantName    string `json:"complainantName"`
	ClaimAmount        string `json:"claimAmount"`
	ContingentAmount   string `json:"contingentAmount"`
	Provision          string `json:"provision"`
	RiskLevel          string `json:"riskLevel"`
	Status             string `json:"status"`
	Division           string `json:"division"`
	Product            string `json:"product"`
	Location           string `json:"location"`
	State              string `json:"state"`
	Region             string `json:"region"`
	Nature             string `json:"nature"`
	CaseType           string `json:"caseType"`
	BriefDetails       string `json:"briefDetails"`
	CaseNo             string `json:"caseNo"`
	CNRNumber          string `json:"cnrNumber"`
	CourtName          string `json:"courtName"`
	CourtPlace         string `json:"courtPlace"`
	FilingDate         string `json:"filingDate"`
	FilingYear         string `json:"filingYear"`
	LastDate           string `json:"lastDate"`
	NextDate           string `json:"nextDate"`
	PresentStatus      string `json:"presentStatus"`
	AdvocateName       string `json:"advocateName"`
	AdvocateMobile     string `json:"advocateMobile"`
	AdvocateEmail      string `json:"advocateEmail"`
	FPR                string `json:"fpr"`
	RLM                string `json:"rlm"`
	RLMEmail           string `json:"rlmEmail"`
	DocumentsAvailable string `json:"documentsAvailable"`
}

// ToCase maps the payload onto a domain entity, field by field.
func (p *CasePayload) ToCase() *domain.Case {
	return &domain.Case{
		CaseByOrAgainst:    p.CaseByOrAgainst,
		AllocationCode:     p.AllocationCode,
		LoanNo:             p.LoanNo,
		CustomerName:       p.CustomerName,
		ComplainantName:    p.ComplainantName,
		ClaimAmount:        p.ClaimAmount,
		ContingentAmount:   p.ContingentAmount,
		Provision:          p.Provision,
		RiskLevel:          p.RiskLevel,
		Status:             p.Status,
		Division:           p.Division,
		Product:            p.Product,
		Location:           p.Location,
		State:              p.State,
		Region:             p.Region,
		Nature:             p.Nature,
		CaseType:           p.CaseType,
		BriefDetails:       p.BriefDetails,
		CaseNo:             p.CaseNo,
		CNRNumber:          p.CNRNumber,
		CourtName:          p.CourtName,
		CourtPlace:         p.CourtPlace,
		FilingDate:         p.FilingDate,
		FilingYear:         p.FilingYear,
		LastDate:           p.LastDate,
		NextDate:           p.NextDate,
		PresentStatus:      p.PresentStatus,
		AdvocateName:       p.AdvocateName,
		AdvocateMobile:     p.AdvocateMobile,
		AdvocateEmail:      p.AdvocateEmail,
		FPR:                p.FPR,
		RLM:                p.RLM,
		RLMEmail:           p.RLMEmail,
		DocumentsAvailable: p.DocumentsAvailable,
	}
}

// CaseCreatedResponse answers a successful create with the generated id.
type CaseCreatedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// CaseListResponse answers list and search requests.
type CaseListResponse struct {
	Success bool           `json:"success"`
	Cases   []*domain.Case `json:"cases"`
}

// CaseResponse answers single-case lookups.
type CaseResponse struct {
	Success bool         `json:"success"`
	Case    *domain.Case `json:"case"`
}

// CaseMessageResponse answers updates and deletes.
type CaseMessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CaseErrorResponse is the case service's error envelope. Error carries the
// raw driver message on write failures and is omitted otherwise.
type CaseErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// HealthResponse answers the health check endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
