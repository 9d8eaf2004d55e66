package models

// CreateSessionRequest is the optional body of POST /sessions
type CreateSessionRequest struct {
	PortfolioName    string   `json:"portfolio_name"`
	InvestmentAmount *float64 `json:"investment_amount"`
}

// BasicsRequest represents the request body for setting portfolio basics
type BasicsRequest struct {
	PortfolioName    string   `json:"portfolio_name"`
	InvestmentAmount *float64 `json:"investment_amount" binding:"required"`
}

// GoToRequest represents the request body for a direct step jump
type GoToRequest struct {
	Step *int `json:"step" binding:"required"`
}

// AnswerRequest represents the request body for answering a risk question
type AnswerRequest struct {
	Score *int `json:"score" binding:"required"`
}

// PercentageRequest represents the request body for a percentage allocation write
type PercentageRequest struct {
	Percentage *float64 `json:"percentage" binding:"required"`
}

// SharesRequest represents the request body for a share count allocation write
type SharesRequest struct {
	Shares *int64 `json:"shares" binding:"required"`
}

// CompaniesQuery represents the query parameters of the candidate company list
type CompaniesQuery struct {
	Search    string `form:"search"`
	Sort      string `form:"sort"`
	Direction string `form:"direction"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}

// CompanyPage is one page of the filtered, sorted candidate list
type CompanyPage struct {
	Companies  []Company `json:"companies"`
	Page       int       `json:"page"`
	PerPage    int       `json:"per_page"`
	TotalPages int       `json:"total_pages"`
	Total      int       `json:"total"`
}

// AllocationTotals are aggregate figures over all allocations
type AllocationTotals struct {
	AllocatedPercentage float64 `json:"allocated_percentage"`
	AllocatedAmount     float64 `json:"allocated_amount"`
	RemainingPercentage float64 `json:"remaining_percentage"`
	RemainingAmount     float64 `json:"remaining_amount"`
}

// StateResponse is returned by every session endpoint
type StateResponse struct {
	SessionID  string           `json:"session_id"`
	State      WizardState      `json:"state"`
	CanAdvance bool             `json:"can_advance"`
	Totals     AllocationTotals `json:"totals"`
	Warnings   []Warning        `json:"warnings,omitempty"`
}

// AllocationEntry is one selected company with its allocation
type AllocationEntry struct {
	Company    Company           `json:"company"`
	Allocation CompanyAllocation `json:"allocation"`
	// Invested is shares times price, which can fall short of Allocation.Amount
	Invested float64 `json:"invested"`
}

// AllocationsResponse lists allocations in selection order with their totals
type AllocationsResponse struct {
	SessionID        string            `json:"session_id"`
	InvestmentAmount float64           `json:"investment_amount"`
	Entries          []AllocationEntry `json:"entries"`
	Totals           AllocationTotals  `json:"totals"`
}

// BreakdownItem aggregates allocations sharing a sector or region
type BreakdownItem struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
	Amount     float64 `json:"amount"`
	Companies  int     `json:"companies"`
}

// SummaryResponse is the review of a finished (or in-progress) portfolio
type SummaryResponse struct {
	SessionID          string            `json:"session_id"`
	PortfolioName      string            `json:"portfolio_name"`
	InvestmentAmount   float64           `json:"investment_amount"`
	RiskProfile        RiskProfile       `json:"risk_profile"`
	ProfileDescription string            `json:"profile_description,omitempty"`
	FullyAllocated     bool              `json:"fully_allocated"`
	Holdings           []AllocationEntry `json:"holdings"`
	BySector           []BreakdownItem   `json:"by_sector"`
	ByRegion           []BreakdownItem   `json:"by_region"`
	Totals             AllocationTotals  `json:"totals"`
	// Invested sums shares times price; CashResidue is what floor rounding left uninvested
	Invested    float64 `json:"invested"`
	CashResidue float64 `json:"cash_residue"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// MessageResponse acknowledges an operation that returns no state
type MessageResponse struct {
	Message string `json:"message"`
}
