package models

// Step identifies a wizard screen. Welcome precedes the five real steps.
type Step int

const (
	StepWelcome        Step = -1
	StepBasics         Step = 0
	StepRiskAssessment Step = 1
	StepSelection      Step = 2
	StepAllocation     Step = 3
	StepSummary        Step = 4
)

// String returns the step name used in logs and metrics
func (s Step) String() string {
	switch s {
	case StepWelcome:
		return "welcome"
	case StepBasics:
		return "basics"
	case StepRiskAssessment:
		return "risk_assessment"
	case StepSelection:
		return "selection"
	case StepAllocation:
		return "allocation"
	case StepSummary:
		return "summary"
	default:
		return "unknown"
	}
}

// RiskProfile is the investor classification derived from questionnaire answers.
// The zero value means the profile is not determined yet.
type RiskProfile string

const (
	RiskProfileUndetermined RiskProfile = ""
	RiskProfileConservative RiskProfile = "conservative"
	RiskProfileModerate     RiskProfile = "moderate"
	RiskProfileBalanced     RiskProfile = "balanced"
	RiskProfileGrowth       RiskProfile = "growth"
	RiskProfileAggressive   RiskProfile = "aggressive"
)

// CompanyAllocation tracks one selected company's share of the investment
type CompanyAllocation struct {
	CompanyID  string  `json:"companyId"`
	Percentage float64 `json:"percentage"`
	Shares     int64   `json:"shares"`
	Amount     float64 `json:"amount"`
	IsLocked   bool    `json:"isLocked"`
}

// MarketCapRange is an inclusive [min, max] bound
type MarketCapRange [2]float64

// Min returns the lower bound
func (r MarketCapRange) Min() float64 { return r[0] }

// Max returns the upper bound
func (r MarketCapRange) Max() float64 { return r[1] }

// Filters are narrowing predicates over the company catalog
type Filters struct {
	Sectors        []string       `json:"sectors"`
	Regions        []string       `json:"regions"`
	MarketCapRange MarketCapRange `json:"marketCapRange"`
	MinDividend    float64        `json:"minDividend"`
	MaxVolatility  float64        `json:"maxVolatility"`
}

// FilterPatch carries a partial filter update; nil fields are left unchanged
type FilterPatch struct {
	Sectors        []string        `json:"sectors,omitempty"`
	Regions        []string        `json:"regions,omitempty"`
	MarketCapRange *MarketCapRange `json:"market_cap_range,omitempty"`
	MinDividend    *float64        `json:"min_dividend,omitempty"`
	MaxVolatility  *float64        `json:"max_volatility,omitempty"`
}

// WizardState is the whole snapshot of one portfolio-building session.
// JSON field names follow the persisted snapshot shape so stored sessions restore verbatim.
type WizardState struct {
	CurrentStep    Step `json:"currentStep"`
	MaxStepVisited Step `json:"maxStepVisited"`

	PortfolioName    string  `json:"portfolioName"`
	InvestmentAmount float64 `json:"investmentAmount"`

	RiskAnswers map[string]int `json:"riskAnswers"`
	RiskProfile RiskProfile    `json:"riskProfile"`

	ExcludedSectors []string `json:"excludedSectors"`
	Filters         Filters  `json:"filters"`

	SelectedCompanies []string                     `json:"selectedCompanies"`
	Allocations       map[string]CompanyAllocation `json:"allocations"`
}

// Snapshot is the persisted envelope around a wizard state
type Snapshot struct {
	State   WizardState `json:"state"`
	Version int         `json:"version"`
}
