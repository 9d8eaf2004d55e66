// Package wizard holds the portfolio-building state machine.
//
// Every operation takes a WizardState by value and returns the next state plus an
// optional Rejection. A rejected operation returns a state equal to its input, except GoTo,
// which still moves to the clamped step. Callers re-read the returned state to learn what
// took effect. Inputs are never mutated.
package wizard

import (
	"fmt"
	"math"

	"github.com/epeers/portfolio-wizard/internal/models"
)

const (
	// MaxSelectedCompanies bounds the selection set
	MaxSelectedCompanies = 20
	// DefaultInvestmentAmount is the investment a new session starts with
	DefaultInvestmentAmount = 10000.0
	// MaxInvestmentAmount bounds the investment so derived amounts and totals stay finite
	MaxInvestmentAmount = 1e12
	// DefaultMaxMarketCap is the upper market cap bound of a fresh filter
	DefaultMaxMarketCap = 1e13
	// DefaultMaxVolatility is the volatility ceiling of a fresh filter
	DefaultMaxVolatility = 100.0
)

// Catalog is the read-only reference data the engine consults
type Catalog interface {
	Company(id string) (models.Company, bool)
	Question(id string) (models.RiskQuestion, bool)
}

// Rejection explains why an operation left the state unchanged
type Rejection struct {
	Code    models.WarningCode
	Message string
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("%s: %s", r.Code, r.Message)
}

// Warning converts the rejection into an API warning
func (r *Rejection) Warning() models.Warning {
	return models.Warning{Code: r.Code, Message: r.Message}
}

func reject(code models.WarningCode, format string, args ...any) *Rejection {
	return &Rejection{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Engine applies wizard transitions against a catalog
type Engine struct {
	catalog Catalog
}

// NewEngine creates a new Engine
func NewEngine(catalog Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// NewState returns the state of a session that has not started yet
func NewState() models.WizardState {
	return models.WizardState{
		CurrentStep:       models.StepWelcome,
		MaxStepVisited:    models.StepWelcome,
		InvestmentAmount:  DefaultInvestmentAmount,
		RiskAnswers:       map[string]int{},
		ExcludedSectors:   []string{},
		Filters:           DefaultFilters(),
		SelectedCompanies: []string{},
		Allocations:       map[string]models.CompanyAllocation{},
	}
}

// DefaultFilters returns criteria that let every catalog company through
func DefaultFilters() models.Filters {
	return models.Filters{
		Sectors:        []string{},
		Regions:        []string{},
		MarketCapRange: models.MarketCapRange{0, DefaultMaxMarketCap},
		MinDividend:    0,
		MaxVolatility:  DefaultMaxVolatility,
	}
}

// Clone deep-copies a state so the copy can be modified freely
func Clone(s models.WizardState) models.WizardState {
	out := s

	out.RiskAnswers = make(map[string]int, len(s.RiskAnswers))
	for k, v := range s.RiskAnswers {
		out.RiskAnswers[k] = v
	}

	out.Allocations = make(map[string]models.CompanyAllocation, len(s.Allocations))
	for k, v := range s.Allocations {
		out.Allocations[k] = v
	}

	out.ExcludedSectors = append([]string{}, s.ExcludedSectors...)
	out.SelectedCompanies = append([]string{}, s.SelectedCompanies...)
	out.Filters.Sectors = append([]string{}, s.Filters.Sectors...)
	out.Filters.Regions = append([]string{}, s.Filters.Regions...)

	return out
}

// settle re-establishes the invariants that must hold after any transition:
// the step clamp and the automatic equal distribution on the allocation step.
func (e *Engine) settle(s models.WizardState) models.WizardState {
	s = clampStep(s)
	if s.CurrentStep == models.StepAllocation && needsDistribution(s) {
		s = e.distribute(s)
	}
	return s
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func without(list []string, v string) []string {
	out := make([]string, 0, len(list))
	for _, item := range list {
		if item != v {
			out = append(out, item)
		}
	}
	return out
}
