package wizard

import (
	"github.com/epeers/portfolio-wizard/internal/models"
)

// Restore normalizes a state loaded from storage so every invariant holds again.
// The second return value reports whether anything had to be repaired.
func (e *Engine) Restore(s models.WizardState) (models.WizardState, bool) {
	next := Clone(s)
	changed := false

	if next.Filters.Sectors == nil && next.Filters.Regions == nil &&
		next.Filters.MarketCapRange == (models.MarketCapRange{}) && next.Filters.MaxVolatility == 0 {
		next.Filters = DefaultFilters()
	}
	if r := next.Filters.MarketCapRange; !finite(r.Min()) || !finite(r.Max()) || r.Min() > r.Max() {
		next.Filters.MarketCapRange = DefaultFilters().MarketCapRange
		changed = true
	}

	if !finite(next.InvestmentAmount) || next.InvestmentAmount < 0 || next.InvestmentAmount > MaxInvestmentAmount {
		next.InvestmentAmount = DefaultInvestmentAmount
		changed = true
	}

	for q, score := range next.RiskAnswers {
		if _, ok := e.catalog.Question(q); !ok || score < MinRiskScore || score > MaxRiskScore {
			delete(next.RiskAnswers, q)
			changed = true
		}
	}
	if p := ProfileFromAnswers(next.RiskAnswers); p != next.RiskProfile {
		next.RiskProfile = p
		changed = true
	}

	selected := make([]string, 0, len(next.SelectedCompanies))
	for _, id := range next.SelectedCompanies {
		c, ok := e.catalog.Company(id)
		if !ok || contains(selected, id) || contains(next.ExcludedSectors, c.Sector) || len(selected) >= MaxSelectedCompanies {
			changed = true
			continue
		}
		selected = append(selected, id)
	}
	next.SelectedCompanies = selected

	for id, a := range next.Allocations {
		if !contains(selected, id) || !finite(a.Percentage) || !finite(a.Amount) {
			delete(next.Allocations, id)
			changed = true
			continue
		}
		if a.CompanyID != id {
			a.CompanyID = id
			next.Allocations[id] = a
			changed = true
		}
	}

	settled := e.settle(next)
	if settled.CurrentStep != next.CurrentStep || settled.MaxStepVisited != next.MaxStepVisited {
		changed = true
	}
	return settled, changed
}
