package wizard

import (
	"math"
	"testing"

	"github.com/epeers/portfolio-wizard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestore_ValidStateUnchanged(t *testing.T) {
	e := NewEngine(pricedCatalog())
	s := selectAll(t, e, NewState(), "A", "B")
	s, _ = e.DistributeEqually(s)
	s = answerAll(t, e, s, 2, 2, 2, 2, 2)

	restored, changed := e.Restore(s)
	assert.False(t, changed)
	assert.Equal(t, s, restored)
}

func TestRestore_RepairsBrokenSnapshot(t *testing.T) {
	e := NewEngine(pricedCatalog())
	s := models.WizardState{
		CurrentStep:       models.StepSummary,
		MaxStepVisited:    models.StepBasics,
		InvestmentAmount:  math.NaN(),
		RiskAnswers:       map[string]int{"q1": 9, "bogus": 3, "q2": 4},
		RiskProfile:       models.RiskProfileAggressive,
		ExcludedSectors:   []string{"Energy"},
		SelectedCompanies: []string{"A", "A", "B", "ghost"},
		Allocations: map[string]models.CompanyAllocation{
			"A":     {CompanyID: "wrong", Percentage: 100},
			"ghost": {CompanyID: "ghost", Percentage: 10},
		},
	}

	restored, changed := e.Restore(s)
	require.True(t, changed)

	assert.Equal(t, DefaultInvestmentAmount, restored.InvestmentAmount)
	assert.Equal(t, DefaultFilters(), restored.Filters)
	assert.Equal(t, map[string]int{"q2": 4}, restored.RiskAnswers)
	assert.Equal(t, models.RiskProfileUndetermined, restored.RiskProfile)
	// B is Energy, which is excluded
	assert.Equal(t, []string{"A"}, restored.SelectedCompanies)
	assert.Len(t, restored.Allocations, 1)
	assert.Equal(t, "A", restored.Allocations["A"].CompanyID)
	assert.Equal(t, models.StepRiskAssessment, restored.CurrentStep)
	assert.Equal(t, models.StepRiskAssessment, restored.MaxStepVisited)
}

func TestRestore_InvertedMarketCapRange(t *testing.T) {
	e := NewEngine(pricedCatalog())
	s := NewState()
	s.Filters.MarketCapRange = models.MarketCapRange{5, 1}

	restored, changed := e.Restore(s)
	assert.True(t, changed)
	assert.Equal(t, DefaultFilters().MarketCapRange, restored.Filters.MarketCapRange)
}

func TestRestore_DropsNonFiniteValues(t *testing.T) {
	e := NewEngine(pricedCatalog())
	s := selectAll(t, e, NewState(), "A", "B")
	s, _ = e.DistributeEqually(s)
	s.InvestmentAmount = 1.7e308
	a := s.Allocations["B"]
	a.Percentage = math.Inf(1)
	s.Allocations["B"] = a

	restored, changed := e.Restore(s)
	require.True(t, changed)
	assert.Equal(t, DefaultInvestmentAmount, restored.InvestmentAmount)
	assert.Contains(t, restored.Allocations, "A")
	assert.NotContains(t, restored.Allocations, "B")
	assert.Equal(t, []string{"A", "B"}, restored.SelectedCompanies)
}
