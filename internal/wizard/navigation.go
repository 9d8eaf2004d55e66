package wizard

import (
	"strings"

	"github.com/epeers/portfolio-wizard/internal/models"
)

// CanAdvance reports whether the current step is complete enough to move forward
func CanAdvance(s models.WizardState) bool {
	switch s.CurrentStep {
	case models.StepBasics:
		return strings.TrimSpace(s.PortfolioName) != "" && s.InvestmentAmount > 0
	case models.StepRiskAssessment:
		return s.RiskProfile != models.RiskProfileUndetermined
	case models.StepSelection:
		return len(s.SelectedCompanies) > 0
	case models.StepAllocation:
		return IsFullyAllocated(s, AllocationTolerance)
	default:
		return true
	}
}

// Advance moves one step forward when the current step's gate is open
func (e *Engine) Advance(s models.WizardState) (models.WizardState, *Rejection) {
	if s.CurrentStep >= models.StepSummary {
		return s, reject(models.WarnAtLastStep, "already on the last step")
	}
	if !CanAdvance(s) {
		return s, reject(models.WarnStepGateClosed, "step %s is not complete", s.CurrentStep)
	}

	next := Clone(s)
	next.CurrentStep++
	if next.CurrentStep > next.MaxStepVisited {
		next.MaxStepVisited = next.CurrentStep
	}
	return e.settle(next), nil
}

// Retreat moves one step back. The welcome screen cannot be re-entered this way.
func (e *Engine) Retreat(s models.WizardState) (models.WizardState, *Rejection) {
	if s.CurrentStep <= models.StepBasics {
		return s, reject(models.WarnAtFirstStep, "already on the first step")
	}

	next := Clone(s)
	next.CurrentStep--
	return e.settle(next), nil
}

// GoTo jumps directly to a step. Requests beyond the step after the high-water mark are
// clamped to it; the returned Rejection then reports the adjustment while the state still moves.
func (e *Engine) GoTo(s models.WizardState, step models.Step) (models.WizardState, *Rejection) {
	target := clampRange(step)
	var rej *Rejection
	if limit := s.MaxStepVisited + 1; target > limit {
		rej = reject(models.WarnStepClamped, "step %d clamped to %d", step, limit)
		target = limit
	}

	next := Clone(s)
	next.CurrentStep = target
	if target > next.MaxStepVisited {
		next.MaxStepVisited = target
	}
	return e.settle(next), rej
}

// Reset discards everything and returns to the welcome screen
func (e *Engine) Reset(models.WizardState) models.WizardState {
	return NewState()
}

// SetBasics records the portfolio name and investment amount. Existing allocations keep
// their percentages and have amount and shares re-derived against the new investment.
func (e *Engine) SetBasics(s models.WizardState, name string, amount float64) (models.WizardState, *Rejection) {
	if !finite(amount) || amount < 0 || amount > MaxInvestmentAmount {
		return s, reject(models.WarnInvalidInput, "investment amount %v outside 0..%v", amount, MaxInvestmentAmount)
	}

	next := Clone(s)
	next.PortfolioName = name
	if next.InvestmentAmount != amount {
		next.InvestmentAmount = amount
		next = e.rederive(next)
	}
	return e.settle(next), nil
}

func clampRange(step models.Step) models.Step {
	if step < models.StepWelcome {
		return models.StepWelcome
	}
	if step > models.StepSummary {
		return models.StepSummary
	}
	return step
}

// clampStep keeps currentStep within one step of the high-water mark
func clampStep(s models.WizardState) models.WizardState {
	s.MaxStepVisited = clampRange(s.MaxStepVisited)
	s.CurrentStep = clampRange(s.CurrentStep)
	if limit := s.MaxStepVisited + 1; s.CurrentStep > limit {
		s.CurrentStep = limit
	}
	if s.CurrentStep > s.MaxStepVisited {
		s.MaxStepVisited = s.CurrentStep
	}
	return s
}
