package wizard

import (
	"math"

	"github.com/epeers/portfolio-wizard/internal/models"
)

// AllocationTolerance is how far the allocated percentage may sit from 100 for the
// allocation step to count as complete.
const AllocationTolerance = 0.01

// ComputeTotals sums the current allocations. Nothing is cached.
func ComputeTotals(s models.WizardState) models.AllocationTotals {
	var pct, amount float64
	for _, a := range s.Allocations {
		pct += a.Percentage
		amount += a.Amount
	}
	return models.AllocationTotals{
		AllocatedPercentage: pct,
		AllocatedAmount:     amount,
		RemainingPercentage: 100 - pct,
		RemainingAmount:     s.InvestmentAmount - amount,
	}
}

// IsFullyAllocated reports whether the allocations sum to 100% within tolerance
func IsFullyAllocated(s models.WizardState, tolerance float64) bool {
	return math.Abs(ComputeTotals(s).AllocatedPercentage-100) < tolerance
}

// percentOf returns amount as a percentage of the investment, 0 when there is no investment
func percentOf(amount, investment float64) float64 {
	if investment <= 0 {
		return 0
	}
	return 100 * amount / investment
}

// sharesFor returns how many whole shares amount buys. Shares always round down.
func sharesFor(amount, price float64) int64 {
	if price <= 0 || amount <= 0 {
		return 0
	}
	return int64(math.Floor(amount / price))
}

// writable returns the current allocation for a selected, unlocked company
func (e *Engine) writable(s models.WizardState, companyID string) (models.CompanyAllocation, models.Company, *Rejection) {
	if !contains(s.SelectedCompanies, companyID) {
		return models.CompanyAllocation{}, models.Company{}, reject(models.WarnAllocationUnselected, "company %q is not selected", companyID)
	}
	c, ok := e.catalog.Company(companyID)
	if !ok {
		return models.CompanyAllocation{}, models.Company{}, reject(models.WarnUnknownCompany, "unknown company %q", companyID)
	}
	a, ok := s.Allocations[companyID]
	if !ok {
		a = models.CompanyAllocation{CompanyID: companyID}
	}
	if a.IsLocked {
		return a, c, reject(models.WarnAllocationLocked, "allocation for %q is locked", companyID)
	}
	return a, c, nil
}

// SetByPercentage writes a percentage and derives the amount and whole shares from it
func (e *Engine) SetByPercentage(s models.WizardState, companyID string, pct float64) (models.WizardState, *Rejection) {
	if !finite(pct) || pct < 0 || pct > 100 {
		return s, reject(models.WarnInvalidInput, "percentage %v outside 0..100", pct)
	}
	a, c, rej := e.writable(s, companyID)
	if rej != nil {
		return s, rej
	}

	a.Percentage = pct
	a.Amount = pct / 100 * s.InvestmentAmount
	a.Shares = sharesFor(a.Amount, c.Price)
	return e.commit(s, companyID, a)
}

// SetByShares writes a share count and derives the amount and percentage from it
func (e *Engine) SetByShares(s models.WizardState, companyID string, shares int64) (models.WizardState, *Rejection) {
	if shares < 0 {
		return s, reject(models.WarnInvalidInput, "negative share count %d", shares)
	}
	a, c, rej := e.writable(s, companyID)
	if rej != nil {
		return s, rej
	}

	a.Shares = shares
	a.Amount = float64(shares) * c.Price
	a.Percentage = percentOf(a.Amount, s.InvestmentAmount)
	return e.commit(s, companyID, a)
}

// commit stores a derived allocation unless it, or the totals it leads to, is not finite
func (e *Engine) commit(s models.WizardState, companyID string, a models.CompanyAllocation) (models.WizardState, *Rejection) {
	next := Clone(s)
	next.Allocations[companyID] = a

	t := ComputeTotals(next)
	for _, v := range []float64{a.Amount, a.Percentage, t.AllocatedPercentage, t.AllocatedAmount, t.RemainingAmount} {
		if !finite(v) {
			return s, reject(models.WarnInvalidInput, "allocation for %q is out of range for investment %v", companyID, s.InvestmentAmount)
		}
	}
	return e.settle(next), nil
}

// ToggleLock flips the lock flag of a selected company's allocation
func (e *Engine) ToggleLock(s models.WizardState, companyID string) (models.WizardState, *Rejection) {
	if !contains(s.SelectedCompanies, companyID) {
		return s, reject(models.WarnAllocationUnselected, "company %q is not selected", companyID)
	}

	next := Clone(s)
	a, ok := next.Allocations[companyID]
	if !ok {
		a = models.CompanyAllocation{CompanyID: companyID}
	}
	a.IsLocked = !a.IsLocked
	next.Allocations[companyID] = a
	return e.settle(next), nil
}

// DistributeEqually resets every selected company to an equal share, clearing all locks
func (e *Engine) DistributeEqually(s models.WizardState) (models.WizardState, *Rejection) {
	if len(s.SelectedCompanies) == 0 {
		return s, reject(models.WarnNothingToDistribute, "no companies selected")
	}
	return e.settle(e.distribute(Clone(s))), nil
}

// distribute rewrites the allocations of a state the caller already owns
func (e *Engine) distribute(s models.WizardState) models.WizardState {
	n := len(s.SelectedCompanies)
	if n == 0 {
		return s
	}
	pct := 100 / float64(n)
	amount := s.InvestmentAmount / float64(n)

	allocations := make(map[string]models.CompanyAllocation, n)
	for _, id := range s.SelectedCompanies {
		allocations[id] = models.CompanyAllocation{
			CompanyID:  id,
			Percentage: pct,
			Amount:     amount,
			Shares:     sharesFor(amount, e.price(id)),
		}
	}
	s.Allocations = allocations
	return s
}

// Rebalance splits whatever the locked allocations leave over equally across the
// unlocked companies. Locked entries are never touched.
func (e *Engine) Rebalance(s models.WizardState) (models.WizardState, *Rejection) {
	var unlocked []string
	var lockedPct, lockedAmount float64
	for _, id := range s.SelectedCompanies {
		a, ok := s.Allocations[id]
		if ok && a.IsLocked {
			lockedPct += a.Percentage
			lockedAmount += a.Amount
			continue
		}
		unlocked = append(unlocked, id)
	}

	if len(unlocked) == 0 {
		return s, reject(models.WarnNothingToRebalance, "every selected company is locked")
	}
	remainingPct := 100 - lockedPct
	remainingAmount := s.InvestmentAmount - lockedAmount
	if remainingPct <= 0 || remainingAmount <= 0 {
		return s, reject(models.WarnNothingToRebalance, "locked allocations leave nothing to distribute")
	}

	pct := remainingPct / float64(len(unlocked))
	amount := remainingAmount / float64(len(unlocked))

	next := Clone(s)
	for _, id := range unlocked {
		next.Allocations[id] = models.CompanyAllocation{
			CompanyID:  id,
			Percentage: pct,
			Amount:     amount,
			Shares:     sharesFor(amount, e.price(id)),
		}
	}
	return e.settle(next), nil
}

// rederive recomputes amount and shares of every allocation from its percentage,
// used when the investment amount changes.
func (e *Engine) rederive(s models.WizardState) models.WizardState {
	for id, a := range s.Allocations {
		a.Amount = a.Percentage / 100 * s.InvestmentAmount
		a.Shares = sharesFor(a.Amount, e.price(id))
		s.Allocations[id] = a
	}
	return s
}

func needsDistribution(s models.WizardState) bool {
	if len(s.SelectedCompanies) == 0 {
		return false
	}
	for _, id := range s.SelectedCompanies {
		if s.Allocations[id].Percentage > 0 {
			return false
		}
	}
	return true
}

func (e *Engine) price(companyID string) float64 {
	c, ok := e.catalog.Company(companyID)
	if !ok {
		return 0
	}
	return c.Price
}
