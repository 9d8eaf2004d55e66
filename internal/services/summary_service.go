package services

import (
	"context"
	"sort"

	"github.com/epeers/portfolio-wizard/internal/models"
	"github.com/epeers/portfolio-wizard/internal/wizard"
	"github.com/shopspring/decimal"
)

// SummaryTolerance is how close to 100% the summary accepts as fully allocated
const SummaryTolerance = 0.1

// Summary reviews a session's portfolio: holdings, sector and region breakdown and totals
func (s *WizardService) Summary(ctx context.Context, sessionID string) (*models.SummaryResponse, error) {
	state, err := s.GetState(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	resp := BuildSummary(*state, s.entries(*state))
	resp.SessionID = sessionID
	return resp, nil
}

type bucket struct {
	percentage decimal.Decimal
	amount     decimal.Decimal
	companies  int
}

// BuildSummary aggregates holdings. Money is summed in decimal and rounded to cents.
func BuildSummary(state models.WizardState, holdings []models.AllocationEntry) *models.SummaryResponse {
	sectors := map[string]*bucket{}
	regions := map[string]*bucket{}
	invested := decimal.Zero

	add := func(m map[string]*bucket, name string, a models.CompanyAllocation) {
		b, ok := m[name]
		if !ok {
			b = &bucket{percentage: decimal.Zero, amount: decimal.Zero}
			m[name] = b
		}
		b.percentage = b.percentage.Add(decimal.NewFromFloat(a.Percentage))
		b.amount = b.amount.Add(decimal.NewFromFloat(a.Amount))
		b.companies++
	}

	for _, h := range holdings {
		add(sectors, h.Company.Sector, h.Allocation)
		add(regions, h.Company.Region, h.Allocation)
		invested = invested.Add(decimal.NewFromInt(h.Allocation.Shares).Mul(decimal.NewFromFloat(h.Company.Price)))
	}

	totals := wizard.ComputeTotals(state)
	allocated := decimal.NewFromFloat(totals.AllocatedAmount)

	return &models.SummaryResponse{
		PortfolioName:      state.PortfolioName,
		InvestmentAmount:   state.InvestmentAmount,
		RiskProfile:        state.RiskProfile,
		ProfileDescription: wizard.DescribeProfile(state.RiskProfile),
		FullyAllocated:     wizard.IsFullyAllocated(state, SummaryTolerance),
		Holdings:           holdings,
		BySector:           breakdown(sectors),
		ByRegion:           breakdown(regions),
		Totals:             totals,
		Invested:           invested.Round(2).InexactFloat64(),
		CashResidue:        allocated.Sub(invested).Round(2).InexactFloat64(),
	}
}

// breakdown orders buckets by percentage, largest first, then by name
func breakdown(m map[string]*bucket) []models.BreakdownItem {
	items := make([]models.BreakdownItem, 0, len(m))
	for name, b := range m {
		items = append(items, models.BreakdownItem{
			Name:       name,
			Percentage: b.percentage.Round(4).InexactFloat64(),
			Amount:     b.amount.Round(2).InexactFloat64(),
			Companies:  b.companies,
		})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Percentage != items[j].Percentage {
			return items[i].Percentage > items[j].Percentage
		}
		return items[i].Name < items[j].Name
	})
	return items
}
