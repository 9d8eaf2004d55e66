package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/epeers/portfolio-wizard/internal/models"
	"github.com/epeers/portfolio-wizard/internal/wizard"
)

var ErrInvalidQuery = errors.New("invalid query")

// ListCandidates returns one page of the companies that pass the session's exclusions and filters
func (s *WizardService) ListCandidates(ctx context.Context, sessionID string, q models.CompaniesQuery) (*models.CompanyPage, error) {
	field := wizard.SortByMarketCap
	if q.Sort != "" {
		field = wizard.SortField(q.Sort)
		if _, ok := wizard.ValidSortFields[field]; !ok {
			return nil, fmt.Errorf("%w: unknown sort field %q", ErrInvalidQuery, q.Sort)
		}
	}
	dir := wizard.SortDesc
	switch q.Direction {
	case "":
	case string(wizard.SortAsc), string(wizard.SortDesc):
		dir = wizard.SortDirection(q.Direction)
	default:
		return nil, fmt.Errorf("%w: direction must be 'asc' or 'desc'", ErrInvalidQuery)
	}

	state, err := s.GetState(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	filtered := wizard.ApplyFilters(*state, s.catalog.Companies(), q.Search)
	page := wizard.Paginate(wizard.SortCompanies(filtered, field, dir), q.Page, q.PerPage)
	return &page, nil
}

// Allocations lists the selected companies with their allocations in selection order
func (s *WizardService) Allocations(ctx context.Context, sessionID string) (*models.AllocationsResponse, error) {
	state, err := s.GetState(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &models.AllocationsResponse{
		SessionID:        sessionID,
		InvestmentAmount: state.InvestmentAmount,
		Entries:          s.entries(*state),
		Totals:           wizard.ComputeTotals(*state),
	}, nil
}

func (s *WizardService) entries(state models.WizardState) []models.AllocationEntry {
	entries := make([]models.AllocationEntry, 0, len(state.SelectedCompanies))
	for _, id := range state.SelectedCompanies {
		c, ok := s.catalog.Company(id)
		if !ok {
			continue
		}
		a, ok := state.Allocations[id]
		if !ok {
			a = models.CompanyAllocation{CompanyID: id}
		}
		entries = append(entries, models.AllocationEntry{
			Company:    c,
			Allocation: a,
			Invested:   float64(a.Shares) * c.Price,
		})
	}
	return entries
}
