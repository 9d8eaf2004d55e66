package wizard

import (
	"sort"
	"strings"

	"github.com/epeers/portfolio-wizard/internal/models"
)

// SortField names a company column the candidate list can be ordered by
type SortField string

const (
	SortByName       SortField = "name"
	SortBySector     SortField = "sector"
	SortByRegion     SortField = "region"
	SortByMarketCap  SortField = "marketCap"
	SortByPrice      SortField = "price"
	SortByDividend   SortField = "dividend"
	SortByVolatility SortField = "volatility"
)

// SortDirection orders a sorted list
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// DefaultPerPage is the page size of the candidate list
const DefaultPerPage = 10

// ValidSortFields lists the accepted sort fields
var ValidSortFields = map[SortField]struct{}{
	SortByName:       {},
	SortBySector:     {},
	SortByRegion:     {},
	SortByMarketCap:  {},
	SortByPrice:      {},
	SortByDividend:   {},
	SortByVolatility: {},
}

// SetFilters merges the supplied fields into the current criteria
func (e *Engine) SetFilters(s models.WizardState, patch models.FilterPatch) (models.WizardState, *Rejection) {
	if r := patch.MarketCapRange; r != nil {
		if !finite(r.Min()) || !finite(r.Max()) || r.Min() < 0 || r.Min() > r.Max() {
			return s, reject(models.WarnInvalidFilter, "invalid market cap range [%v, %v]", r.Min(), r.Max())
		}
	}
	if patch.MinDividend != nil && (!finite(*patch.MinDividend) || *patch.MinDividend < 0) {
		return s, reject(models.WarnInvalidFilter, "invalid minimum dividend %v", *patch.MinDividend)
	}
	if patch.MaxVolatility != nil && (!finite(*patch.MaxVolatility) || *patch.MaxVolatility < 0) {
		return s, reject(models.WarnInvalidFilter, "invalid maximum volatility %v", *patch.MaxVolatility)
	}

	next := Clone(s)
	if patch.Sectors != nil {
		next.Filters.Sectors = append([]string{}, patch.Sectors...)
	}
	if patch.Regions != nil {
		next.Filters.Regions = append([]string{}, patch.Regions...)
	}
	if patch.MarketCapRange != nil {
		next.Filters.MarketCapRange = *patch.MarketCapRange
	}
	if patch.MinDividend != nil {
		next.Filters.MinDividend = *patch.MinDividend
	}
	if patch.MaxVolatility != nil {
		next.Filters.MaxVolatility = *patch.MaxVolatility
	}
	return e.settle(next), nil
}

// ToggleExclusion adds or removes a sector from the excluded set.
// Adding a sector evicts every selected company of that sector along with its allocation.
func (e *Engine) ToggleExclusion(s models.WizardState, sector string) (models.WizardState, *Rejection) {
	next := Clone(s)
	if contains(next.ExcludedSectors, sector) {
		next.ExcludedSectors = without(next.ExcludedSectors, sector)
		return e.settle(next), nil
	}

	next.ExcludedSectors = append(next.ExcludedSectors, sector)
	kept := make([]string, 0, len(next.SelectedCompanies))
	for _, id := range next.SelectedCompanies {
		if c, ok := e.catalog.Company(id); ok && c.Sector == sector {
			delete(next.Allocations, id)
			continue
		}
		kept = append(kept, id)
	}
	next.SelectedCompanies = kept
	return e.settle(next), nil
}

// ToggleSelection deselects a selected company (dropping its allocation) or appends an
// unselected one while the selection has room.
func (e *Engine) ToggleSelection(s models.WizardState, companyID string) (models.WizardState, *Rejection) {
	if contains(s.SelectedCompanies, companyID) {
		next := Clone(s)
		next.SelectedCompanies = without(next.SelectedCompanies, companyID)
		delete(next.Allocations, companyID)
		return e.settle(next), nil
	}

	c, ok := e.catalog.Company(companyID)
	if !ok {
		return s, reject(models.WarnUnknownCompany, "unknown company %q", companyID)
	}
	if contains(s.ExcludedSectors, c.Sector) {
		return s, reject(models.WarnSectorExcluded, "sector %q is excluded", c.Sector)
	}
	if len(s.SelectedCompanies) >= MaxSelectedCompanies {
		return s, reject(models.WarnSelectionFull, "selection already holds %d companies", MaxSelectedCompanies)
	}

	next := Clone(s)
	next.SelectedCompanies = append(next.SelectedCompanies, companyID)
	return e.settle(next), nil
}

// ApplyFilters returns the companies that pass the exclusion veto, the filter criteria
// and the free-text search, in catalog order.
func ApplyFilters(s models.WizardState, companies []models.Company, search string) []models.Company {
	f := s.Filters
	query := strings.ToLower(strings.TrimSpace(search))

	out := make([]models.Company, 0, len(companies))
	for _, c := range companies {
		if contains(s.ExcludedSectors, c.Sector) {
			continue
		}
		if len(f.Sectors) > 0 && !contains(f.Sectors, c.Sector) {
			continue
		}
		if len(f.Regions) > 0 && !contains(f.Regions, c.Region) {
			continue
		}
		if c.MarketCap < f.MarketCapRange.Min() || c.MarketCap > f.MarketCapRange.Max() {
			continue
		}
		if c.DividendYield < f.MinDividend {
			continue
		}
		if c.Volatility > f.MaxVolatility {
			continue
		}
		if query != "" && !matchesSearch(c, query) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matchesSearch(c models.Company, query string) bool {
	for _, field := range []string{c.Name, c.Ticker, c.Sector, c.Region} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// SortCompanies returns a sorted copy of the list. Unknown fields keep the input order.
func SortCompanies(companies []models.Company, field SortField, dir SortDirection) []models.Company {
	out := append([]models.Company{}, companies...)
	compare := func(a, b models.Company) int {
		switch field {
		case SortByName:
			return strings.Compare(a.Name, b.Name)
		case SortBySector:
			return strings.Compare(a.Sector, b.Sector)
		case SortByRegion:
			return strings.Compare(a.Region, b.Region)
		case SortByMarketCap:
			return cmpFloat(a.MarketCap, b.MarketCap)
		case SortByPrice:
			return cmpFloat(a.Price, b.Price)
		case SortByDividend:
			return cmpFloat(a.DividendYield, b.DividendYield)
		case SortByVolatility:
			return cmpFloat(a.Volatility, b.Volatility)
		}
		return 0
	}
	sort.SliceStable(out, func(i, j int) bool {
		c := compare(out[i], out[j])
		if dir == SortDesc {
			return c > 0
		}
		return c < 0
	})
	return out
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Paginate clamps page into [1, totalPages] and returns that slice of the list
func Paginate(companies []models.Company, page, perPage int) models.CompanyPage {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	totalPages := len(companies) / perPage
	if len(companies)%perPage != 0 {
		totalPages++
	}
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > len(companies) {
		start = len(companies)
	}
	if end > len(companies) {
		end = len(companies)
	}

	return models.CompanyPage{
		Companies:  append([]models.Company{}, companies[start:end]...),
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
		Total:      len(companies),
	}
}
