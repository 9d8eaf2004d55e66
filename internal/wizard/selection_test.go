package wizard

import (
	"fmt"
	"math"
	"testing"

	"github.com/epeers/portfolio-wizard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleSelection_CapacityIsTwenty(t *testing.T) {
	e := NewEngine(newFakeCatalog(manyCompanies(25)...))
	s := NewState()
	for i := 1; i <= MaxSelectedCompanies; i++ {
		s = selectAll(t, e, s, fmt.Sprintf("c%d", i))
	}
	require.Len(t, s.SelectedCompanies, MaxSelectedCompanies)

	next, rej := e.ToggleSelection(s, "c21")
	require.NotNil(t, rej)
	assert.Equal(t, models.WarnSelectionFull, rej.Code)
	assert.Equal(t, s, next)

	// deselecting still works at capacity
	next, rej = e.ToggleSelection(s, "c1")
	require.Nil(t, rej)
	assert.Len(t, next.SelectedCompanies, MaxSelectedCompanies-1)
	assert.NotContains(t, next.SelectedCompanies, "c1")
}

func TestToggleSelection_PreservesOrderAndDropsAllocation(t *testing.T) {
	e := NewEngine(newFakeCatalog(manyCompanies(5)...))
	s := selectAll(t, e, NewState(), "c3", "c1", "c2")
	assert.Equal(t, []string{"c3", "c1", "c2"}, s.SelectedCompanies)

	s, rej := e.SetByPercentage(s, "c1", 25)
	require.Nil(t, rej)
	require.Contains(t, s.Allocations, "c1")

	s, rej = e.ToggleSelection(s, "c1")
	require.Nil(t, rej)
	assert.Equal(t, []string{"c3", "c2"}, s.SelectedCompanies)
	assert.NotContains(t, s.Allocations, "c1")
}

func TestToggleSelection_RejectsUnknownAndExcluded(t *testing.T) {
	e := NewEngine(newFakeCatalog(manyCompanies(3)...))
	s := NewState()

	_, rej := e.ToggleSelection(s, "missing")
	require.NotNil(t, rej)
	assert.Equal(t, models.WarnUnknownCompany, rej.Code)

	// c3 is Technology
	s, _ = e.ToggleExclusion(s, "Technology")
	next, rej := e.ToggleSelection(s, "c3")
	require.NotNil(t, rej)
	assert.Equal(t, models.WarnSectorExcluded, rej.Code)
	assert.Empty(t, next.SelectedCompanies)
}

func TestToggleExclusion_EvictsSelectedCompanies(t *testing.T) {
	e := NewEngine(newFakeCatalog(manyCompanies(6)...))
	// c3 and c6 are Technology, c1 and c4 Energy
	s := selectAll(t, e, NewState(), "c1", "c3", "c4", "c6")
	s, _ = e.DistributeEqually(s)

	s, rej := e.ToggleExclusion(s, "Technology")
	require.Nil(t, rej)
	assert.Equal(t, []string{"Technology"}, s.ExcludedSectors)
	assert.Equal(t, []string{"c1", "c4"}, s.SelectedCompanies)
	assert.Len(t, s.Allocations, 2)
	assert.NotContains(t, s.Allocations, "c3")
	assert.NotContains(t, s.Allocations, "c6")

	// toggling back does not restore the evicted companies
	s, rej = e.ToggleExclusion(s, "Technology")
	require.Nil(t, rej)
	assert.Empty(t, s.ExcludedSectors)
	assert.Equal(t, []string{"c1", "c4"}, s.SelectedCompanies)
}

func TestSetFilters_MergesPartialPatch(t *testing.T) {
	e := NewEngine(newFakeCatalog())
	minDiv := 2.5
	s, rej := e.SetFilters(NewState(), models.FilterPatch{Sectors: []string{"Energy"}})
	require.Nil(t, rej)
	s, rej = e.SetFilters(s, models.FilterPatch{MinDividend: &minDiv})
	require.Nil(t, rej)

	assert.Equal(t, []string{"Energy"}, s.Filters.Sectors)
	assert.Equal(t, 2.5, s.Filters.MinDividend)
	assert.Equal(t, DefaultMaxVolatility, s.Filters.MaxVolatility)
	assert.Equal(t, models.MarketCapRange{0, DefaultMaxMarketCap}, s.Filters.MarketCapRange)
}

func TestSetFilters_RejectsInvalidCriteria(t *testing.T) {
	e := NewEngine(newFakeCatalog())
	neg := -1.0
	s := NewState()

	for name, patch := range map[string]models.FilterPatch{
		"inverted range":      {MarketCapRange: &models.MarketCapRange{10, 5}},
		"negative range":      {MarketCapRange: &models.MarketCapRange{-5, 5}},
		"negative dividend":   {MinDividend: &neg},
		"negative volatility": {MaxVolatility: &neg},
	} {
		t.Run(name, func(t *testing.T) {
			next, rej := e.SetFilters(s, patch)
			require.NotNil(t, rej)
			assert.Equal(t, models.WarnInvalidFilter, rej.Code)
			assert.Equal(t, s, next)
		})
	}
}

func filterFixture() []models.Company {
	return []models.Company{
		{ID: "a", Name: "Alpha Power", Ticker: "ALP", Sector: "Energy", Region: "Europe", MarketCap: 50e9, DividendYield: 4, Volatility: 20},
		{ID: "b", Name: "Beta Soft", Ticker: "BSF", Sector: "Technology", Region: "North America", MarketCap: 900e9, DividendYield: 0.5, Volatility: 35},
		{ID: "c", Name: "Gamma Health", Ticker: "GMH", Sector: "Healthcare", Region: "Europe", MarketCap: 120e9, DividendYield: 2, Volatility: 15},
		{ID: "d", Name: "Delta Chips", Ticker: "DCH", Sector: "Technology", Region: "Asia", MarketCap: 300e9, DividendYield: 1, Volatility: 45},
	}
}

func ids(companies []models.Company) []string {
	out := make([]string, 0, len(companies))
	for _, c := range companies {
		out = append(out, c.ID)
	}
	return out
}

func TestApplyFilters(t *testing.T) {
	companies := filterFixture()

	t.Run("defaults pass everything", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b", "c", "d"}, ids(ApplyFilters(NewState(), companies, "")))
	})

	t.Run("exclusion beats sector filter", func(t *testing.T) {
		s := NewState()
		s.ExcludedSectors = []string{"Technology"}
		s.Filters.Sectors = []string{"Technology", "Energy"}
		assert.Equal(t, []string{"a"}, ids(ApplyFilters(s, companies, "")))
	})

	t.Run("region filter", func(t *testing.T) {
		s := NewState()
		s.Filters.Regions = []string{"Europe"}
		assert.Equal(t, []string{"a", "c"}, ids(ApplyFilters(s, companies, "")))
	})

	t.Run("market cap bounds are inclusive", func(t *testing.T) {
		s := NewState()
		s.Filters.MarketCapRange = models.MarketCapRange{120e9, 300e9}
		assert.Equal(t, []string{"c", "d"}, ids(ApplyFilters(s, companies, "")))
	})

	t.Run("dividend and volatility", func(t *testing.T) {
		s := NewState()
		s.Filters.MinDividend = 1
		s.Filters.MaxVolatility = 20
		assert.Equal(t, []string{"a", "c"}, ids(ApplyFilters(s, companies, "")))
	})

	t.Run("search is case insensitive across fields", func(t *testing.T) {
		s := NewState()
		assert.Equal(t, []string{"b", "d"}, ids(ApplyFilters(s, companies, "TECHNOLOGY")))
		assert.Equal(t, []string{"c"}, ids(ApplyFilters(s, companies, "gmh")))
		assert.Equal(t, []string{"d"}, ids(ApplyFilters(s, companies, " asia ")))
		assert.Empty(t, ApplyFilters(s, companies, "zzz"))
	})
}

func TestSortCompanies(t *testing.T) {
	companies := filterFixture()

	assert.Equal(t, []string{"b", "d", "c", "a"}, ids(SortCompanies(companies, SortByMarketCap, SortDesc)))
	assert.Equal(t, []string{"a", "b", "d", "c"}, ids(SortCompanies(companies, SortByName, SortAsc)))
	assert.Equal(t, []string{"c", "a", "b", "d"}, ids(SortCompanies(companies, SortByVolatility, SortAsc)))
	// stable on ties: b and d share a sector
	assert.Equal(t, []string{"a", "c", "b", "d"}, ids(SortCompanies(companies, SortBySector, SortAsc)))
	// input untouched
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(companies))
}

func TestPaginate(t *testing.T) {
	companies := manyCompanies(23)

	p := Paginate(companies, 1, 10)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 23, p.Total)
	assert.Len(t, p.Companies, 10)
	assert.Equal(t, "c1", p.Companies[0].ID)

	p = Paginate(companies, 3, 10)
	assert.Len(t, p.Companies, 3)
	assert.Equal(t, "c21", p.Companies[0].ID)

	p = Paginate(companies, 99, 10)
	assert.Equal(t, 3, p.Page)

	p = Paginate(companies, 0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPerPage, p.PerPage)

	p = Paginate(nil, 2, 10)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 0, p.TotalPages)
	assert.Empty(t, p.Companies)
}

func TestPaginate_HugePageSize(t *testing.T) {
	companies := manyCompanies(25)

	p := Paginate(companies, 1, math.MaxInt)
	assert.Equal(t, 1, p.TotalPages)
	assert.Equal(t, 1, p.Page)
	assert.Len(t, p.Companies, 25)

	p = Paginate(companies, math.MaxInt, math.MaxInt)
	assert.Equal(t, 1, p.Page)
	assert.Len(t, p.Companies, 25)
}
