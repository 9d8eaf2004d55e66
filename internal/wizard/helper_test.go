package wizard

import (
	"fmt"
	"testing"

	"github.com/epeers/portfolio-wizard/internal/models"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	companies []models.Company
	byID      map[string]models.Company
	questions map[string]models.RiskQuestion
}

func newFakeCatalog(companies ...models.Company) *fakeCatalog {
	c := &fakeCatalog{
		companies: companies,
		byID:      map[string]models.Company{},
		questions: map[string]models.RiskQuestion{},
	}
	for _, co := range companies {
		c.byID[co.ID] = co
	}
	for i := 1; i <= 5; i++ {
		id := fmt.Sprintf("q%d", i)
		c.questions[id] = models.RiskQuestion{ID: id}
	}
	return c
}

func (c *fakeCatalog) Company(id string) (models.Company, bool) {
	co, ok := c.byID[id]
	return co, ok
}

func (c *fakeCatalog) Question(id string) (models.RiskQuestion, bool) {
	q, ok := c.questions[id]
	return q, ok
}

// manyCompanies builds n companies priced 10, 20, 30... across three sectors
func manyCompanies(n int) []models.Company {
	sectors := []string{"Technology", "Energy", "Healthcare"}
	out := make([]models.Company, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, models.Company{
			ID:        fmt.Sprintf("c%d", i),
			Name:      fmt.Sprintf("Company %d", i),
			Ticker:    fmt.Sprintf("CO%d", i),
			Sector:    sectors[i%len(sectors)],
			Region:    "Europe",
			MarketCap: float64(i) * 1e9,
			Price:     float64(i) * 10,
		})
	}
	return out
}

// selectAll toggles each id on and fails the test on any rejection
func selectAll(t *testing.T, e *Engine, s models.WizardState, ids ...string) models.WizardState {
	t.Helper()
	for _, id := range ids {
		var rej *Rejection
		s, rej = e.ToggleSelection(s, id)
		require.Nil(t, rej, "selecting %s", id)
	}
	return s
}

func answerAll(t *testing.T, e *Engine, s models.WizardState, scores ...int) models.WizardState {
	t.Helper()
	for i, score := range scores {
		var rej *Rejection
		s, rej = e.RecordAnswer(s, fmt.Sprintf("q%d", i+1), score)
		require.Nil(t, rej)
	}
	return s
}
