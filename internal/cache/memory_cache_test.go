package cache

import (
	"context"
	"testing"
	"time"

	"github.com/epeers/portfolio-wizard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() *models.Snapshot {
	return &models.Snapshot{
		Version: 0,
		State: models.WizardState{
			CurrentStep:       models.StepSelection,
			MaxStepVisited:    models.StepSelection,
			PortfolioName:     "test",
			InvestmentAmount:  5000,
			RiskAnswers:       map[string]int{"q1": 3},
			SelectedCompanies: []string{"1", "2"},
			Allocations: map[string]models.CompanyAllocation{
				"1": {CompanyID: "1", Percentage: 50, Shares: 10, Amount: 2500, IsLocked: true},
			},
		},
	}
}

func TestMemoryCache_SaveLoadDelete(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(0)

	got, err := c.Load(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	snap := sampleSnapshot()
	require.NoError(t, c.Save(ctx, "k", snap))
	assert.Equal(t, 1, c.Len())

	got, err = c.Load(ctx, "k")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, snap.State.PortfolioName, got.State.PortfolioName)
	assert.Equal(t, snap.State.Allocations, got.State.Allocations)
	assert.Equal(t, snap.State.SelectedCompanies, got.State.SelectedCompanies)

	require.NoError(t, c.Delete(ctx, "k"))
	got, err = c.Load(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryCache_StoresCopies(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(0)

	snap := sampleSnapshot()
	require.NoError(t, c.Save(ctx, "k", snap))
	snap.State.SelectedCompanies[0] = "mutated"

	got, err := c.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "1", got.State.SelectedCompanies[0])
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(10 * time.Millisecond)

	require.NoError(t, c.Save(ctx, "k", sampleSnapshot()))
	time.Sleep(20 * time.Millisecond)

	got, err := c.Load(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 0, c.Len())
}

func TestMemoryCache_Clear(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(0)
	require.NoError(t, c.Save(ctx, "a", sampleSnapshot()))
	require.NoError(t, c.Save(ctx, "b", sampleSnapshot()))

	c.Clear()
	assert.Equal(t, 0, c.Len())
}
