package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/epeers/portfolio-wizard/internal/database"
	"github.com/epeers/portfolio-wizard/internal/models"
)

func openTestDB(t *testing.T) *database.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	pgURL := os.Getenv("PG_URL")
	if pgURL == "" {
		t.Skip("PG_URL not set, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := database.New(ctx, pgURL)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	t.Cleanup(db.Close)
	return db
}

func TestSnapshotRepository_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewSnapshotRepository(db.Pool)
	ctx := context.Background()
	key := "portfolio-wizard-storage:repo-test"
	defer repo.Delete(ctx, key)

	snap, err := repo.Load(ctx, key)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if snap != nil {
		t.Fatalf("expected no snapshot before save, got %+v", snap)
	}

	want := &models.Snapshot{State: models.WizardState{
		CurrentStep:       models.StepAllocation,
		MaxStepVisited:    models.StepAllocation,
		PortfolioName:     "integration",
		InvestmentAmount:  2500,
		RiskAnswers:       map[string]int{"timeHorizon": 4},
		SelectedCompanies: []string{"1"},
		Allocations: map[string]models.CompanyAllocation{
			"1": {CompanyID: "1", Percentage: 100, Shares: 13, Amount: 2500},
		},
	}}
	if err := repo.Save(ctx, key, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// second save exercises the upsert path
	want.State.PortfolioName = "integration v2"
	if err := repo.Save(ctx, key, want); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	got, err := repo.Load(ctx, key)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected snapshot after save, got nil")
	}
	if got.State.PortfolioName != "integration v2" {
		t.Errorf("expected name 'integration v2', got %q", got.State.PortfolioName)
	}
	if got.State.Allocations["1"].Shares != 13 {
		t.Errorf("expected 13 shares, got %d", got.State.Allocations["1"].Shares)
	}

	if err := repo.Delete(ctx, key); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	got, err = repo.Load(ctx, key)
	if err != nil {
		t.Fatalf("Load after delete failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil after delete, got %+v", got)
	}
}
