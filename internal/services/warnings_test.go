package services

import (
	"context"
	"sync"
	"testing"

	"github.com/epeers/portfolio-wizard/internal/models"
)

func TestWarningCollector_BasicUsage(t *testing.T) {
	ctx, wc := NewWarningContext(context.Background())

	AddWarning(ctx, models.Warning{
		Code:    models.WarnSelectionFull,
		Message: "test warning 1",
	})
	AddWarning(ctx, models.Warning{
		Code:    models.WarnAllocationLocked,
		Message: "test warning 2",
	})

	warnings := wc.GetWarnings()
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %d", len(warnings))
	}

	if warnings[0].Code != models.WarnSelectionFull {
		t.Errorf("expected code %s, got %s", models.WarnSelectionFull, warnings[0].Code)
	}
	if warnings[1].Code != models.WarnAllocationLocked {
		t.Errorf("expected code %s, got %s", models.WarnAllocationLocked, warnings[1].Code)
	}
	if !wc.HasCode(models.WarnAllocationLocked) {
		t.Error("expected HasCode to find W1001")
	}
	if wc.HasCode(models.WarnStepClamped) {
		t.Error("expected HasCode to miss W3002")
	}
}

func TestWarningCollector_NoCollectorNoPanic(t *testing.T) {
	ctx := context.Background()
	AddWarning(ctx, models.Warning{
		Code:    models.WarnSelectionFull,
		Message: "this should be silently dropped",
	})
}

func TestWarningCollector_EmptyByDefault(t *testing.T) {
	_, wc := NewWarningContext(context.Background())
	warnings := wc.GetWarnings()
	if warnings != nil {
		t.Errorf("expected nil warnings, got %v", warnings)
	}
}

func TestWarningCollector_ConcurrentSafe(t *testing.T) {
	ctx, wc := NewWarningContext(context.Background())

	var wg sync.WaitGroup
	n := 100
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			AddWarning(ctx, models.Warning{
				Code:    models.WarnStepGateClosed,
				Message: "concurrent warning",
			})
		}()
	}
	wg.Wait()

	warnings := wc.GetWarnings()
	if len(warnings) != n {
		t.Errorf("expected %d warnings, got %d", n, len(warnings))
	}
}

func TestWarningCollector_ReturnsCopy(t *testing.T) {
	ctx, wc := NewWarningContext(context.Background())
	AddWarning(ctx, models.Warning{Code: models.WarnAtLastStep, Message: "first"})

	warnings := wc.GetWarnings()
	warnings[0].Message = "changed"

	if got := wc.GetWarnings()[0].Message; got != "first" {
		t.Errorf("expected collector to keep 'first', got %q", got)
	}
}
