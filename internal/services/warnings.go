package services

import (
	"context"
	"sync"

	"github.com/epeers/portfolio-wizard/internal/models"
)

type warningContextKey struct{}

// WarningCollector accumulates the non-fatal rejections of one request.
type WarningCollector struct {
	mu       sync.Mutex
	warnings []models.Warning
}

// NewWarningContext returns a context carrying a fresh WarningCollector,
// plus a reference to the collector so the handler can attach warnings to its response.
func NewWarningContext(ctx context.Context) (context.Context, *WarningCollector) {
	wc := &WarningCollector{}
	return context.WithValue(ctx, warningContextKey{}, wc), wc
}

// AddWarning appends a warning to the collector in ctx.
// If ctx has no collector, the call is a no-op.
func AddWarning(ctx context.Context, w models.Warning) {
	wc, ok := ctx.Value(warningContextKey{}).(*WarningCollector)
	if !ok || wc == nil {
		return
	}
	wc.mu.Lock()
	defer wc.mu.Unlock()
	wc.warnings = append(wc.warnings, w)
}

// GetWarnings returns a copy of the collected warnings.
func (wc *WarningCollector) GetWarnings() []models.Warning {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	if len(wc.warnings) == 0 {
		return nil
	}
	return append([]models.Warning{}, wc.warnings...)
}

// HasCode reports whether a warning with the given code was collected.
func (wc *WarningCollector) HasCode(code models.WarningCode) bool {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	for _, w := range wc.warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}
