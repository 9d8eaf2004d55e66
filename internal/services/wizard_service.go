package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/epeers/portfolio-wizard/internal/catalog"
	"github.com/epeers/portfolio-wizard/internal/metrics"
	"github.com/epeers/portfolio-wizard/internal/models"
	"github.com/epeers/portfolio-wizard/internal/wizard"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// StorageName prefixes every persisted snapshot key
const StorageName = "portfolio-wizard-storage"

const snapshotVersion = 0

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrInvalidSessionID = errors.New("invalid session id")
)

// SnapshotStore persists whole wizard snapshots. Load returns nil, nil for a missing key.
type SnapshotStore interface {
	Load(ctx context.Context, key string) (*models.Snapshot, error)
	Save(ctx context.Context, key string, snap *models.Snapshot) error
	Delete(ctx context.Context, key string) error
}

// WizardService runs wizard transitions for sessions backed by a snapshot store.
// Each operation holds the session's lock across load, transition and save.
type WizardService struct {
	store   SnapshotStore
	catalog *catalog.Catalog
	engine  *wizard.Engine

	mu    sync.Mutex
	locks map[string]*sessionLock
}

// sessionLock is dropped from the lock table once nobody holds or waits on it
type sessionLock struct {
	mu   sync.Mutex
	refs int
}

// NewWizardService creates a new WizardService
func NewWizardService(store SnapshotStore, cat *catalog.Catalog) *WizardService {
	return &WizardService{
		store:   store,
		catalog: cat,
		engine:  wizard.NewEngine(cat),
		locks:   make(map[string]*sessionLock),
	}
}

// Catalog returns the catalog sessions are validated against
func (s *WizardService) Catalog() *catalog.Catalog {
	return s.catalog
}

func storageKey(sessionID string) string {
	return StorageName + ":" + sessionID
}

// ParseSessionID validates a session id
func ParseSessionID(raw string) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidSessionID, raw)
	}
	return id.String(), nil
}

func (s *WizardService) lock(sessionID string) func() {
	s.mu.Lock()
	l, ok := s.locks[sessionID]
	if !ok {
		l = &sessionLock{}
		s.locks[sessionID] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, sessionID)
		}
		s.mu.Unlock()
	}
}

// load fetches and normalizes a stored state. The caller holds the session lock.
func (s *WizardService) load(ctx context.Context, sessionID string) (models.WizardState, error) {
	snap, err := s.store.Load(ctx, storageKey(sessionID))
	if err != nil {
		return models.WizardState{}, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}
	if snap == nil {
		return models.WizardState{}, ErrSessionNotFound
	}

	state, repaired := s.engine.Restore(snap.State)
	if repaired {
		log.Warnf("Session %s: stored snapshot needed normalization", sessionID)
		AddWarning(ctx, models.Warning{
			Code:    models.WarnStateRestored,
			Message: "stored session was repaired on load",
		})
	}
	return state, nil
}

func (s *WizardService) save(ctx context.Context, sessionID string, state models.WizardState) error {
	snap := &models.Snapshot{State: state, Version: snapshotVersion}
	if err := s.store.Save(ctx, storageKey(sessionID), snap); err != nil {
		log.Errorf("Failed to save session %s: %v", sessionID, err)
		return fmt.Errorf("failed to save session %s: %w", sessionID, err)
	}
	return nil
}

type transition func(models.WizardState) (models.WizardState, *wizard.Rejection)

// apply runs one transition as an atomic read-modify-write of the session snapshot.
// Rejections become warnings on ctx; the state is saved either way.
func (s *WizardService) apply(ctx context.Context, op, sessionID string, fn transition) (state *models.WizardState, err error) {
	start := time.Now()
	defer TrackTime(op, start)

	var code string
	defer func() {
		metrics.RecordOperation(op, time.Since(start), code, err)
	}()

	unlock := s.lock(sessionID)
	defer unlock()

	current, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	next, rej := fn(current)
	if rej != nil {
		code = string(rej.Code)
		log.Debugf("Session %s: %s rejected: %s", sessionID, op, rej.Error())
		AddWarning(ctx, rej.Warning())
	}
	if next.CurrentStep > current.CurrentStep {
		metrics.StepsReached.WithLabelValues(next.CurrentStep.String()).Inc()
	}

	if err := s.save(ctx, sessionID, next); err != nil {
		return nil, err
	}
	return &next, nil
}

// CreateSession starts a new session on the welcome screen, optionally with basics filled in
func (s *WizardService) CreateSession(ctx context.Context, req *models.CreateSessionRequest) (string, *models.WizardState, error) {
	sessionID := uuid.NewString()
	state := wizard.NewState()

	if req != nil && (req.PortfolioName != "" || req.InvestmentAmount != nil) {
		amount := state.InvestmentAmount
		if req.InvestmentAmount != nil {
			amount = *req.InvestmentAmount
		}
		next, rej := s.engine.SetBasics(state, req.PortfolioName, amount)
		if rej != nil {
			AddWarning(ctx, rej.Warning())
		}
		state = next
	}

	if err := s.save(ctx, sessionID, state); err != nil {
		return "", nil, err
	}
	metrics.SessionsCreated.Inc()
	log.Infof("Created wizard session %s", sessionID)
	return sessionID, &state, nil
}

// GetState returns the current state of a session
func (s *WizardService) GetState(ctx context.Context, sessionID string) (*models.WizardState, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// DeleteSession discards a session
func (s *WizardService) DeleteSession(ctx context.Context, sessionID string) error {
	unlock := s.lock(sessionID)
	snap, err := s.store.Load(ctx, storageKey(sessionID))
	if err == nil && snap == nil {
		err = ErrSessionNotFound
	}
	if err == nil {
		err = s.store.Delete(ctx, storageKey(sessionID))
	}
	unlock()
	if err != nil {
		return err
	}

	log.Infof("Deleted wizard session %s", sessionID)
	return nil
}

// Reset returns a session to the welcome screen and clears everything it collected
func (s *WizardService) Reset(ctx context.Context, sessionID string) (*models.WizardState, error) {
	return s.apply(ctx, "reset", sessionID, func(st models.WizardState) (models.WizardState, *wizard.Rejection) {
		return s.engine.Reset(st), nil
	})
}

// Advance moves the session forward one step if the current step is complete
func (s *WizardService) Advance(ctx context.Context, sessionID string) (*models.WizardState, error) {
	return s.apply(ctx, "advance", sessionID, s.engine.Advance)
}

// Retreat moves the session back one step
func (s *WizardService) Retreat(ctx context.Context, sessionID string) (*models.WizardState, error) {
	return s.apply(ctx, "retreat", sessionID, s.engine.Retreat)
}

// GoTo jumps to a step, clamped to one past the furthest step visited
func (s *WizardService) GoTo(ctx context.Context, sessionID string, step int) (*models.WizardState, error) {
	return s.apply(ctx, "goto", sessionID, func(st models.WizardState) (models.WizardState, *wizard.Rejection) {
		return s.engine.GoTo(st, models.Step(step))
	})
}

// SetBasics records the portfolio name and investment amount
func (s *WizardService) SetBasics(ctx context.Context, sessionID, name string, amount float64) (*models.WizardState, error) {
	return s.apply(ctx, "set_basics", sessionID, func(st models.WizardState) (models.WizardState, *wizard.Rejection) {
		return s.engine.SetBasics(st, name, amount)
	})
}

// RecordAnswer stores a risk questionnaire answer
func (s *WizardService) RecordAnswer(ctx context.Context, sessionID, questionID string, score int) (*models.WizardState, error) {
	return s.apply(ctx, "record_answer", sessionID, func(st models.WizardState) (models.WizardState, *wizard.Rejection) {
		return s.engine.RecordAnswer(st, questionID, score)
	})
}

// SetFilters merges a partial filter update
func (s *WizardService) SetFilters(ctx context.Context, sessionID string, patch models.FilterPatch) (*models.WizardState, error) {
	return s.apply(ctx, "set_filters", sessionID, func(st models.WizardState) (models.WizardState, *wizard.Rejection) {
		return s.engine.SetFilters(st, patch)
	})
}

// ToggleExclusion excludes or re-admits a sector
func (s *WizardService) ToggleExclusion(ctx context.Context, sessionID, sector string) (*models.WizardState, error) {
	return s.apply(ctx, "toggle_exclusion", sessionID, func(st models.WizardState) (models.WizardState, *wizard.Rejection) {
		return s.engine.ToggleExclusion(st, sector)
	})
}

// ToggleSelection selects or deselects a company
func (s *WizardService) ToggleSelection(ctx context.Context, sessionID, companyID string) (*models.WizardState, error) {
	return s.apply(ctx, "toggle_selection", sessionID, func(st models.WizardState) (models.WizardState, *wizard.Rejection) {
		return s.engine.ToggleSelection(st, companyID)
	})
}

// SetPercentage allocates a percentage of the investment to a company
func (s *WizardService) SetPercentage(ctx context.Context, sessionID, companyID string, pct float64) (*models.WizardState, error) {
	return s.apply(ctx, "set_percentage", sessionID, func(st models.WizardState) (models.WizardState, *wizard.Rejection) {
		return s.engine.SetByPercentage(st, companyID, pct)
	})
}

// SetShares allocates a whole number of shares of a company
func (s *WizardService) SetShares(ctx context.Context, sessionID, companyID string, shares int64) (*models.WizardState, error) {
	return s.apply(ctx, "set_shares", sessionID, func(st models.WizardState) (models.WizardState, *wizard.Rejection) {
		return s.engine.SetByShares(st, companyID, shares)
	})
}

// ToggleLock locks or unlocks a company's allocation
func (s *WizardService) ToggleLock(ctx context.Context, sessionID, companyID string) (*models.WizardState, error) {
	return s.apply(ctx, "toggle_lock", sessionID, func(st models.WizardState) (models.WizardState, *wizard.Rejection) {
		return s.engine.ToggleLock(st, companyID)
	})
}

// DistributeEqually splits the investment equally across the selection
func (s *WizardService) DistributeEqually(ctx context.Context, sessionID string) (*models.WizardState, error) {
	return s.apply(ctx, "distribute", sessionID, s.engine.DistributeEqually)
}

// Rebalance spreads what locked allocations leave over the unlocked ones
func (s *WizardService) Rebalance(ctx context.Context, sessionID string) (*models.WizardState, error) {
	return s.apply(ctx, "rebalance", sessionID, s.engine.Rebalance)
}
