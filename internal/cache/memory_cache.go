package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/epeers/portfolio-wizard/internal/models"
)

// MemoryCache keeps serialized wizard snapshots in process memory.
// Entries older than the TTL are treated as missing and dropped on access.
type MemoryCache struct {
	snapshots map[string]snapshotEntry
	mu        sync.RWMutex
	ttl       time.Duration
}

type snapshotEntry struct {
	data    []byte
	savedAt time.Time
}

// NewMemoryCache creates a new in-memory snapshot cache. A zero ttl never expires entries.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		snapshots: make(map[string]snapshotEntry),
		ttl:       ttl,
	}
}

func (c *MemoryCache) expired(e snapshotEntry) bool {
	return c.ttl > 0 && time.Since(e.savedAt) > c.ttl
}

// Load returns the snapshot stored under key, or nil if there is none
func (c *MemoryCache) Load(_ context.Context, key string) (*models.Snapshot, error) {
	c.mu.RLock()
	entry, exists := c.snapshots[key]
	c.mu.RUnlock()
	if !exists {
		return nil, nil
	}
	if c.expired(entry) {
		c.mu.Lock()
		delete(c.snapshots, key)
		c.mu.Unlock()
		return nil, nil
	}

	var snap models.Snapshot
	if err := json.Unmarshal(entry.data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", key, err)
	}
	return &snap, nil
}

// Save stores a serialized copy of the snapshot
func (c *MemoryCache) Save(_ context.Context, key string, snap *models.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot %s: %w", key, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshots[key] = snapshotEntry{
		data:    data,
		savedAt: time.Now(),
	}
	return nil
}

// Delete removes a snapshot
func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.snapshots, key)
	return nil
}

// Len returns the number of stored snapshots, expired or not
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.snapshots)
}

// Clear removes all cached data
func (c *MemoryCache) Clear() {
	c.mu.Lock()
	c.snapshots = make(map[string]snapshotEntry)
	c.mu.Unlock()
}
