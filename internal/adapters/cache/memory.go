package cache

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen/calc-service/internal/domain"
)

// Memory is an in-process ResultCache.
// Entries expire lazily on read; a zero TTL means no expiration.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	display   string
	expiresAt time.Time // zero means no expiration
}

// NewMemory creates an empty in-process cache.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get retrieves a cached display string.
// Returns domain.ErrNotFound for missing or expired keys.
func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return "", domain.NewNotFoundError("calculation", key)
	}

	if !entry.expiresAt.IsZero() && m.now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()

		return "", domain.NewNotFoundError("calculation", key)
	}

	return entry.display, nil
}

// Set stores a display string under the key with a TTL.
func (m *Memory) Set(_ context.Context, key, display string, ttl time.Duration) error {
	entry := memoryEntry{display: display}
	if ttl > 0 {
		entry.expiresAt = m.now().Add(ttl)
	}

	m.mu.Lock()
	m.entries[key] = entry
	m.mu.Unlock()

	return nil
}

// Name implements ports.HealthChecker.
func (m *Memory) Name() string {
	return "memory-cache"
}

// Check implements ports.HealthChecker. An in-process map has no failure
// mode to report, so it always passes.
func (m *Memory) Check(_ context.Context) error {
	return nil
}

// Len reports the number of stored entries, expired ones included.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}
