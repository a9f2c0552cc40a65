package cache

import (
	"context"
	"sync"
	"time"

	"github.com/dropbox/godropbox/time2"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryStore keeps entries in process. Expired entries are dropped lazily on access.
type MemoryStore struct {
	mu      sync.Mutex
	clock   time2.Clock
	entries map[string]memoryEntry
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(clock time2.Clock) *MemoryStore {
	if clock == nil {
		clock = time2.DefaultClock
	}

	return &MemoryStore{
		clock:   clock,
		entries: make(map[string]memoryEntry),
	}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		return nil, ErrMiss
	}

	if !entry.expiresAt.IsZero() && !m.clock.Now().Before(entry.expiresAt) {
		delete(m.entries, key)
		return nil, ErrMiss
	}

	value := make([]byte, len(entry.value))
	copy(value, entry.value)

	return value, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := memoryEntry{value: make([]byte, len(value))}
	copy(entry.value, value)

	if ttl > 0 {
		entry.expiresAt = m.clock.Now().Add(ttl)
	}

	m.entries[key] = entry

	return nil
}

func (m *MemoryStore) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, key := range keys {
		delete(m.entries, key)
	}

	return nil
}
