package snapshot

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// MemoryStore keeps snapshots in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

// NewMemoryStore returns an in-process store. A ttl of zero keeps entries forever.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (m *MemoryStore) Load(_ context.Context, namespace, owner string) ([]byte, bool, error) {
	if err := validateKey(namespace, owner); err != nil {
		return nil, false, err
	}
	key := namespace + ":" + owner

	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !entry.expiresAt.IsZero() && m.now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return nil, false, nil
	}
	return append([]byte(nil), entry.payload...), true, nil
}

func (m *MemoryStore) Save(_ context.Context, namespace, owner string, payload []byte) error {
	if err := validateKey(namespace, owner); err != nil {
		return err
	}
	entry := memoryEntry{payload: append([]byte(nil), payload...)}
	if m.ttl > 0 {
		entry.expiresAt = m.now().Add(m.ttl)
	}

	m.mu.Lock()
	m.entries[namespace+":"+owner] = entry
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, namespace, owner string) error {
	if err := validateKey(namespace, owner); err != nil {
		return err
	}
	m.mu.Lock()
	delete(m.entries, namespace+":"+owner)
	m.mu.Unlock()
	return nil
}
