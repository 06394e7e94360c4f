package checkout

import (
	"context"
	"sync"
	"time"
)

type sessionEntry struct {
	seq      *Sequencer
	lastSeen time.Time
}

// Sessions holds in-process checkout drafts keyed by client session. Drafts are
// never persisted and vanish after TTL of inactivity.
type Sessions struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]*sessionEntry
}

func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*sessionEntry),
	}
}

// Get returns the session draft, starting a fresh one if none is live.
func (s *Sessions) Get(owner string) *Sequencer {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry, ok := s.entries[owner]
	if !ok || s.expired(entry, now) {
		entry = &sessionEntry{seq: NewSequencer()}
		s.entries[owner] = entry
	}
	entry.lastSeen = now
	return entry.seq
}

// Discard drops the draft for owner.
func (s *Sessions) Discard(owner string) {
	s.mu.Lock()
	delete(s.entries, owner)
	s.mu.Unlock()
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Sweep removes expired drafts.
func (s *Sessions) Sweep(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for owner, entry := range s.entries {
		if s.expired(entry, now) {
			delete(s.entries, owner)
			removed++
		}
	}
	return removed, nil
}

func (s *Sessions) expired(entry *sessionEntry, now time.Time) bool {
	if s.ttl <= 0 {
		return false
	}
	return now.Sub(entry.lastSeen) > s.ttl
}
