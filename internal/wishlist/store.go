package wishlist

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/angelmondragon/modeststyle-backend/internal/snapshot"
)

// Item is a saved product. Identity is ID alone.
type Item struct {
	ID    string `json:"_id" validate:"required"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Price int64  `json:"price" validate:"gte=0"`
	Image string `json:"image"`
}

type persistedState struct {
	State struct {
		Items []Item `json:"items"`
	} `json:"state"`
	Version int `json:"version"`
}

// Store is the deduplicated wishlist of one browser session.
type Store struct {
	mu    sync.Mutex
	port  snapshot.Port
	owner string
	items []Item
}

func Load(ctx context.Context, port snapshot.Port, owner string) (*Store, error) {
	s := &Store{port: port, owner: owner}
	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.port == nil {
		return nil
	}
	payload, found, err := s.port.Load(ctx, snapshot.NamespaceWishlist, s.owner)
	if err != nil {
		return fmt.Errorf("load wishlist snapshot: %w", err)
	}
	if !found || len(payload) == 0 {
		s.items = nil
		return nil
	}
	var doc persistedState
	if err := json.Unmarshal(payload, &doc); err != nil {
		return fmt.Errorf("decode wishlist snapshot: %w", err)
	}
	s.items = doc.State.Items
	return nil
}

func (s *Store) persistLocked(ctx context.Context) error {
	if s.port == nil {
		return nil
	}
	var doc persistedState
	doc.State.Items = s.items
	if doc.State.Items == nil {
		doc.State.Items = []Item{}
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode wishlist snapshot: %w", err)
	}
	if err := s.port.Save(ctx, snapshot.NamespaceWishlist, s.owner, payload); err != nil {
		return fmt.Errorf("save wishlist snapshot: %w", err)
	}
	return nil
}

func (s *Store) indexLocked(id string) int {
	for idx, it := range s.items {
		if it.ID == id {
			return idx
		}
	}
	return -1
}

// AddItem inserts the item unless its id is already present.
func (s *Store) AddItem(ctx context.Context, item Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexLocked(item.ID) >= 0 {
		return nil
	}
	s.items = append(s.items, item)
	return s.persistLocked(ctx)
}

func (s *Store) RemoveItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexLocked(id)
	if idx < 0 {
		return nil
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	return s.persistLocked(ctx)
}

// ToggleItem flips membership and reports whether the item is now saved.
func (s *Store) ToggleItem(ctx context.Context, item Item) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexLocked(item.ID); idx >= 0 {
		s.items = append(s.items[:idx], s.items[idx+1:]...)
		return false, s.persistLocked(ctx)
	}
	s.items = append(s.items, item)
	return true, s.persistLocked(ctx)
}

func (s *Store) IsInWishlist(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexLocked(id) >= 0
}

func (s *Store) ClearWishlist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	return s.persistLocked(ctx)
}

// Items returns a copy in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}
