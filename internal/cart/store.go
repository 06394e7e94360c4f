package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/angelmondragon/modeststyle-backend/internal/snapshot"
)

// Item is one cart line. Identity is (ID, Size, Color).
type Item struct {
	ID       string `json:"_id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Slug     string `json:"slug"`
	Price    int64  `json:"price" validate:"gte=0"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity" validate:"gte=1"`
	Size     string `json:"size,omitempty"`
	Color    string `json:"color,omitempty"`
}

func (i Item) matches(id, size, color string) bool {
	return i.ID == id && i.Size == size && i.Color == color
}

// persistedState mirrors the client-side storage layout: {"state":{"items":[...]},"version":0}.
type persistedState struct {
	State struct {
		Items []Item `json:"items"`
	} `json:"state"`
	Version int `json:"version"`
}

// Store holds the line items for one browser session and writes a snapshot
// through the port after every mutation.
type Store struct {
	mu    sync.Mutex
	port  snapshot.Port
	owner string
	items []Item
	open  bool
}

// Load rehydrates a store from its snapshot. A missing snapshot yields an empty cart.
func Load(ctx context.Context, port snapshot.Port, owner string) (*Store, error) {
	s := &Store{port: port, owner: owner}
	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Refresh replaces the in-memory items with the persisted snapshot.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshLocked(ctx)
}

func (s *Store) refreshLocked(ctx context.Context) error {
	if s.port == nil {
		return nil
	}
	payload, found, err := s.port.Load(ctx, snapshot.NamespaceCart, s.owner)
	if err != nil {
		return fmt.Errorf("load cart snapshot: %w", err)
	}
	if !found || len(payload) == 0 {
		s.items = nil
		return nil
	}
	var doc persistedState
	if err := json.Unmarshal(payload, &doc); err != nil {
		return fmt.Errorf("decode cart snapshot: %w", err)
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
		return fmt.Errorf("encode cart snapshot: %w", err)
	}
	if err := s.port.Save(ctx, snapshot.NamespaceCart, s.owner, payload); err != nil {
		return fmt.Errorf("save cart snapshot: %w", err)
	}
	return nil
}

// AddItem merges into an existing line with the same identity or appends a new one.
// Non-positive quantities are ignored.
func (s *Store) AddItem(ctx context.Context, item Item) error {
	if item.Quantity <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for idx := range s.items {
		if s.items[idx].matches(item.ID, item.Size, item.Color) {
			s.items[idx].Quantity += item.Quantity
			return s.persistLocked(ctx)
		}
	}
	s.items = append(s.items, item)
	return s.persistLocked(ctx)
}

// RemoveItem deletes the matching line; absent lines are a no-op.
func (s *Store) RemoveItem(ctx context.Context, id, size, color string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(id, size, color)
	return s.persistLocked(ctx)
}

func (s *Store) removeLocked(id, size, color string) {
	kept := s.items[:0]
	for _, it := range s.items {
		if !it.matches(id, size, color) {
			kept = append(kept, it)
		}
	}
	s.items = kept
}

// UpdateQuantity sets the quantity of a line. quantity <= 0 removes it.
func (s *Store) UpdateQuantity(ctx context.Context, id string, quantity int, size, color string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(id, size, color)
		return s.persistLocked(ctx)
	}
	for idx := range s.items {
		if s.items[idx].matches(id, size, color) {
			s.items[idx].Quantity = quantity
		}
	}
	return s.persistLocked(ctx)
}

// ClearCart empties the cart.
func (s *Store) ClearCart(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	return s.persistLocked(ctx)
}

func (s *Store) ToggleCart() {
	s.mu.Lock()
	s.open = !s.open
	s.mu.Unlock()
}

func (s *Store) SetOpen(open bool) {
	s.mu.Lock()
	s.open = open
	s.mu.Unlock()
}

func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Items returns a copy of the current lines in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

func (s *Store) TotalPrice() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Subtotal(s.items)
}

// Subtotal is Σ price×quantity over the given lines.
func Subtotal(items []Item) int64 {
	var total int64
	for _, it := range items {
		total += it.Price * int64(it.Quantity)
	}
	return total
}
