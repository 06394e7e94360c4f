package cart

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/angelmondragon/modeststyle-backend/internal/snapshot"
	"github.com/angelmondragon/modeststyle-backend/pkg/checkout"
	pkgerrors "github.com/angelmondragon/modeststyle-backend/pkg/errors"
	"github.com/angelmondragon/modeststyle-backend/pkg/logger"
)

// View is the cart as returned to the storefront.
type View struct {
	Items      []Item `json:"items"`
	TotalItems int    `json:"totalItems"`
	TotalPrice int64  `json:"totalPrice"`
	IsOpen     bool   `json:"isOpen"`
	// FreeShippingRemaining drives the slide-out progress banner.
	FreeShippingRemaining int64 `json:"freeShippingRemaining"`
}

// LineRef addresses one cart line.
type LineRef struct {
	ID    string `json:"_id" validate:"required"`
	Size  string `json:"size,omitempty"`
	Color string `json:"color,omitempty"`
}

type ServiceParams struct {
	Port   snapshot.Port
	Logger *logger.Logger
	// IdleTTL bounds how long an untouched session store stays cached.
	IdleTTL time.Duration
}

type cachedStore struct {
	store    *Store
	lastSeen time.Time
}

// Service resolves the cart for a client session and applies one operation per call.
type Service struct {
	port    snapshot.Port
	logg    *logger.Logger
	idleTTL time.Duration
	now     func() time.Time

	mu     sync.Mutex
	stores map[string]*cachedStore
}

func NewService(params ServiceParams) (*Service, error) {
	if params.Port == nil {
		return nil, fmt.Errorf("snapshot port required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Service{
		port:    params.Port,
		logg:    params.Logger,
		idleTTL: params.IdleTTL,
		now:     time.Now,
		stores:  make(map[string]*cachedStore),
	}, nil
}

// Store returns the session's store, rehydrated from the latest snapshot.
func (s *Service) Store(ctx context.Context, owner string) (*Store, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "client session required")
	}

	s.mu.Lock()
	entry, ok := s.stores[owner]
	if !ok {
		entry = &cachedStore{store: &Store{port: s.port, owner: owner}}
		s.stores[owner] = entry
	}
	entry.lastSeen = s.now()
	s.mu.Unlock()

	if err := entry.store.Refresh(ctx); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "cart unavailable")
	}
	return entry.store, nil
}

func (s *Service) Get(ctx context.Context, owner string) (View, error) {
	store, err := s.Store(ctx, owner)
	if err != nil {
		return View{}, err
	}
	return viewOf(store), nil
}

func (s *Service) AddItem(ctx context.Context, owner string, item Item) (View, error) {
	return s.mutate(ctx, owner, func(store *Store) error {
		return store.AddItem(ctx, item)
	})
}

func (s *Service) RemoveItem(ctx context.Context, owner string, ref LineRef) (View, error) {
	return s.mutate(ctx, owner, func(store *Store) error {
		return store.RemoveItem(ctx, ref.ID, ref.Size, ref.Color)
	})
}

func (s *Service) UpdateQuantity(ctx context.Context, owner string, ref LineRef, quantity int) (View, error) {
	return s.mutate(ctx, owner, func(store *Store) error {
		return store.UpdateQuantity(ctx, ref.ID, quantity, ref.Size, ref.Color)
	})
}

func (s *Service) Clear(ctx context.Context, owner string) (View, error) {
	return s.mutate(ctx, owner, func(store *Store) error {
		return store.ClearCart(ctx)
	})
}

func (s *Service) Toggle(ctx context.Context, owner string) (View, error) {
	return s.mutate(ctx, owner, func(store *Store) error {
		store.ToggleCart()
		return nil
	})
}

func (s *Service) SetOpen(ctx context.Context, owner string, open bool) (View, error) {
	return s.mutate(ctx, owner, func(store *Store) error {
		store.SetOpen(open)
		return nil
	})
}

func (s *Service) mutate(ctx context.Context, owner string, fn func(*Store) error) (View, error) {
	store, err := s.Store(ctx, owner)
	if err != nil {
		return View{}, err
	}
	// The in-memory store answers the request even when the snapshot write fails.
	if err := fn(store); err != nil {
		s.logg.Error(s.logg.WithSessionID(ctx, owner), "cart snapshot write failed", err)
	}
	return viewOf(store), nil
}

// Sweep drops cached stores idle past the configured TTL. Persisted snapshots are untouched.
func (s *Service) Sweep(_ context.Context) (int, error) {
	if s.idleTTL <= 0 {
		return 0, nil
	}
	cutoff := s.now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for owner, entry := range s.stores {
		if entry.lastSeen.Before(cutoff) {
			delete(s.stores, owner)
			removed++
		}
	}
	return removed, nil
}

func viewOf(store *Store) View {
	items := store.Items()
	view := View{
		Items:  items,
		IsOpen: store.IsOpen(),
	}
	for _, it := range items {
		view.TotalItems += it.Quantity
	}
	view.TotalPrice = Subtotal(items)
	view.FreeShippingRemaining = checkout.FreeShippingRemaining(view.TotalPrice)
	return view
}
