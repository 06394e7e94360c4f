package wishlist

import (
	"context"
	"fmt"
	"strings"

	"github.com/angelmondragon/modeststyle-backend/internal/snapshot"
	pkgerrors "github.com/angelmondragon/modeststyle-backend/pkg/errors"
	"github.com/angelmondragon/modeststyle-backend/pkg/logger"
)

// View is the wishlist payload returned to the storefront.
type View struct {
	Items []Item `json:"items"`
	Count int    `json:"count"`
}

// Membership answers an isInWishlist query.
type Membership struct {
	ID         string `json:"_id"`
	InWishlist bool   `json:"inWishlist"`
}

type ServiceParams struct {
	Port   snapshot.Port
	Logger *logger.Logger
}

// Service loads the session wishlist per call; the snapshot is the source of truth.
type Service struct {
	port snapshot.Port
	logg *logger.Logger
}

func NewService(params ServiceParams) (*Service, error) {
	if params.Port == nil {
		return nil, fmt.Errorf("snapshot port required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Service{port: params.Port, logg: params.Logger}, nil
}

func (s *Service) load(ctx context.Context, owner string) (*Store, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "client session required")
	}
	store, err := Load(ctx, s.port, owner)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "wishlist unavailable")
	}
	return store, nil
}

func (s *Service) Get(ctx context.Context, owner string) (View, error) {
	store, err := s.load(ctx, owner)
	if err != nil {
		return View{}, err
	}
	return viewOf(store), nil
}

func (s *Service) Toggle(ctx context.Context, owner string, item Item) (View, error) {
	store, err := s.load(ctx, owner)
	if err != nil {
		return View{}, err
	}
	if _, err := store.ToggleItem(ctx, item); err != nil {
		s.logg.Error(s.logg.WithSessionID(ctx, owner), "wishlist snapshot write failed", err)
	}
	return viewOf(store), nil
}

func (s *Service) Contains(ctx context.Context, owner, id string) (Membership, error) {
	store, err := s.load(ctx, owner)
	if err != nil {
		return Membership{}, err
	}
	return Membership{ID: id, InWishlist: store.IsInWishlist(id)}, nil
}

func (s *Service) Clear(ctx context.Context, owner string) (View, error) {
	store, err := s.load(ctx, owner)
	if err != nil {
		return View{}, err
	}
	if err := store.ClearWishlist(ctx); err != nil {
		s.logg.Error(s.logg.WithSessionID(ctx, owner), "wishlist snapshot write failed", err)
	}
	return viewOf(store), nil
}

func viewOf(store *Store) View {
	items := store.Items()
	return View{Items: items, Count: len(items)}
}
