package wishlist

import (
	"context"
	"io"
	"testing"

	"github.com/angelmondragon/modeststyle-backend/internal/snapshot"
	"github.com/angelmondragon/modeststyle-backend/pkg/logger"
	"github.com/stretchr/testify/require"
)

func jilbab() Item {
	return Item{ID: "p-jilbab", Name: "Two Piece Jilbab", Slug: "two-piece-jilbab", Price: 6200}
}

func TestToggleTwiceRestoresMembership(t *testing.T) {
	ctx := context.Background()
	store, err := Load(ctx, snapshot.NewMemoryStore(0), "sid")
	require.NoError(t, err)

	require.NoError(t, store.AddItem(ctx, Item{ID: "p-other"}))
	before := store.Items()

	added, err := store.ToggleItem(ctx, jilbab())
	require.NoError(t, err)
	require.True(t, added)
	require.True(t, store.IsInWishlist("p-jilbab"))

	added, err = store.ToggleItem(ctx, jilbab())
	require.NoError(t, err)
	require.False(t, added)
	require.False(t, store.IsInWishlist("p-jilbab"))
	require.Equal(t, before, store.Items())
}

func TestAddItemDeduplicates(t *testing.T) {
	ctx := context.Background()
	store, err := Load(ctx, snapshot.NewMemoryStore(0), "sid")
	require.NoError(t, err)

	require.NoError(t, store.AddItem(ctx, jilbab()))
	require.NoError(t, store.AddItem(ctx, jilbab()))
	require.Len(t, store.Items(), 1)

	require.NoError(t, store.RemoveItem(ctx, "missing"))
	require.Len(t, store.Items(), 1)

	require.NoError(t, store.ClearWishlist(ctx))
	require.Empty(t, store.Items())
}

func TestWishlistRehydratesFromSnapshot(t *testing.T) {
	ctx := context.Background()
	port := snapshot.NewMemoryStore(0)
	store, err := Load(ctx, port, "sid")
	require.NoError(t, err)
	require.NoError(t, store.AddItem(ctx, jilbab()))

	reloaded, err := Load(ctx, port, "sid")
	require.NoError(t, err)
	require.True(t, reloaded.IsInWishlist("p-jilbab"))

	other, err := Load(ctx, port, "another")
	require.NoError(t, err)
	require.Empty(t, other.Items())
}

func TestServiceToggleAndContains(t *testing.T) {
	ctx := context.Background()
	svc, err := NewService(ServiceParams{
		Port:   snapshot.NewMemoryStore(0),
		Logger: logger.New(logger.Options{ServiceName: "wishlist-test", Output: io.Discard}),
	})
	require.NoError(t, err)

	view, err := svc.Toggle(ctx, "sid", jilbab())
	require.NoError(t, err)
	require.Equal(t, 1, view.Count)

	membership, err := svc.Contains(ctx, "sid", "p-jilbab")
	require.NoError(t, err)
	require.True(t, membership.InWishlist)

	view, err = svc.Toggle(ctx, "sid", jilbab())
	require.NoError(t, err)
	require.Equal(t, 0, view.Count)

	_, err = svc.Get(ctx, "")
	require.Error(t, err)
}
