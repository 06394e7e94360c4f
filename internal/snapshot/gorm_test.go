package snapshot

import (
	"context"
	"testing"
	"time"

	"github.com/angelmondragon/modeststyle-backend/pkg/db/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newGormStore(t *testing.T, ttl time.Duration) *GormStore {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.ClientSnapshot{}))

	store, err := NewGormStore(conn, ttl)
	require.NoError(t, err)
	return store
}

func TestGormStoreUpsertsLastWriterWins(t *testing.T) {
	ctx := context.Background()
	store := newGormStore(t, 0)

	require.NoError(t, store.Save(ctx, NamespaceCart, "sid-1", []byte(`[{"_id":"a"}]`)))
	require.NoError(t, store.Save(ctx, NamespaceCart, "sid-1", []byte(`[{"_id":"b"}]`)))

	got, found, err := store.Load(ctx, NamespaceCart, "sid-1")
	require.NoError(t, err)
	require.True(t, found)
	require.JSONEq(t, `[{"_id":"b"}]`, string(got))

	var count int64
	require.NoError(t, store.db(ctx).Model(&models.ClientSnapshot{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestGormStoreMissAndDelete(t *testing.T) {
	ctx := context.Background()
	store := newGormStore(t, 0)

	_, found, err := store.Load(ctx, NamespaceWishlist, "nobody")
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, store.Save(ctx, NamespaceWishlist, "sid-2", []byte(`[]`)))
	require.NoError(t, store.Delete(ctx, NamespaceWishlist, "sid-2"))

	_, found, err = store.Load(ctx, NamespaceWishlist, "sid-2")
	require.NoError(t, err)
	require.False(t, found)
}

func TestGormStoreExpiryAndPurge(t *testing.T) {
	ctx := context.Background()
	store := newGormStore(t, time.Hour)
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(ctx, NamespaceCart, "old", []byte(`[]`)))
	now = now.Add(3 * time.Hour)
	require.NoError(t, store.Save(ctx, NamespaceCart, "fresh", []byte(`[]`)))

	_, found, err := store.Load(ctx, NamespaceCart, "old")
	require.NoError(t, err)
	require.False(t, found)

	purged, err := store.PurgeExpired(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), purged)

	_, found, err = store.Load(ctx, NamespaceCart, "fresh")
	require.NoError(t, err)
	require.True(t, found)
}
