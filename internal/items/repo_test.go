package items

import (
	"context"
	"errors"
	"testing"

	"github.com/giftwell/wishlist-backend/pkg/db/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupItemTestDB(t *testing.T) (*gorm.DB, int64) {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(conn))

	wishlist := models.Wishlist{CustomerID: 5, Name: "birthday"}
	require.NoError(t, conn.Create(&wishlist).Error)
	return conn, wishlist.ID
}

func TestRepositorySaveAssignsID(t *testing.T) {
	conn, wishlistID := setupItemTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	item := &models.Item{WishlistID: wishlistID, ProductID: 42, Name: "lego set", Description: "the big one"}
	require.NoError(t, repo.Save(ctx, item))
	require.NotZero(t, item.ID)

	loaded, err := repo.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, wishlistID, loaded.WishlistID)
	assert.Equal(t, int64(42), loaded.ProductID)
	assert.Equal(t, "lego set", loaded.Name)
	assert.Equal(t, "the big one", loaded.Description)
}

func TestRepositorySaveUpdatesExistingRow(t *testing.T) {
	conn, wishlistID := setupItemTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	item := &models.Item{WishlistID: wishlistID, ProductID: 42, Name: "lego set"}
	require.NoError(t, repo.Save(ctx, item))

	item.Name = "bigger lego set"
	require.NoError(t, repo.Save(ctx, item))

	loaded, err := repo.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "bigger lego set", loaded.Name)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRepositoryAllSpansWishlists(t *testing.T) {
	conn, wishlistID := setupItemTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	other := models.Wishlist{CustomerID: 9, Name: "other"}
	require.NoError(t, conn.Create(&other).Error)

	for _, it := range []*models.Item{
		{WishlistID: wishlistID, ProductID: 1, Name: "a"},
		{WishlistID: wishlistID, ProductID: 2, Name: "b"},
		{WishlistID: other.ID, ProductID: 3, Name: "c"},
	} {
		require.NoError(t, repo.Save(ctx, it))
	}

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestRepositoryDeleteRemovesRow(t *testing.T) {
	conn, wishlistID := setupItemTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	item := &models.Item{WishlistID: wishlistID, ProductID: 42, Name: "lego set"}
	require.NoError(t, repo.Save(ctx, item))
	require.NoError(t, repo.Delete(ctx, item))

	_, err := repo.Get(ctx, item.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestRepositoryFindByWishlistID(t *testing.T) {
	conn, wishlistID := setupItemTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	other := models.Wishlist{CustomerID: 9, Name: "other"}
	require.NoError(t, conn.Create(&other).Error)

	for _, it := range []*models.Item{
		{WishlistID: wishlistID, ProductID: 1, Name: "a"},
		{WishlistID: wishlistID, ProductID: 2, Name: "b"},
		{WishlistID: other.ID, ProductID: 3, Name: "c"},
	} {
		require.NoError(t, repo.Save(ctx, it))
	}

	matches, err := repo.FindByWishlistID(ctx, wishlistID)
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestRepositoryFindByNameIsExact(t *testing.T) {
	conn, wishlistID := setupItemTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	for _, it := range []*models.Item{
		{WishlistID: wishlistID, ProductID: 1, Name: "lego set"},
		{WishlistID: wishlistID, ProductID: 2, Name: "lego set"},
		{WishlistID: wishlistID, ProductID: 3, Name: "lego"},
	} {
		require.NoError(t, repo.Save(ctx, it))
	}

	matches, err := repo.FindByName(ctx, "lego set")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	for _, m := range matches {
		assert.Equal(t, "lego set", m.Name)
	}
}
