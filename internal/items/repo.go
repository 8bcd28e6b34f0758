package items

import (
	"context"
	"fmt"

	"github.com/giftwell/wishlist-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository handles item persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to item operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Save inserts the item when it has no id yet, otherwise updates every
// column of the existing row.
func (r *Repository) Save(ctx context.Context, item *models.Item) error {
	if item == nil {
		return fmt.Errorf("item is required")
	}
	if item.ID == 0 {
		return r.db.WithContext(ctx).Create(item).Error
	}
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete removes the row. An item that was never saved is a no-op.
func (r *Repository) Delete(ctx context.Context, item *models.Item) error {
	if item == nil || item.ID == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Delete(&models.Item{}, item.ID).Error
}

// All returns every persisted item.
func (r *Repository) All(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Get loads an item by id, returning gorm.ErrRecordNotFound when absent.
func (r *Repository) Get(ctx context.Context, id int64) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByWishlistID returns a snapshot of the items in a wishlist.
func (r *Repository) FindByWishlistID(ctx context.Context, wishlistID int64) ([]models.Item, error) {
	var items []models.Item
	if err := r.db.WithContext(ctx).Where("wishlist_id = ?", wishlistID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByName returns a snapshot of the items whose name matches exactly.
func (r *Repository) FindByName(ctx context.Context, name string) ([]models.Item, error) {
	var items []models.Item
	if err := r.db.WithContext(ctx).Where("name = ?", name).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
