package wishlists

import (
	"context"
	"fmt"

	"github.com/giftwell/wishlist-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository handles wishlist persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to wishlist operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Save inserts the wishlist when it has no id yet, otherwise updates every
// column of the existing row. The id is assigned by the store on insert.
func (r *Repository) Save(ctx context.Context, wishlist *models.Wishlist) error {
	if wishlist == nil {
		return fmt.Errorf("wishlist is required")
	}
	if wishlist.ID == 0 {
		return r.db.WithContext(ctx).Create(wishlist).Error
	}
	return r.db.WithContext(ctx).Save(wishlist).Error
}

// Delete removes the row. A wishlist that was never saved is a no-op.
func (r *Repository) Delete(ctx context.Context, wishlist *models.Wishlist) error {
	if wishlist == nil || wishlist.ID == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Delete(&models.Wishlist{}, wishlist.ID).Error
}

// All returns every persisted wishlist.
func (r *Repository) All(ctx context.Context) ([]models.Wishlist, error) {
	var wishlists []models.Wishlist
	if err := r.db.WithContext(ctx).Find(&wishlists).Error; err != nil {
		return nil, err
	}
	return wishlists, nil
}

// Get loads a wishlist by id, returning gorm.ErrRecordNotFound when absent.
func (r *Repository) Get(ctx context.Context, id int64) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	if err := r.db.WithContext(ctx).First(&wishlist, id).Error; err != nil {
		return nil, err
	}
	return &wishlist, nil
}

// FindByCustomerID returns a snapshot of the wishlists owned by a customer.
func (r *Repository) FindByCustomerID(ctx context.Context, customerID int64) ([]models.Wishlist, error) {
	var wishlists []models.Wishlist
	if err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Find(&wishlists).Error; err != nil {
		return nil, err
	}
	return wishlists, nil
}
