package wishlists

import (
	"github.com/giftwell/wishlist-backend/pkg/db/models"
	"github.com/giftwell/wishlist-backend/pkg/validate"
)

// WishlistDTO mirrors the wishlists table in API responses.
type WishlistDTO struct {
	ID         int64  `json:"id"`
	CustomerID int64  `json:"customer_id"`
	Name       string `json:"wishlist_name"`
}

// FromModel maps a persisted wishlist into its transport shape.
func FromModel(m *models.Wishlist) *WishlistDTO {
	if m == nil {
		return nil
	}
	return &WishlistDTO{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		Name:       m.Name,
	}
}

func FromModels(ms []models.Wishlist) []WishlistDTO {
	dtos := make([]WishlistDTO, 0, len(ms))
	for i := range ms {
		dtos = append(dtos, *FromModel(&ms[i]))
	}
	return dtos
}

// WishlistPayload is the inbound body for create and update. Both keys must
// be present on the wire even though wishlist_name is nullable in storage.
type WishlistPayload struct {
	CustomerID *int64  `json:"customer_id" validate:"required"`
	Name       *string `json:"wishlist_name" validate:"required,max=40"`
}

func (p WishlistPayload) Validate() error {
	return validate.Payload("wishlist", p)
}

// Apply copies the payload fields onto the model. The id is never taken from
// the payload.
func (p WishlistPayload) Apply(m *models.Wishlist) {
	if p.CustomerID != nil {
		m.CustomerID = *p.CustomerID
	}
	if p.Name != nil {
		m.Name = *p.Name
	}
}
