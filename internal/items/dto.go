package items

import (
	"github.com/giftwell/wishlist-backend/pkg/db/models"
	"github.com/giftwell/wishlist-backend/pkg/validate"
)

// ItemDTO mirrors the items table in API responses.
type ItemDTO struct {
	ID          int64  `json:"id"`
	WishlistID  int64  `json:"wishlist_id"`
	ProductID   int64  `json:"product_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// FromModel maps a persisted item into its transport shape.
func FromModel(m *models.Item) *ItemDTO {
	if m == nil {
		return nil
	}
	return &ItemDTO{
		ID:          m.ID,
		WishlistID:  m.WishlistID,
		ProductID:   m.ProductID,
		Name:        m.Name,
		Description: m.Description,
	}
}

func FromModels(ms []models.Item) []ItemDTO {
	dtos := make([]ItemDTO, 0, len(ms))
	for i := range ms {
		dtos = append(dtos, *FromModel(&ms[i]))
	}
	return dtos
}

// ItemPayload is the inbound body for create and update. The owning
// wishlist id is never part of the payload; it arrives from the URL.
type ItemPayload struct {
	ProductID   *int64  `json:"product_id" validate:"required"`
	Name        *string `json:"name" validate:"required,max=63"`
	Description *string `json:"description" validate:"required,max=100"`
}

func (p ItemPayload) Validate() error {
	return validate.Payload("item", p)
}

// Apply copies the payload fields onto the model. The id and wishlist_id are
// never taken from the payload.
func (p ItemPayload) Apply(m *models.Item) {
	if p.ProductID != nil {
		m.ProductID = *p.ProductID
	}
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
}
