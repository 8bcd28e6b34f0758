package items

import (
	"context"
	"errors"
	"fmt"

	"github.com/giftwell/wishlist-backend/pkg/db/models"
	pkgerrors "github.com/giftwell/wishlist-backend/pkg/errors"
	"gorm.io/gorm"
)

type itemRepository interface {
	Save(ctx context.Context, item *models.Item) error
	Delete(ctx context.Context, item *models.Item) error
	All(ctx context.Context) ([]models.Item, error)
	Get(ctx context.Context, id int64) (*models.Item, error)
	FindByWishlistID(ctx context.Context, wishlistID int64) ([]models.Item, error)
	FindByName(ctx context.Context, name string) ([]models.Item, error)
}

// wishlistGetter is the slice of the wishlist repository the item service
// needs to enforce that every item references an existing wishlist.
type wishlistGetter interface {
	Get(ctx context.Context, id int64) (*models.Wishlist, error)
}

// Service exposes item operations scoped to an owning wishlist.
type Service interface {
	Create(ctx context.Context, wishlistID int64, payload ItemPayload) (*ItemDTO, error)
	Update(ctx context.Context, wishlistID, itemID int64, payload ItemPayload) (*ItemDTO, error)
	Get(ctx context.Context, wishlistID, itemID int64) (*ItemDTO, error)
	List(ctx context.Context) ([]ItemDTO, error)
	ListByWishlist(ctx context.Context, wishlistID int64) ([]ItemDTO, error)
	FindByName(ctx context.Context, name string) ([]ItemDTO, error)
	Delete(ctx context.Context, wishlistID, itemID int64) error
}

type service struct {
	repo      itemRepository
	wishlists wishlistGetter
}

// NewService builds an item service with the provided repositories.
func NewService(repo itemRepository, wishlists wishlistGetter) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("item repository required")
	}
	if wishlists == nil {
		return nil, fmt.Errorf("wishlist repository required")
	}
	return &service{repo: repo, wishlists: wishlists}, nil
}

// Create validates the payload, checks the owning wishlist exists, and
// persists a new item under it.
func (s *service) Create(ctx context.Context, wishlistID int64, payload ItemPayload) (*ItemDTO, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	if err := s.ensureWishlist(ctx, wishlistID); err != nil {
		return nil, err
	}

	item := &models.Item{WishlistID: wishlistID}
	payload.Apply(item)
	if err := s.repo.Save(ctx, item); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save item")
	}
	return FromModel(item), nil
}

// Update replaces the data fields of an existing item in the wishlist.
func (s *service) Update(ctx context.Context, wishlistID, itemID int64, payload ItemPayload) (*ItemDTO, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	item, err := s.load(ctx, wishlistID, itemID)
	if err != nil {
		return nil, err
	}

	payload.Apply(item)
	if err := s.repo.Save(ctx, item); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save item")
	}
	return FromModel(item), nil
}

// Get returns the item with the given id if it belongs to the wishlist.
func (s *service) Get(ctx context.Context, wishlistID, itemID int64) (*ItemDTO, error) {
	item, err := s.load(ctx, wishlistID, itemID)
	if err != nil {
		return nil, err
	}
	return FromModel(item), nil
}

// List returns every item across all wishlists.
func (s *service) List(ctx context.Context) ([]ItemDTO, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list items")
	}
	return FromModels(all), nil
}

// ListByWishlist returns the items in the given wishlist.
func (s *service) ListByWishlist(ctx context.Context, wishlistID int64) ([]ItemDTO, error) {
	if err := s.ensureWishlist(ctx, wishlistID); err != nil {
		return nil, err
	}
	matches, err := s.repo.FindByWishlistID(ctx, wishlistID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list wishlist items")
	}
	return FromModels(matches), nil
}

// FindByName returns every item whose name matches exactly.
func (s *service) FindByName(ctx context.Context, name string) ([]ItemDTO, error) {
	matches, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find items by name")
	}
	return FromModels(matches), nil
}

// Delete removes the item. Deleting an absent item is not an error.
func (s *service) Delete(ctx context.Context, wishlistID, itemID int64) error {
	item, err := s.repo.Get(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load item")
	}
	if item.WishlistID != wishlistID {
		return nil
	}
	if err := s.repo.Delete(ctx, item); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete item")
	}
	return nil
}

func (s *service) ensureWishlist(ctx context.Context, wishlistID int64) error {
	if _, err := s.wishlists.Get(ctx, wishlistID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "wishlist not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load wishlist")
	}
	return nil
}

func (s *service) load(ctx context.Context, wishlistID, itemID int64) (*models.Item, error) {
	item, err := s.repo.Get(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load item")
	}
	if item.WishlistID != wishlistID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
	}
	return item, nil
}
