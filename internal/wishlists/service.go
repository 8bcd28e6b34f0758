package wishlists

import (
	"context"
	"errors"
	"fmt"

	"github.com/giftwell/wishlist-backend/pkg/db/models"
	pkgerrors "github.com/giftwell/wishlist-backend/pkg/errors"
	"gorm.io/gorm"
)

type wishlistRepository interface {
	Save(ctx context.Context, wishlist *models.Wishlist) error
	Delete(ctx context.Context, wishlist *models.Wishlist) error
	All(ctx context.Context) ([]models.Wishlist, error)
	Get(ctx context.Context, id int64) (*models.Wishlist, error)
	FindByCustomerID(ctx context.Context, customerID int64) ([]models.Wishlist, error)
}

// Service exposes wishlist operations.
type Service interface {
	Create(ctx context.Context, payload WishlistPayload) (*WishlistDTO, error)
	Update(ctx context.Context, id int64, payload WishlistPayload) (*WishlistDTO, error)
	Get(ctx context.Context, id int64) (*WishlistDTO, error)
	List(ctx context.Context) ([]WishlistDTO, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]WishlistDTO, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo wishlistRepository
}

// NewService builds a wishlist service with the provided repository.
func NewService(repo wishlistRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("wishlist repository required")
	}
	return &service{repo: repo}, nil
}

// Create validates the payload and persists a new wishlist.
func (s *service) Create(ctx context.Context, payload WishlistPayload) (*WishlistDTO, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	wishlist := &models.Wishlist{}
	payload.Apply(wishlist)
	if err := s.repo.Save(ctx, wishlist); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save wishlist")
	}
	return FromModel(wishlist), nil
}

// Update replaces the data fields of an existing wishlist.
func (s *service) Update(ctx context.Context, id int64, payload WishlistPayload) (*WishlistDTO, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	wishlist, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	payload.Apply(wishlist)
	if err := s.repo.Save(ctx, wishlist); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save wishlist")
	}
	return FromModel(wishlist), nil
}

// Get returns the wishlist with the given id.
func (s *service) Get(ctx context.Context, id int64) (*WishlistDTO, error) {
	wishlist, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(wishlist), nil
}

// List returns every wishlist.
func (s *service) List(ctx context.Context) ([]WishlistDTO, error) {
	wishlists, err := s.repo.All(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list wishlists")
	}
	return FromModels(wishlists), nil
}

// ListByCustomer returns the wishlists owned by the given customer.
func (s *service) ListByCustomer(ctx context.Context, customerID int64) ([]WishlistDTO, error) {
	wishlists, err := s.repo.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list wishlists by customer")
	}
	return FromModels(wishlists), nil
}

// Delete removes the wishlist. Deleting an absent wishlist is not an error.
func (s *service) Delete(ctx context.Context, id int64) error {
	wishlist, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load wishlist")
	}
	if err := s.repo.Delete(ctx, wishlist); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete wishlist")
	}
	return nil
}

func (s *service) load(ctx context.Context, id int64) (*models.Wishlist, error) {
	wishlist, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "wishlist not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load wishlist")
	}
	return wishlist, nil
}
