package items

import (
	"context"
	"testing"

	"github.com/giftwell/wishlist-backend/pkg/db/models"
	pkgerrors "github.com/giftwell/wishlist-backend/pkg/errors"
	"gorm.io/gorm"
)

type stubItemRepo struct {
	item *models.Item
	all  []models.Item
	err  error

	saved   *models.Item
	deleted *models.Item
}

func (s *stubItemRepo) Save(ctx context.Context, item *models.Item) error {
	if s.err != nil {
		return s.err
	}
	if item.ID == 0 {
		item.ID = 1
	}
	s.saved = item
	return nil
}

func (s *stubItemRepo) Delete(ctx context.Context, item *models.Item) error {
	s.deleted = item
	return s.err
}

func (s *stubItemRepo) All(ctx context.Context) ([]models.Item, error) {
	return s.all, s.err
}

func (s *stubItemRepo) Get(ctx context.Context, id int64) (*models.Item, error) {
	if s.item == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.item, s.err
}

func (s *stubItemRepo) FindByWishlistID(ctx context.Context, wishlistID int64) ([]models.Item, error) {
	return s.all, s.err
}

func (s *stubItemRepo) FindByName(ctx context.Context, name string) ([]models.Item, error) {
	return s.all, s.err
}

type stubWishlists struct {
	wishlist *models.Wishlist
}

func (s stubWishlists) Get(ctx context.Context, id int64) (*models.Wishlist, error) {
	if s.wishlist == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.wishlist, nil
}

func intPtr(v int64) *int64   { return &v }
func strPtr(v string) *string { return &v }

func validPayload() ItemPayload {
	return ItemPayload{
		ProductID:   intPtr(42),
		Name:        strPtr("lego set"),
		Description: strPtr("the big one"),
	}
}

func TestNewServiceRequiresRepos(t *testing.T) {
	if _, err := NewService(nil, stubWishlists{}); err == nil {
		t.Fatal("expected error creating service without item repo")
	}
	if _, err := NewService(&stubItemRepo{}, nil); err == nil {
		t.Fatal("expected error creating service without wishlist repo")
	}
}

func TestServiceCreateSetsWishlistID(t *testing.T) {
	repo := &stubItemRepo{}
	svc, err := NewService(repo, stubWishlists{wishlist: &models.Wishlist{ID: 7, CustomerID: 5}})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dto, err := svc.Create(context.Background(), 7, validPayload())
	if err != nil {
		t.Fatalf("create item: %v", err)
	}
	if dto.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if dto.WishlistID != 7 {
		t.Fatalf("expected wishlist id 7, got %d", dto.WishlistID)
	}
	if repo.saved == nil || repo.saved.WishlistID != 7 {
		t.Fatalf("expected saved item bound to wishlist 7, got %+v", repo.saved)
	}
}

func TestServiceCreateMissingWishlist(t *testing.T) {
	svc, _ := NewService(&stubItemRepo{}, stubWishlists{})

	_, err := svc.Create(context.Background(), 7, validPayload())
	if err == nil {
		t.Fatal("expected error")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found code, got %v", err)
	}
}

func TestServiceCreateRejectsMissingFields(t *testing.T) {
	svc, _ := NewService(&stubItemRepo{}, stubWishlists{wishlist: &models.Wishlist{ID: 7}})

	payload := validPayload()
	payload.Description = nil
	_, err := svc.Create(context.Background(), 7, payload)
	if err == nil {
		t.Fatal("expected validation error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %v", err)
	}
	if typed.Message() != "invalid item: missing description" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestServiceGetWrongWishlistIsNotFound(t *testing.T) {
	repo := &stubItemRepo{item: &models.Item{ID: 1, WishlistID: 9, ProductID: 42, Name: "lego set"}}
	svc, _ := NewService(repo, stubWishlists{wishlist: &models.Wishlist{ID: 7}})

	_, err := svc.Get(context.Background(), 7, 1)
	if err == nil {
		t.Fatal("expected error")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found code, got %v", err)
	}
}

func TestServiceUpdateAppliesPayload(t *testing.T) {
	repo := &stubItemRepo{item: &models.Item{ID: 1, WishlistID: 7, ProductID: 42, Name: "old"}}
	svc, _ := NewService(repo, stubWishlists{wishlist: &models.Wishlist{ID: 7}})

	dto, err := svc.Update(context.Background(), 7, 1, validPayload())
	if err != nil {
		t.Fatalf("update item: %v", err)
	}
	if dto.Name != "lego set" || dto.Description != "the big one" {
		t.Fatalf("unexpected dto %+v", dto)
	}
}

func TestServiceDeleteMissingIsIdempotent(t *testing.T) {
	repo := &stubItemRepo{}
	svc, _ := NewService(repo, stubWishlists{wishlist: &models.Wishlist{ID: 7}})

	if err := svc.Delete(context.Background(), 7, 1); err != nil {
		t.Fatalf("expected idempotent delete, got %v", err)
	}
	if repo.deleted != nil {
		t.Fatal("expected no delete call for missing item")
	}
}

func TestServiceDeleteIgnoresForeignItem(t *testing.T) {
	repo := &stubItemRepo{item: &models.Item{ID: 1, WishlistID: 9}}
	svc, _ := NewService(repo, stubWishlists{wishlist: &models.Wishlist{ID: 7}})

	if err := svc.Delete(context.Background(), 7, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if repo.deleted != nil {
		t.Fatal("expected no delete of item in another wishlist")
	}
}

func TestServiceListReturnsEveryItem(t *testing.T) {
	repo := &stubItemRepo{all: []models.Item{
		{ID: 1, WishlistID: 7, ProductID: 1, Name: "lego set"},
		{ID: 2, WishlistID: 9, ProductID: 2, Name: "train set"},
	}}
	svc, _ := NewService(repo, stubWishlists{wishlist: &models.Wishlist{ID: 7}})

	dtos, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	if len(dtos) != 2 {
		t.Fatalf("expected 2 items, got %d", len(dtos))
	}
	if dtos[1].WishlistID != 9 {
		t.Fatalf("expected items from every wishlist, got %+v", dtos)
	}
}

func TestServiceFindByName(t *testing.T) {
	repo := &stubItemRepo{all: []models.Item{
		{ID: 1, WishlistID: 7, ProductID: 1, Name: "lego set"},
		{ID: 2, WishlistID: 9, ProductID: 2, Name: "lego set"},
	}}
	svc, _ := NewService(repo, stubWishlists{wishlist: &models.Wishlist{ID: 7}})

	dtos, err := svc.FindByName(context.Background(), "lego set")
	if err != nil {
		t.Fatalf("find by name: %v", err)
	}
	if len(dtos) != 2 {
		t.Fatalf("expected 2 items, got %d", len(dtos))
	}
}
