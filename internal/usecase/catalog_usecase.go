package usecase

import (
	"context"

	"grocery/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductInput carries the writable fields of a product.
type ProductInput struct {
	Name     string
	Category string
	Comments string
}

// ProductUsecase manages the product catalog.
type ProductUsecase interface {
	Create(ctx context.Context, actor *entity.Principal, input ProductInput) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	Update(ctx context.Context, actor *entity.Principal, id uuid.UUID, input ProductInput) (*entity.Product, error)
	Delete(ctx context.Context, id uuid.UUID) (*entity.Product, error)
}

// SupermarketInput carries supermarket fields. Nil fields are left untouched on update.
type SupermarketInput struct {
	Name     *string
	Comments *string
	City     *string
}

// SupermarketUsecase manages supermarkets.
type SupermarketUsecase interface {
	Create(ctx context.Context, input SupermarketInput) (*entity.Supermarket, error)
	List(ctx context.Context) ([]*entity.Supermarket, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Supermarket, error)
	Update(ctx context.Context, id uuid.UUID, input SupermarketInput) (*entity.Supermarket, error)
	Delete(ctx context.Context, id uuid.UUID) (*entity.Supermarket, error)
}

// CreateListingInput defines a new inventory listing. InStock defaults to true.
type CreateListingInput struct {
	ProductID     uuid.UUID
	SupermarketID uuid.UUID
	Price         decimal.Decimal
	InStock       *bool
}

// UpdateListingInput carries a partial listing update.
type UpdateListingInput struct {
	Price   *decimal.Decimal
	InStock *bool
}

// InventoryUsecase manages listings and announces price changes.
type InventoryUsecase interface {
	Create(ctx context.Context, actor *entity.Principal, input CreateListingInput) (*entity.Listing, error)
	List(ctx context.Context) ([]*entity.Listing, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Listing, error)
	Update(ctx context.Context, actor *entity.Principal, supermarketID, productID uuid.UUID, input UpdateListingInput) (*entity.Listing, error)
	Delete(ctx context.Context, actor *entity.Principal, supermarketID, productID uuid.UUID) (*entity.Listing, error)
}
