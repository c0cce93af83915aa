package usecase

import (
	"context"

	"grocery/internal/domain/entity"

	"github.com/google/uuid"
)

// PriceResolver finds the cheapest in-stock listing of a product in a city.
type PriceResolver interface {
	// ResolveCheapest returns repository.ErrListingNotFound when nothing matches.
	ResolveCheapest(ctx context.Context, productID uuid.UUID, city string) (*entity.Listing, error)
}

// BuildListInput is a city and the ordered items to price there.
type BuildListInput struct {
	City  string
	Items []entity.ShoppingRequestItem
}

// ShoppingListUsecase prices shopping lists and serves the saved ones.
type ShoppingListUsecase interface {
	BuildList(ctx context.Context, principal *entity.Principal, input BuildListInput) (*entity.ShoppingList, error)
	ListMine(ctx context.Context, principal *entity.Principal) ([]*entity.ShoppingList, error)
	Get(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.ShoppingList, error)
	ShareQR(ctx context.Context, principal *entity.Principal, id uuid.UUID) ([]byte, error)
	ResolveQR(ctx context.Context, principal *entity.Principal, payload string) (*entity.ShoppingList, error)
}
