package repository

import (
	"context"
	"errors"

	"grocery/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for listing persistence.
var (
	// ErrListingNotFound is returned when no listing matches a lookup.
	ErrListingNotFound = errors.New("listing not found")
	// ErrListingAlreadyExists is returned when the product is already listed at the supermarket.
	ErrListingAlreadyExists = errors.New("listing already exists")
	// ErrListingReferenceNotFound is returned when the product or supermarket of a new listing does not exist.
	ErrListingReferenceNotFound = errors.New("listing product or supermarket not found")
)

// ListingFilter narrows FindListings. Zero values do not filter.
type ListingFilter struct {
	ProductID   uuid.UUID
	City        string
	InStockOnly bool
}

// ListingRepository persists inventory listings keyed by (supermarket, product).
type ListingRepository interface {
	// FindListings returns the listings matching filter, joined with product and supermarket names.
	FindListings(ctx context.Context, filter ListingFilter) ([]*entity.Listing, error)

	// Find returns the listing for one (supermarket, product) pair.
	Find(ctx context.Context, supermarketID, productID uuid.UUID) (*entity.Listing, error)

	Create(ctx context.Context, listing *entity.Listing) error

	// Update modifies price, stock and audit fields of an existing listing.
	Update(ctx context.Context, listing *entity.Listing) error

	Delete(ctx context.Context, supermarketID, productID uuid.UUID) error
}
