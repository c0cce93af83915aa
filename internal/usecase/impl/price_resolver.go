// Package impl contains the implementation of the application's business logic.
package impl

import (
	"bytes"
	"context"
	"log/slog"
	"strings"

	deliverycontext "grocery/internal/delivery/context"
	"grocery/internal/domain/entity"
	"grocery/internal/domain/repository"
	"grocery/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PriceResolverParams holds dependencies for the price resolver, injected by Fx.
type PriceResolverParams struct {
	fx.In

	ListingRepo repository.ListingRepository
	Logger      *slog.Logger
}

// priceResolver picks the cheapest in-stock listing of a product within a city.
type priceResolver struct {
	listingRepo repository.ListingRepository
	logger      *slog.Logger
}

// NewPriceResolver is the constructor for priceResolver.
func NewPriceResolver(params PriceResolverParams) usecase.PriceResolver {
	return &priceResolver{
		listingRepo: params.ListingRepo,
		logger:      params.Logger,
	}
}

func (r *priceResolver) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

// ResolveCheapest returns the lowest-priced in-stock listing for productID in city.
// Equal prices are broken by the smaller supermarket ID. The store filter is re-applied
// in memory, so an over-returning store can never yield an out-of-stock or foreign listing.
func (r *priceResolver) ResolveCheapest(ctx context.Context, productID uuid.UUID, city string) (*entity.Listing, error) {
	city = strings.TrimSpace(city)
	if city == "" || productID == uuid.Nil {
		return nil, repository.ErrListingNotFound
	}

	listings, err := r.listingRepo.FindListings(ctx, repository.ListingFilter{
		ProductID:   productID,
		City:        city,
		InStockOnly: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find listings")
	}

	var best *entity.Listing
	for _, listing := range listings {
		if !matchesListing(listing, productID, city) {
			continue
		}
		if best == nil || cheaper(listing, best) {
			best = listing
		}
	}

	if best == nil {
		r.log(ctx).Debug("No in-stock listing", slog.String("product_id", productID.String()), slog.String("city", city))

		return nil, repository.ErrListingNotFound
	}

	return best, nil
}

func matchesListing(listing *entity.Listing, productID uuid.UUID, city string) bool {
	return listing != nil &&
		listing.ProductID == productID &&
		listing.InStock &&
		!listing.Price.IsNegative() &&
		strings.TrimSpace(listing.City) == city
}

func cheaper(candidate, current *entity.Listing) bool {
	if cmp := candidate.Price.Cmp(current.Price); cmp != 0 {
		return cmp < 0
	}

	return bytes.Compare(candidate.SupermarketID[:], current.SupermarketID[:]) < 0
}
