package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "grocery/internal/delivery/context"
	"grocery/internal/domain/entity"
	domainerrors "grocery/internal/domain/errors"
	"grocery/internal/domain/repository"
	"grocery/internal/domain/service"
	"grocery/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// InventoryServiceParams holds dependencies for InventoryService, injected by Fx.
type InventoryServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ListingRepo repository.ListingRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// inventoryService implements the InventoryUsecase interface.
type inventoryService struct {
	txManager   repository.TransactionManager
	listingRepo repository.ListingRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
	now         func() time.Time
}

// NewInventoryService is the constructor for inventoryService.
func NewInventoryService(params InventoryServiceParams) usecase.InventoryUsecase {
	return &inventoryService{
		txManager:   params.TxManager,
		listingRepo: params.ListingRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *inventoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create lists a product at a supermarket. Listings start in stock unless input says otherwise.
func (srv *inventoryService) Create(ctx context.Context, actor *entity.Principal, input usecase.CreateListingInput) (*entity.Listing, error) {
	if input.ProductID == uuid.Nil || input.SupermarketID == uuid.Nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "product id and supermarket id are required")
	}
	if input.Price.IsNegative() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "price must not be negative")
	}

	inStock := true
	if input.InStock != nil {
		inStock = *input.InStock
	}

	listing := &entity.Listing{
		ProductID:     input.ProductID,
		SupermarketID: input.SupermarketID,
		Price:         input.Price.Round(entity.MoneyPlaces),
		InStock:       inStock,
		CreatedBy:     actorEmail(actor),
		UpdatedBy:     actorEmail(actor),
	}

	if err := srv.listingRepo.Create(ctx, listing); err != nil {
		switch {
		case errors.Is(err, repository.ErrListingAlreadyExists):
			return nil, errors.Wrap(domainerrors.ErrListingAlreadyExists, "listing already exists")
		case errors.Is(err, repository.ErrListingReferenceNotFound):
			return nil, errors.Wrap(domainerrors.ErrNotFound, "product or supermarket does not exist")
		default:
			return nil, errors.Wrap(err, "failed to create listing")
		}
	}

	created, err := srv.listingRepo.Find(ctx, listing.SupermarketID, listing.ProductID)
	if err != nil {
		srv.log(ctx).Warn("Failed to reload created listing", slog.Any("error", err))
		created = listing
	}

	srv.publish(ctx, created, nil)

	return created, nil
}

// List returns every listing.
func (srv *inventoryService) List(ctx context.Context) ([]*entity.Listing, error) {
	listings, err := srv.listingRepo.FindListings(ctx, repository.ListingFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inventory")
	}

	return listings, nil
}

// ListByProduct returns every listing of one product, in or out of stock.
func (srv *inventoryService) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Listing, error) {
	listings, err := srv.listingRepo.FindListings(ctx, repository.ListingFilter{ProductID: productID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product inventory")
	}

	return listings, nil
}

// Update applies a partial change to a listing and announces it when price or stock moved.
func (srv *inventoryService) Update(ctx context.Context, actor *entity.Principal, supermarketID, productID uuid.UUID, input usecase.UpdateListingInput) (*entity.Listing, error) {
	if input.Price != nil && input.Price.IsNegative() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "price must not be negative")
	}

	var (
		updated  *entity.Listing
		previous entity.Listing
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		listingRepo := repoFactory.ListingRepo()

		listing, err := listingRepo.Find(ctx, supermarketID, productID)
		if err != nil {
			return mapListingError(err)
		}
		previous = *listing

		if input.Price != nil {
			listing.Price = input.Price.Round(entity.MoneyPlaces)
		}
		if input.InStock != nil {
			listing.InStock = *input.InStock
		}
		listing.UpdatedBy = actorEmail(actor)

		if err := listingRepo.Update(ctx, listing); err != nil {
			return mapListingError(err)
		}

		updated = listing

		return nil
	})
	if err != nil {
		return nil, err
	}

	if !previous.Price.Equal(updated.Price) || previous.InStock != updated.InStock {
		srv.publish(ctx, updated, &previous)
	}

	return updated, nil
}

// Delete removes a listing and announces that it is no longer available.
func (srv *inventoryService) Delete(ctx context.Context, actor *entity.Principal, supermarketID, productID uuid.UUID) (*entity.Listing, error) {
	listing, err := srv.listingRepo.Find(ctx, supermarketID, productID)
	if err != nil {
		return nil, mapListingError(err)
	}

	if err := srv.listingRepo.Delete(ctx, supermarketID, productID); err != nil {
		return nil, mapListingError(err)
	}

	removed := *listing
	removed.InStock = false
	removed.UpdatedBy = actorEmail(actor)
	srv.publishRemoval(ctx, &removed, listing)

	return listing, nil
}

func mapListingError(err error) error {
	if errors.Is(err, repository.ErrListingNotFound) {
		return errors.Wrap(domainerrors.ErrListingNotFound, "listing does not exist")
	}

	return errors.Wrap(err, "listing operation failed")
}

func (srv *inventoryService) publish(ctx context.Context, current, previous *entity.Listing) {
	event := srv.newEvent(ctx, current)
	event.NewPrice = current.Price.StringFixed(entity.MoneyPlaces)
	if previous != nil {
		event.OldPrice = previous.Price.StringFixed(entity.MoneyPlaces)
	}

	srv.send(ctx, event)
}

func (srv *inventoryService) publishRemoval(ctx context.Context, removed, previous *entity.Listing) {
	event := srv.newEvent(ctx, removed)
	event.OldPrice = previous.Price.StringFixed(entity.MoneyPlaces)

	srv.send(ctx, event)
}

func (srv *inventoryService) newEvent(ctx context.Context, listing *entity.Listing) *service.PriceChangeEvent {
	return &service.PriceChangeEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		ProductID:     listing.ProductID.String(),
		SupermarketID: listing.SupermarketID.String(),
		City:          listing.City,
		InStock:       listing.InStock,
		ChangedBy:     listing.UpdatedBy,
		ChangedAt:     srv.now().UTC(),
	}
}

// send never fails the caller; the listing write has already been committed.
func (srv *inventoryService) send(ctx context.Context, event *service.PriceChangeEvent) {
	if err := srv.publisher.PublishPriceChange(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish price change",
			slog.String("product_id", event.ProductID),
			slog.String("supermarket_id", event.SupermarketID),
			slog.Any("error", err),
		)
	}
}
