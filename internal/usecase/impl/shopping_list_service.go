package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"grocery/config"
	deliverycontext "grocery/internal/delivery/context"
	"grocery/internal/domain/entity"
	domainerrors "grocery/internal/domain/errors"
	"grocery/internal/domain/policy"
	"grocery/internal/domain/repository"
	"grocery/internal/domain/service"
	"grocery/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// ShoppingListServiceParams holds dependencies for ShoppingListService, injected by Fx.
type ShoppingListServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	ShoppingListRepo repository.ShoppingListRepository
	Resolver         usecase.PriceResolver
	QRCodeService    service.QRCodeService
	Config           *config.Config
	Logger           *slog.Logger
}

// shoppingListService implements the ShoppingListUsecase interface.
type shoppingListService struct {
	txManager        repository.TransactionManager
	shoppingListRepo repository.ShoppingListRepository
	resolver         usecase.PriceResolver
	qrCodeService    service.QRCodeService
	missPolicy       string
	persist          bool
	workers          int
	logger           *slog.Logger
	now              func() time.Time
}

// NewShoppingListService is the constructor for shoppingListService.
func NewShoppingListService(params ShoppingListServiceParams) usecase.ShoppingListUsecase {
	srv := &shoppingListService{
		txManager:        params.TxManager,
		shoppingListRepo: params.ShoppingListRepo,
		resolver:         params.Resolver,
		qrCodeService:    params.QRCodeService,
		missPolicy:       config.MissPolicyPlaceholder,
		persist:          true,
		workers:          1,
		logger:           params.Logger,
		now:              time.Now,
	}

	if cfg := params.Config.ShoppingList; cfg != nil {
		if cfg.MissPolicy == config.MissPolicyOmit {
			srv.missPolicy = config.MissPolicyOmit
		}
		srv.persist = cfg.Persist == nil || *cfg.Persist
		srv.workers = max(cfg.ResolveWorkers, 1)
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *shoppingListService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BuildList prices every item against the cheapest in-stock listing in the city.
// Items keep their input order; each subtotal is rounded before it is added to the total.
func (srv *shoppingListService) BuildList(ctx context.Context, principal *entity.Principal, input usecase.BuildListInput) (*entity.ShoppingList, error) {
	if principal == nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "principal is required to build a shopping list")
	}

	city := strings.TrimSpace(input.City)
	if err := validateBuildListInput(city, input.Items); err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Building shopping list", slog.String("city", city), slog.Int("items", len(input.Items)))

	items, err := srv.resolveItems(ctx, city, input.Items)
	if err != nil {
		srv.log(ctx).Error("Failed to resolve shopping list prices", slog.String("city", city), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrStoreUnavailable, err.Error())
	}

	if srv.missPolicy == config.MissPolicyOmit {
		items = omitMissing(items)
	}

	list := &entity.ShoppingList{
		UserID:    principal.UserID,
		UserEmail: principal.Email,
		City:      city,
		Items:     items,
		Total:     entity.Total(items),
		CreatedAt: srv.now(),
	}

	if !srv.persist {
		return list, nil
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ShoppingListRepo().Create(ctx, list)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to persist shopping list", slog.Any("user_id", principal.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to persist shopping list")
	}

	srv.log(ctx).Info("Shopping list saved",
		slog.Any("shopping_list_id", list.ID),
		slog.String("city", city),
		slog.String("total", list.Total.StringFixed(entity.MoneyPlaces)),
	)

	return list, nil
}

func validateBuildListInput(city string, items []entity.ShoppingRequestItem) error {
	if city == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "city is required")
	}
	if len(items) == 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "at least one item is required")
	}
	for _, item := range items {
		if item.ProductID == uuid.Nil {
			return errors.Wrap(domainerrors.ErrValidationFailed, "product id is required")
		}
		if item.Quantity <= 0 {
			return errors.Wrapf(domainerrors.ErrValidationFailed, "quantity for product %s must be positive", item.ProductID)
		}
		if item.Quantity > entity.MaxQuantity {
			return errors.Wrapf(domainerrors.ErrValidationFailed, "quantity for product %s must not exceed %d", item.ProductID, entity.MaxQuantity)
		}
	}

	return nil
}

// resolveItems looks up all items concurrently, bounded by the configured worker count.
// A miss becomes a placeholder line; any other failure aborts the whole list.
func (srv *shoppingListService) resolveItems(ctx context.Context, city string, requested []entity.ShoppingRequestItem) ([]entity.PricedItem, error) {
	items := make([]entity.PricedItem, len(requested))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(srv.workers)

	for i, item := range requested {
		g.Go(func() error {
			listing, err := srv.resolver.ResolveCheapest(gctx, item.ProductID, city)
			if errors.Is(err, repository.ErrListingNotFound) {
				items[i] = entity.NewMissingItem(item, city)

				return nil
			}
			if err != nil {
				return errors.Wrapf(err, "failed to resolve product %s", item.ProductID)
			}

			items[i] = entity.NewPricedItem(item, listing)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return items, nil
}

func omitMissing(items []entity.PricedItem) []entity.PricedItem {
	kept := make([]entity.PricedItem, 0, len(items))
	for _, item := range items {
		if item.Found {
			kept = append(kept, item)
		}
	}

	return kept
}

// ListMine returns the saved lists of the principal, newest first.
func (srv *shoppingListService) ListMine(ctx context.Context, principal *entity.Principal) ([]*entity.ShoppingList, error) {
	if principal == nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "principal is required")
	}

	lists, err := srv.shoppingListRepo.ListByUser(ctx, principal.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shopping lists")
	}

	return lists, nil
}

// Get returns a saved list to its owner or an ADMIN.
func (srv *shoppingListService) Get(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.ShoppingList, error) {
	list, err := srv.shoppingListRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrShoppingListNotFound) {
			return nil, errors.Wrap(domainerrors.ErrShoppingListNotFound, id.String())
		}

		return nil, errors.Wrap(err, "failed to find shopping list")
	}

	if !policy.AuthorizeOwnerOrRoles(principal, list.UserID, policy.UserAdmin) {
		srv.log(ctx).Warn("Shopping list access denied", slog.Any("shopping_list_id", id))

		return nil, errors.Wrap(domainerrors.ErrForbidden, "shopping list belongs to another user")
	}

	return list, nil
}

// ShareQR renders a QR code pointing at a saved list the principal may read.
func (srv *shoppingListService) ShareQR(ctx context.Context, principal *entity.Principal, id uuid.UUID) ([]byte, error) {
	list, err := srv.Get(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodeService.GenerateShoppingListQR(list.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate shopping list QR code")
	}

	return png, nil
}

// ResolveQR decodes a scanned QR payload and returns the list it points at.
func (srv *shoppingListService) ResolveQR(ctx context.Context, principal *entity.Principal, payload string) (*entity.ShoppingList, error) {
	id, err := srv.qrCodeService.ParseShoppingListQR(payload)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidQRCode, err.Error())
	}

	return srv.Get(ctx, principal, id)
}
