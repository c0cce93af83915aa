package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "grocery/internal/delivery/context"
	"grocery/internal/domain/entity"
	domainerrors "grocery/internal/domain/errors"
	"grocery/internal/domain/repository"
	"grocery/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productService) Create(ctx context.Context, actor *entity.Principal, input usecase.ProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "product name is required")
	}

	product := &entity.Product{
		Name:      name,
		Category:  strings.TrimSpace(input.Category),
		Comments:  input.Comments,
		CreatedBy: actorEmail(actor),
		UpdatedBy: actorEmail(actor),
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Any("product_id", product.ID), slog.String("name", name))

	return product, nil
}

func (srv *productService) List(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *productService) Get(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, id.String())
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// Update replaces the writable fields of a product.
func (srv *productService) Update(ctx context.Context, actor *entity.Principal, id uuid.UUID, input usecase.ProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "product name is required")
	}

	product, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = name
	product.Category = strings.TrimSpace(input.Category)
	product.Comments = input.Comments
	product.UpdatedBy = actorEmail(actor)

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, id.String())
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// Delete removes a product together with its listings and returns what was removed.
func (srv *productService) Delete(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, id.String())
		}

		return nil, errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Any("product_id", id))

	return product, nil
}

func actorEmail(actor *entity.Principal) string {
	if actor == nil {
		return ""
	}

	return actor.Email
}
