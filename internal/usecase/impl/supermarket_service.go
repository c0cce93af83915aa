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

// SupermarketServiceParams holds dependencies for SupermarketService, injected by Fx.
type SupermarketServiceParams struct {
	fx.In

	SupermarketRepo repository.SupermarketRepository
	Logger          *slog.Logger
}

type supermarketService struct {
	supermarketRepo repository.SupermarketRepository
	logger          *slog.Logger
}

// NewSupermarketService is the constructor for supermarketService.
func NewSupermarketService(params SupermarketServiceParams) usecase.SupermarketUsecase {
	return &supermarketService{
		supermarketRepo: params.SupermarketRepo,
		logger:          params.Logger,
	}
}

func (srv *supermarketService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create requires a name and a city; the city is what shopping lists are priced against.
func (srv *supermarketService) Create(ctx context.Context, input usecase.SupermarketInput) (*entity.Supermarket, error) {
	supermarket := &entity.Supermarket{}
	applySupermarketInput(supermarket, input)

	if supermarket.Name == "" || supermarket.City == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "supermarket name and city are required")
	}

	if err := srv.supermarketRepo.Create(ctx, supermarket); err != nil {
		return nil, errors.Wrap(err, "failed to create supermarket")
	}

	srv.log(ctx).Info("Supermarket created", slog.Any("supermarket_id", supermarket.ID), slog.String("city", supermarket.City))

	return supermarket, nil
}

func (srv *supermarketService) List(ctx context.Context) ([]*entity.Supermarket, error) {
	supermarkets, err := srv.supermarketRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list supermarkets")
	}

	return supermarkets, nil
}

func (srv *supermarketService) Get(ctx context.Context, id uuid.UUID) (*entity.Supermarket, error) {
	supermarket, err := srv.supermarketRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSupermarketNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSupermarketNotFound, id.String())
		}

		return nil, errors.Wrap(err, "failed to find supermarket")
	}

	return supermarket, nil
}

// Update applies the non-nil fields of input.
func (srv *supermarketService) Update(ctx context.Context, id uuid.UUID, input usecase.SupermarketInput) (*entity.Supermarket, error) {
	supermarket, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	applySupermarketInput(supermarket, input)
	if supermarket.Name == "" || supermarket.City == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "supermarket name and city cannot be empty")
	}

	if err := srv.supermarketRepo.Update(ctx, supermarket); err != nil {
		if errors.Is(err, repository.ErrSupermarketNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSupermarketNotFound, id.String())
		}

		return nil, errors.Wrap(err, "failed to update supermarket")
	}

	return supermarket, nil
}

// Delete removes a supermarket together with its listings.
func (srv *supermarketService) Delete(ctx context.Context, id uuid.UUID) (*entity.Supermarket, error) {
	supermarket, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := srv.supermarketRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSupermarketNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSupermarketNotFound, id.String())
		}

		return nil, errors.Wrap(err, "failed to delete supermarket")
	}

	srv.log(ctx).Info("Supermarket deleted", slog.Any("supermarket_id", id))

	return supermarket, nil
}

func applySupermarketInput(supermarket *entity.Supermarket, input usecase.SupermarketInput) {
	if input.Name != nil {
		supermarket.Name = strings.TrimSpace(*input.Name)
	}
	if input.Comments != nil {
		supermarket.Comments = *input.Comments
	}
	if input.City != nil {
		supermarket.City = strings.TrimSpace(*input.City)
	}
}
