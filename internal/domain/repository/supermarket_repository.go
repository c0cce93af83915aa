package repository

import (
	"context"
	"errors"

	"grocery/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSupermarketNotFound is returned when a supermarket is not found.
var ErrSupermarketNotFound = errors.New("supermarket not found")

// SupermarketRepository persists supermarkets.
type SupermarketRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Supermarket, error)
	List(ctx context.Context) ([]*entity.Supermarket, error)
	Create(ctx context.Context, supermarket *entity.Supermarket) error
	Update(ctx context.Context, supermarket *entity.Supermarket) error
	Delete(ctx context.Context, id uuid.UUID) error
}
