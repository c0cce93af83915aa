package impl

import (
	"context"
	"testing"

	"grocery/internal/domain/entity"
	domainerrors "grocery/internal/domain/errors"
	"grocery/internal/domain/repository"
	mockRepo "grocery/internal/mocks/repository"
	"grocery/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductService_Create_SetsAudit(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	srv := NewProductService(ProductServiceParams{ProductRepo: productRepo, Logger: newDiscardLogger()})
	ctx := context.Background()
	actor := &entity.Principal{UserID: uuid.New(), Email: "clerk@example.com", Role: entity.RoleVerified}

	productRepo.EXPECT().Create(ctx, mock.MatchedBy(func(p *entity.Product) bool {
		return p.Name == "Milk" && p.CreatedBy == "clerk@example.com" && p.UpdatedBy == "clerk@example.com"
	})).Return(nil)

	product, err := srv.Create(ctx, actor, usecase.ProductInput{Name: " Milk ", Category: "Dairy"})

	require.NoError(t, err)
	assert.Equal(t, "Dairy", product.Category)
}

func TestProductService_Create_RequiresName(t *testing.T) {
	srv := NewProductService(ProductServiceParams{ProductRepo: mockRepo.NewMockProductRepository(t), Logger: newDiscardLogger()})

	_, err := srv.Create(context.Background(), nil, usecase.ProductInput{Name: "  "})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductService_Update(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	srv := NewProductService(ProductServiceParams{ProductRepo: productRepo, Logger: newDiscardLogger()})
	ctx := context.Background()
	existing := &entity.Product{ID: uuid.New(), Name: "Milk", CreatedBy: "first@example.com"}
	actor := &entity.Principal{Email: "second@example.com", Role: entity.RoleAdmin}

	productRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	productRepo.EXPECT().Update(ctx, existing).Return(nil)

	updated, err := srv.Update(ctx, actor, existing.ID, usecase.ProductInput{Name: "Oat Milk", Category: "Dairy"})

	require.NoError(t, err)
	assert.Equal(t, "Oat Milk", updated.Name)
	assert.Equal(t, "first@example.com", updated.CreatedBy)
	assert.Equal(t, "second@example.com", updated.UpdatedBy)
}

func TestProductService_Get_NotFound(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	srv := NewProductService(ProductServiceParams{ProductRepo: productRepo, Logger: newDiscardLogger()})
	ctx := context.Background()
	id := uuid.New()

	productRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProductNotFound).Once()

	_, err := srv.Get(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)

	productRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProductNotFound).Once()

	_, err = srv.Delete(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_Delete_ReturnsRemoved(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	srv := NewProductService(ProductServiceParams{ProductRepo: productRepo, Logger: newDiscardLogger()})
	ctx := context.Background()
	existing := &entity.Product{ID: uuid.New(), Name: "Milk"}

	productRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	productRepo.EXPECT().Delete(ctx, existing.ID).Return(nil)

	deleted, err := srv.Delete(ctx, existing.ID)

	require.NoError(t, err)
	assert.Equal(t, existing, deleted)
}

func strPtr(s string) *string { return &s }

func TestSupermarketService_Create(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.SupermarketInput
		wantErr error
	}{
		{name: "valid", input: usecase.SupermarketInput{Name: strPtr("Corner Market"), City: strPtr(" Springfield ")}},
		{name: "missing city", input: usecase.SupermarketInput{Name: strPtr("Corner Market")}, wantErr: domainerrors.ErrValidationFailed},
		{name: "missing name", input: usecase.SupermarketInput{City: strPtr("Springfield")}, wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			supermarketRepo := mockRepo.NewMockSupermarketRepository(t)
			srv := NewSupermarketService(SupermarketServiceParams{SupermarketRepo: supermarketRepo, Logger: newDiscardLogger()})
			ctx := context.Background()

			if tt.wantErr == nil {
				supermarketRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Supermarket")).Return(nil)
			}

			supermarket, err := srv.Create(ctx, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Springfield", supermarket.City)
		})
	}
}

func TestSupermarketService_Update_Partial(t *testing.T) {
	supermarketRepo := mockRepo.NewMockSupermarketRepository(t)
	srv := NewSupermarketService(SupermarketServiceParams{SupermarketRepo: supermarketRepo, Logger: newDiscardLogger()})
	ctx := context.Background()
	existing := &entity.Supermarket{ID: uuid.New(), Name: "Corner Market", City: "Springfield"}

	supermarketRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	supermarketRepo.EXPECT().Update(ctx, existing).Return(nil)

	updated, err := srv.Update(ctx, existing.ID, usecase.SupermarketInput{Comments: strPtr("open late")})

	require.NoError(t, err)
	assert.Equal(t, "Corner Market", updated.Name)
	assert.Equal(t, "Springfield", updated.City)
	assert.Equal(t, "open late", updated.Comments)
}

func TestSupermarketService_Get_NotFound(t *testing.T) {
	supermarketRepo := mockRepo.NewMockSupermarketRepository(t)
	srv := NewSupermarketService(SupermarketServiceParams{SupermarketRepo: supermarketRepo, Logger: newDiscardLogger()})
	ctx := context.Background()
	id := uuid.New()

	supermarketRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrSupermarketNotFound)

	_, err := srv.Get(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrSupermarketNotFound)
}
