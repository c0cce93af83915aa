package impl

import (
	"context"
	"errors"
	"testing"

	deliverycontext "grocery/internal/delivery/context"
	"grocery/internal/domain/entity"
	domainerrors "grocery/internal/domain/errors"
	"grocery/internal/domain/repository"
	"grocery/internal/domain/service"
	mockRepo "grocery/internal/mocks/repository"
	mockSvc "grocery/internal/mocks/service"
	"grocery/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type inventoryMocks struct {
	txManager   *mockRepo.MockTransactionManager
	listingRepo *mockRepo.MockListingRepository
	publisher   *mockSvc.MockEventPublisher
}

func newInventoryService(t *testing.T) (usecase.InventoryUsecase, *inventoryMocks) {
	t.Helper()

	m := &inventoryMocks{
		txManager:   mockRepo.NewMockTransactionManager(t),
		listingRepo: mockRepo.NewMockListingRepository(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}

	srv := NewInventoryService(InventoryServiceParams{
		TxManager:   m.txManager,
		ListingRepo: m.listingRepo,
		Publisher:   m.publisher,
		Logger:      newDiscardLogger(),
	})

	return srv, m
}

func clerk() *entity.Principal {
	return &entity.Principal{UserID: uuid.New(), Email: "clerk@example.com", Role: entity.RoleVerified}
}

func TestInventoryService_Create_PublishesEvent(t *testing.T) {
	srv, m := newInventoryService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
	productID, supermarketID := uuid.New(), uuid.New()
	stored := &entity.Listing{
		ProductID:     productID,
		SupermarketID: supermarketID,
		Price:         decimal.RequireFromString("2.50"),
		InStock:       true,
		City:          "Springfield",
		UpdatedBy:     "clerk@example.com",
	}

	m.listingRepo.EXPECT().Create(ctx, mock.MatchedBy(func(l *entity.Listing) bool {
		return l.InStock && l.CreatedBy == "clerk@example.com"
	})).Return(nil)
	m.listingRepo.EXPECT().Find(ctx, supermarketID, productID).Return(stored, nil)
	m.publisher.EXPECT().PublishPriceChange(ctx, mock.MatchedBy(func(e *service.PriceChangeEvent) bool {
		return e.RequestID == "req-1" && e.NewPrice == "2.50" && e.OldPrice == "" && e.City == "Springfield"
	})).Return(nil)

	listing, err := srv.Create(ctx, clerk(), usecase.CreateListingInput{
		ProductID:     productID,
		SupermarketID: supermarketID,
		Price:         decimal.RequireFromString("2.5"),
	})

	require.NoError(t, err)
	assert.Equal(t, stored, listing)
}

func TestInventoryService_Create_Errors(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "duplicate pair", repoErr: repository.ErrListingAlreadyExists, wantErr: domainerrors.ErrListingAlreadyExists},
		{name: "unknown reference", repoErr: repository.ErrListingReferenceNotFound, wantErr: domainerrors.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newInventoryService(t)
			ctx := context.Background()

			m.listingRepo.EXPECT().Create(ctx, mock.Anything).Return(tt.repoErr)

			_, err := srv.Create(ctx, clerk(), usecase.CreateListingInput{
				ProductID:     uuid.New(),
				SupermarketID: uuid.New(),
				Price:         decimal.RequireFromString("1.00"),
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestInventoryService_Create_NegativePrice(t *testing.T) {
	srv, _ := newInventoryService(t)

	_, err := srv.Create(context.Background(), clerk(), usecase.CreateListingInput{
		ProductID:     uuid.New(),
		SupermarketID: uuid.New(),
		Price:         decimal.RequireFromString("-0.01"),
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func expectListingTx(t *testing.T, m *inventoryMocks) {
	t.Helper()

	m.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().ListingRepo().Return(m.listingRepo)

			return fn(factory)
		})
}

func TestInventoryService_Update_PublishFailureDoesNotFail(t *testing.T) {
	srv, m := newInventoryService(t)
	ctx := context.Background()
	productID, supermarketID := uuid.New(), uuid.New()
	existing := &entity.Listing{ProductID: productID, SupermarketID: supermarketID, Price: decimal.RequireFromString("3.00"), InStock: true}
	newPrice := decimal.RequireFromString("2.75")

	expectListingTx(t, m)
	m.listingRepo.EXPECT().Find(ctx, supermarketID, productID).Return(existing, nil)
	m.listingRepo.EXPECT().Update(ctx, existing).Return(nil)
	m.publisher.EXPECT().PublishPriceChange(ctx, mock.MatchedBy(func(e *service.PriceChangeEvent) bool {
		return e.OldPrice == "3.00" && e.NewPrice == "2.75"
	})).Return(errors.New("broker down"))

	updated, err := srv.Update(ctx, clerk(), supermarketID, productID, usecase.UpdateListingInput{Price: &newPrice})

	require.NoError(t, err)
	assert.Equal(t, "2.75", updated.Price.StringFixed(2))
	assert.Equal(t, "clerk@example.com", updated.UpdatedBy)
}

func TestInventoryService_Update_NoChangeNoEvent(t *testing.T) {
	srv, m := newInventoryService(t)
	ctx := context.Background()
	productID, supermarketID := uuid.New(), uuid.New()
	existing := &entity.Listing{ProductID: productID, SupermarketID: supermarketID, Price: decimal.RequireFromString("3.00"), InStock: true}
	inStock := true

	expectListingTx(t, m)
	m.listingRepo.EXPECT().Find(ctx, supermarketID, productID).Return(existing, nil)
	m.listingRepo.EXPECT().Update(ctx, existing).Return(nil)

	_, err := srv.Update(ctx, clerk(), supermarketID, productID, usecase.UpdateListingInput{InStock: &inStock})

	require.NoError(t, err)
}

func TestInventoryService_Update_NotFound(t *testing.T) {
	srv, m := newInventoryService(t)
	ctx := context.Background()
	productID, supermarketID := uuid.New(), uuid.New()

	expectListingTx(t, m)
	m.listingRepo.EXPECT().Find(ctx, supermarketID, productID).Return(nil, repository.ErrListingNotFound)

	_, err := srv.Update(ctx, clerk(), supermarketID, productID, usecase.UpdateListingInput{})

	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)
}

func TestInventoryService_Delete(t *testing.T) {
	srv, m := newInventoryService(t)
	ctx := context.Background()
	productID, supermarketID := uuid.New(), uuid.New()
	existing := &entity.Listing{ProductID: productID, SupermarketID: supermarketID, Price: decimal.RequireFromString("1.10"), InStock: true}

	m.listingRepo.EXPECT().Find(ctx, supermarketID, productID).Return(existing, nil)
	m.listingRepo.EXPECT().Delete(ctx, supermarketID, productID).Return(nil)
	m.publisher.EXPECT().PublishPriceChange(ctx, mock.MatchedBy(func(e *service.PriceChangeEvent) bool {
		return e.OldPrice == "1.10" && e.NewPrice == "" && !e.InStock
	})).Return(nil)

	deleted, err := srv.Delete(ctx, &entity.Principal{Email: "admin@example.com", Role: entity.RoleAdmin}, supermarketID, productID)

	require.NoError(t, err)
	assert.Equal(t, existing, deleted)
}

func TestInventoryService_ListByProduct(t *testing.T) {
	srv, m := newInventoryService(t)
	ctx := context.Background()
	productID := uuid.New()
	listings := []*entity.Listing{{ProductID: productID}}

	m.listingRepo.EXPECT().FindListings(ctx, repository.ListingFilter{ProductID: productID}).Return(listings, nil)

	got, err := srv.ListByProduct(ctx, productID)

	require.NoError(t, err)
	assert.Equal(t, listings, got)
}
