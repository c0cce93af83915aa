package handler

import (
	"net/http"
	"testing"

	"grocery/internal/domain/entity"
	domainerrors "grocery/internal/domain/errors"
	mockUsecase "grocery/internal/mocks/usecase"
	"grocery/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInventoryHandler_Create(t *testing.T) {
	p := testPrincipal(entity.RoleVerified)
	productID, supermarketID := uuid.New(), uuid.New()

	invUC := mockUsecase.NewMockInventoryUsecase(t)
	invUC.EXPECT().
		Create(mock.Anything, p, mock.MatchedBy(func(in usecase.CreateListingInput) bool {
			return in.ProductID == productID &&
				in.SupermarketID == supermarketID &&
				in.Price.Equal(decimal.RequireFromString("2.5")) &&
				in.InStock == nil
		})).
		Return(&entity.Listing{
			ProductID:       productID,
			SupermarketID:   supermarketID,
			ProductName:     "Milk",
			SupermarketName: "Corner",
			City:            "Lisbon",
			Price:           decimal.RequireFromString("2.5"),
			InStock:         true,
			CreatedBy:       p.Email,
		}, nil)

	e := newTestEcho(p)
	e.POST("/api/v1/inventory", NewInventoryHandler(invUC).Create)

	rec := serve(e, http.MethodPost, "/api/v1/inventory",
		`{"product_id":"`+productID.String()+`","supermarket_id":"`+supermarketID.String()+`","price":"2.5"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	got := decodeData[listingResponse](t, rec)
	assert.Equal(t, "2.50", got.Price)
	assert.True(t, got.InStock)
	assert.Equal(t, p.Email, got.CreatedBy)
}

func TestInventoryHandler_Create_Invalid(t *testing.T) {
	productID, supermarketID := uuid.NewString(), uuid.NewString()

	tests := []struct {
		name string
		body string
	}{
		{name: "missing price", body: `{"product_id":"` + productID + `","supermarket_id":"` + supermarketID + `"}`},
		{name: "negative price", body: `{"product_id":"` + productID + `","supermarket_id":"` + supermarketID + `","price":"-1"}`},
		{name: "missing supermarket", body: `{"product_id":"` + productID + `","price":"1"}`},
		{name: "price not a number", body: `{"product_id":"` + productID + `","supermarket_id":"` + supermarketID + `","price":"cheap"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(testPrincipal(entity.RoleVerified))
			e.POST("/api/v1/inventory", NewInventoryHandler(mockUsecase.NewMockInventoryUsecase(t)).Create)

			rec := serve(e, http.MethodPost, "/api/v1/inventory", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestInventoryHandler_Create_Duplicate(t *testing.T) {
	invUC := mockUsecase.NewMockInventoryUsecase(t)
	invUC.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrListingAlreadyExists, "listing exists"))

	e := newTestEcho(testPrincipal(entity.RoleVerified))
	e.POST("/api/v1/inventory", NewInventoryHandler(invUC).Create)

	rec := serve(e, http.MethodPost, "/api/v1/inventory",
		`{"product_id":"`+uuid.NewString()+`","supermarket_id":"`+uuid.NewString()+`","price":"1.00"}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "LISTING_ALREADY_EXISTS", decode(t, rec).Error.Code)
}

func TestInventoryHandler_List(t *testing.T) {
	productID := uuid.New()

	t.Run("all listings", func(t *testing.T) {
		invUC := mockUsecase.NewMockInventoryUsecase(t)
		invUC.EXPECT().List(mock.Anything).Return([]*entity.Listing{
			{ProductID: uuid.New(), Price: decimal.RequireFromString("1")},
			{ProductID: uuid.New(), Price: decimal.RequireFromString("2")},
		}, nil)

		e := newTestEcho(nil)
		e.GET("/api/v1/inventory", NewInventoryHandler(invUC).List)

		rec := serve(e, http.MethodGet, "/api/v1/inventory", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeData[[]listingResponse](t, rec), 2)
	})

	t.Run("filtered by product", func(t *testing.T) {
		invUC := mockUsecase.NewMockInventoryUsecase(t)
		invUC.EXPECT().ListByProduct(mock.Anything, productID).Return([]*entity.Listing{
			{ProductID: productID, Price: decimal.RequireFromString("1.2")},
		}, nil)

		e := newTestEcho(nil)
		e.GET("/api/v1/inventory", NewInventoryHandler(invUC).List)

		rec := serve(e, http.MethodGet, "/api/v1/inventory?product_id="+productID.String(), "")

		require.Equal(t, http.StatusOK, rec.Code)
		got := decodeData[[]listingResponse](t, rec)
		require.Len(t, got, 1)
		assert.Equal(t, "1.20", got[0].Price)
	})

	t.Run("bad product id", func(t *testing.T) {
		e := newTestEcho(nil)
		e.GET("/api/v1/inventory", NewInventoryHandler(mockUsecase.NewMockInventoryUsecase(t)).List)

		rec := serve(e, http.MethodGet, "/api/v1/inventory?product_id=milk", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestInventoryHandler_Update(t *testing.T) {
	p := testPrincipal(entity.RoleVerified)
	productID, supermarketID := uuid.New(), uuid.New()
	inStock := false

	invUC := mockUsecase.NewMockInventoryUsecase(t)
	invUC.EXPECT().
		Update(mock.Anything, p, supermarketID, productID, mock.MatchedBy(func(in usecase.UpdateListingInput) bool {
			return in.Price == nil && in.InStock != nil && *in.InStock == inStock
		})).
		Return(&entity.Listing{ProductID: productID, SupermarketID: supermarketID, Price: decimal.RequireFromString("3")}, nil)

	e := newTestEcho(p)
	e.PATCH("/api/v1/inventory/:supermarketId/:productId", NewInventoryHandler(invUC).Update)

	rec := serve(e, http.MethodPatch, "/api/v1/inventory/"+supermarketID.String()+"/"+productID.String(), `{"in_stock":false}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3.00", decodeData[listingResponse](t, rec).Price)
}

func TestInventoryHandler_Delete(t *testing.T) {
	p := testPrincipal(entity.RoleAdmin)
	productID, supermarketID := uuid.New(), uuid.New()

	t.Run("not found", func(t *testing.T) {
		invUC := mockUsecase.NewMockInventoryUsecase(t)
		invUC.EXPECT().Delete(mock.Anything, p, supermarketID, productID).
			Return(nil, errors.Wrap(domainerrors.ErrListingNotFound, productID.String()))

		e := newTestEcho(p)
		e.DELETE("/api/v1/inventory/:supermarketId/:productId", NewInventoryHandler(invUC).Delete)

		rec := serve(e, http.MethodDelete, "/api/v1/inventory/"+supermarketID.String()+"/"+productID.String(), "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad supermarket id", func(t *testing.T) {
		e := newTestEcho(p)
		e.DELETE("/api/v1/inventory/:supermarketId/:productId", NewInventoryHandler(mockUsecase.NewMockInventoryUsecase(t)).Delete)

		rec := serve(e, http.MethodDelete, "/api/v1/inventory/nope/"+productID.String(), "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
