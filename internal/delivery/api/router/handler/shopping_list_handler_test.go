package handler

import (
	"net/http"
	"strconv"
	"testing"
	"time"

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

func TestShoppingListHandler_Build(t *testing.T) {
	p := testPrincipal(entity.RoleBasic)
	milk, bread := uuid.New(), uuid.New()
	store := uuid.New()
	listID := uuid.New()

	found := entity.NewPricedItem(
		entity.ShoppingRequestItem{ProductID: milk, Quantity: 3},
		&entity.Listing{ProductID: milk, SupermarketID: store, Price: decimal.RequireFromString("0.1"), ProductName: "Milk", SupermarketName: "Corner"},
	)
	missing := entity.NewMissingItem(entity.ShoppingRequestItem{ProductID: bread, Quantity: 1}, "Lisbon")

	listUC := mockUsecase.NewMockShoppingListUsecase(t)
	listUC.EXPECT().
		BuildList(mock.Anything, p, usecase.BuildListInput{
			City: "Lisbon",
			Items: []entity.ShoppingRequestItem{
				{ProductID: milk, Quantity: 3},
				{ProductID: bread, Quantity: 1},
			},
		}).
		Return(&entity.ShoppingList{
			ID:        listID,
			UserID:    p.UserID,
			UserEmail: p.Email,
			City:      "Lisbon",
			Items:     []entity.PricedItem{found, missing},
			Total:     entity.Total([]entity.PricedItem{found, missing}),
			CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		}, nil)

	e := newTestEcho(p)
	e.POST("/api/v1/shopping-lists", NewShoppingListHandler(listUC).Build)

	rec := serve(e, http.MethodPost, "/api/v1/shopping-lists",
		`{"city":"Lisbon","shopping_items":[{"product_id":"`+milk.String()+`","quantity":3},{"product_id":"`+bread.String()+`","quantity":1}]}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	got := decodeData[shoppingListResponse](t, rec)
	require.NotNil(t, got.ID)
	assert.Equal(t, listID, *got.ID)
	assert.Equal(t, "0.30", got.Total)
	require.Len(t, got.Items, 2)

	assert.Equal(t, "Milk", got.Items[0].ProductName)
	assert.Equal(t, "0.10", got.Items[0].LowestPrice)
	assert.Equal(t, "0.30", got.Items[0].Subtotal)
	require.NotNil(t, got.Items[0].SupermarketID)
	assert.Equal(t, store, *got.Items[0].SupermarketID)

	assert.False(t, got.Items[1].Found)
	assert.Nil(t, got.Items[1].SupermarketID)
	assert.Equal(t, "N/A", got.Items[1].SupermarketName)
	assert.Equal(t, "0.00", got.Items[1].Subtotal)
}

func TestShoppingListHandler_Build_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing city", body: `{"shopping_items":[{"product_id":"` + uuid.NewString() + `","quantity":1}]}`},
		{name: "no items", body: `{"city":"Lisbon","shopping_items":[]}`},
		{name: "zero quantity", body: `{"city":"Lisbon","shopping_items":[{"product_id":"` + uuid.NewString() + `","quantity":0}]}`},
		{name: "quantity above column range", body: `{"city":"Lisbon","shopping_items":[{"product_id":"` + uuid.NewString() + `","quantity":3000000000}]}`},
		{name: "bad product id", body: `{"city":"Lisbon","shopping_items":[{"product_id":"milk","quantity":1}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(testPrincipal(entity.RoleBasic))
			e.POST("/api/v1/shopping-lists", NewShoppingListHandler(mockUsecase.NewMockShoppingListUsecase(t)).Build)

			rec := serve(e, http.MethodPost, "/api/v1/shopping-lists", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestShoppingListHandler_Build_StoreUnavailable(t *testing.T) {
	listUC := mockUsecase.NewMockShoppingListUsecase(t)
	listUC.EXPECT().BuildList(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrStoreUnavailable, "connection refused"))

	e := newTestEcho(testPrincipal(entity.RoleBasic))
	e.POST("/api/v1/shopping-lists", NewShoppingListHandler(listUC).Build)

	rec := serve(e, http.MethodPost, "/api/v1/shopping-lists",
		`{"city":"Lisbon","shopping_items":[{"product_id":"`+uuid.NewString()+`","quantity":1}]}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestShoppingListHandler_Get_Forbidden(t *testing.T) {
	p := testPrincipal(entity.RoleVerified)
	id := uuid.New()

	listUC := mockUsecase.NewMockShoppingListUsecase(t)
	listUC.EXPECT().Get(mock.Anything, p, id).Return(nil, errors.Wrap(domainerrors.ErrForbidden, "shopping list belongs to another user"))

	e := newTestEcho(p)
	e.GET("/api/v1/shopping-lists/:id", NewShoppingListHandler(listUC).Get)

	rec := serve(e, http.MethodGet, "/api/v1/shopping-lists/"+id.String(), "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestShoppingListHandler_QRCode(t *testing.T) {
	p := testPrincipal(entity.RoleBasic)
	id := uuid.New()
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	listUC := mockUsecase.NewMockShoppingListUsecase(t)
	listUC.EXPECT().ShareQR(mock.Anything, p, id).Return(png, nil)

	e := newTestEcho(p)
	e.GET("/api/v1/shopping-lists/:id/qr", NewShoppingListHandler(listUC).QRCode)

	rec := serve(e, http.MethodGet, "/api/v1/shopping-lists/"+id.String()+"/qr", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestShoppingListHandler_QRCode_BadID(t *testing.T) {
	e := newTestEcho(testPrincipal(entity.RoleBasic))
	e.GET("/api/v1/shopping-lists/:id/qr", NewShoppingListHandler(mockUsecase.NewMockShoppingListUsecase(t)).QRCode)

	rec := serve(e, http.MethodGet, "/api/v1/shopping-lists/not-a-uuid/qr", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShoppingListHandler_ResolveQR(t *testing.T) {
	p := testPrincipal(entity.RoleBasic)
	payload := `{"type":"shopping_list","shopping_list_id":"` + uuid.NewString() + `"}`

	listUC := mockUsecase.NewMockShoppingListUsecase(t)
	listUC.EXPECT().ResolveQR(mock.Anything, p, payload).Return(&entity.ShoppingList{
		ID:    uuid.New(),
		City:  "Lisbon",
		Total: decimal.Zero,
	}, nil)

	e := newTestEcho(p)
	e.POST("/api/v1/shopping-lists/qr", NewShoppingListHandler(listUC).ResolveQR)

	body := `{"payload":` + strconv.Quote(payload) + `}`
	rec := serve(e, http.MethodPost, "/api/v1/shopping-lists/qr", body)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[shoppingListResponse](t, rec)
	assert.Equal(t, "0.00", got.Total)
	assert.Empty(t, got.Items)
}

func TestShoppingListHandler_ListMine(t *testing.T) {
	p := testPrincipal(entity.RoleBasic)

	listUC := mockUsecase.NewMockShoppingListUsecase(t)
	listUC.EXPECT().ListMine(mock.Anything, p).Return([]*entity.ShoppingList{
		{ID: uuid.New(), City: "Lisbon", Total: decimal.RequireFromString("4.5")},
	}, nil)

	e := newTestEcho(p)
	e.GET("/api/v1/shopping-lists", NewShoppingListHandler(listUC).ListMine)

	rec := serve(e, http.MethodGet, "/api/v1/shopping-lists", "")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[[]shoppingListResponse](t, rec)
	require.Len(t, got, 1)
	assert.Equal(t, "4.50", got[0].Total)
}
