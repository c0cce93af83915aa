package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"grocery/config"
	"grocery/internal/delivery/api/middleware"
	"grocery/internal/delivery/api/router"
	"grocery/internal/delivery/api/router/handler"
	deliverycontext "grocery/internal/delivery/context"
	"grocery/internal/domain/entity"
	domainerrors "grocery/internal/domain/errors"
	mockSvc "grocery/internal/mocks/service"
	mockUsecase "grocery/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	echo         *echo.Echo
	tokens       *mockSvc.MockTokenService
	products     *mockUsecase.MockProductUsecase
	supermarkets *mockUsecase.MockSupermarketUsecase
	inventory    *mockUsecase.MockInventoryUsecase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	ts := &testServer{
		tokens:       mockSvc.NewMockTokenService(t),
		products:     mockUsecase.NewMockProductUsecase(t),
		supermarkets: mockUsecase.NewMockSupermarketUsecase(t),
		inventory:    mockUsecase.NewMockInventoryUsecase(t),
	}

	ts.echo = newEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		AuthHandler:         handler.NewAuthHandler(mockUsecase.NewMockSessionUsecase(t), logger),
		UserHandler:         handler.NewUserHandler(mockUsecase.NewMockUserUsecase(t), logger),
		ProductHandler:      handler.NewProductHandler(ts.products),
		SupermarketHandler:  handler.NewSupermarketHandler(ts.supermarkets),
		InventoryHandler:    handler.NewInventoryHandler(ts.inventory),
		ShoppingListHandler: handler.NewShoppingListHandler(mockUsecase.NewMockShoppingListUsecase(t)),
		HealthHandler:       handler.NewHealthHandler(handler.HealthHandlerParams{Logger: logger}),
		AuthMiddleware:      middleware.NewAuthMiddleware(ts.tokens, logger),
	}).RegisterRoutes(ts.echo)

	return ts
}

func (ts *testServer) do(method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	return rec
}

func (ts *testServer) tokenFor(role entity.Role) string {
	token := "token-" + strings.ToLower(role.String())
	ts.tokens.EXPECT().VerifyAccess(token).
		Return(&entity.Principal{UserID: uuid.New(), Email: "shopper@example.com", Role: role}, nil).
		Maybe()

	return token
}

func TestServer_Health(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/health", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestServer_EchoesClientRequestID(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_PublicCatalog(t *testing.T) {
	ts := newTestServer(t)
	ts.products.EXPECT().List(mock.Anything).Return([]*entity.Product{{ID: uuid.New(), Name: "Milk"}}, nil)

	rec := ts.do(http.MethodGet, "/api/v1/products", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Milk")
}

func TestServer_AccessControl(t *testing.T) {
	listingPath := "/api/v1/inventory/" + uuid.NewString() + "/" + uuid.NewString()

	tests := []struct {
		name     string
		method   string
		path     string
		role     entity.Role
		body     string
		setup    func(ts *testServer)
		wantCode int
		wantErr  string
	}{
		{
			name:     "supermarket list without token",
			method:   http.MethodGet,
			path:     "/api/v1/supermarkets",
			wantCode: http.StatusUnauthorized,
			wantErr:  "UNAUTHORIZED",
		},
		{
			name:     "basic user reads supermarkets",
			method:   http.MethodGet,
			path:     "/api/v1/supermarkets",
			role:     entity.RoleBasic,
			setup:    func(ts *testServer) { ts.supermarkets.EXPECT().List(mock.Anything).Return(nil, nil) },
			wantCode: http.StatusOK,
		},
		{
			name:     "verified user cannot create supermarket",
			method:   http.MethodPost,
			path:     "/api/v1/supermarkets",
			role:     entity.RoleVerified,
			body:     `{"name":"Corner","city":"Lisbon"}`,
			wantCode: http.StatusForbidden,
			wantErr:  "FORBIDDEN",
		},
		{
			name:   "admin creates supermarket",
			method: http.MethodPost,
			path:   "/api/v1/supermarkets",
			role:   entity.RoleAdmin,
			body:   `{"name":"Corner","city":"Lisbon"}`,
			setup: func(ts *testServer) {
				ts.supermarkets.EXPECT().Create(mock.Anything, mock.Anything).
					Return(&entity.Supermarket{ID: uuid.New(), Name: "Corner", City: "Lisbon"}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:     "basic user cannot create product",
			method:   http.MethodPost,
			path:     "/api/v1/products",
			role:     entity.RoleBasic,
			body:     `{"name":"Milk"}`,
			wantCode: http.StatusForbidden,
		},
		{
			name:     "verified user cannot delete listing",
			method:   http.MethodDelete,
			path:     listingPath,
			role:     entity.RoleVerified,
			wantCode: http.StatusForbidden,
		},
		{
			name:   "admin deletes listing",
			method: http.MethodDelete,
			path:   listingPath,
			role:   entity.RoleAdmin,
			setup: func(ts *testServer) {
				ts.inventory.EXPECT().Delete(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(nil, domainerrors.ErrListingNotFound)
			},
			wantCode: http.StatusNotFound,
			wantErr:  "LISTING_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			if tt.setup != nil {
				tt.setup(ts)
			}

			var token string
			if tt.role != "" {
				token = ts.tokenFor(tt.role)
			}

			rec := ts.do(tt.method, tt.path, token, tt.body)

			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantErr != "" {
				assert.Contains(t, rec.Body.String(), `"code":"`+tt.wantErr+`"`)
			}
		})
	}
}

func TestServer_RejectsBadToken(t *testing.T) {
	ts := newTestServer(t)
	ts.tokens.EXPECT().VerifyAccess("forged").Return(nil, domainerrors.ErrInvalidToken)

	rec := ts.do(http.MethodGet, "/api/v1/inventory", "forged", "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"INVALID_TOKEN"`)
}
