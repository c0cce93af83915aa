package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "grocery/internal/delivery/context"
	"grocery/internal/domain/entity"
	domainerrors "grocery/internal/domain/errors"
	"grocery/internal/domain/policy"
	mockSvc "grocery/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	verified := &entity.Principal{UserID: uuid.New(), Email: "v@example.com", Role: entity.RoleVerified}

	tests := []struct {
		name    string
		header  string
		setup   func(tokenSvc *mockSvc.MockTokenService)
		wantErr error
	}{
		{
			name:    "missing header",
			wantErr: domainerrors.ErrUnauthorized,
		},
		{
			name:    "not a bearer token",
			header:  "Basic dXNlcjpwYXNz",
			wantErr: domainerrors.ErrInvalidToken,
		},
		{
			name:    "empty bearer token",
			header:  "Bearer   ",
			wantErr: domainerrors.ErrInvalidToken,
		},
		{
			name:   "rejected token",
			header: "Bearer expired",
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().VerifyAccess("expired").Return(nil, domainerrors.ErrInvalidToken)
			},
			wantErr: domainerrors.ErrInvalidToken,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().VerifyAccess("good").Return(verified, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}
			m := NewAuthMiddleware(tokenSvc, discardLogger())

			c, rec := newContext(tt.header)
			err := m.Authenticate(okHandler)(c)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, deliverycontext.GetPrincipal(c))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, http.StatusNoContent, rec.Code)
			assert.Equal(t, verified, deliverycontext.GetPrincipal(c))
		})
	}
}

func TestAuthMiddleware_RequireRoles(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), discardLogger())

	tests := []struct {
		name      string
		principal *entity.Principal
		roles     entity.Roles
		wantErr   error
	}{
		{name: "no principal", roles: policy.SupermarketRead, wantErr: domainerrors.ErrUnauthorized},
		{name: "basic reads supermarkets", principal: &entity.Principal{Role: entity.RoleBasic}, roles: policy.SupermarketRead},
		{name: "basic cannot write products", principal: &entity.Principal{Role: entity.RoleBasic}, roles: policy.ProductWrite, wantErr: domainerrors.ErrForbidden},
		{name: "verified writes inventory", principal: &entity.Principal{Role: entity.RoleVerified}, roles: policy.InventoryWrite},
		{name: "verified cannot delete inventory", principal: &entity.Principal{Role: entity.RoleVerified}, roles: policy.InventoryDelete, wantErr: domainerrors.ErrForbidden},
		{name: "admin deletes inventory", principal: &entity.Principal{Role: entity.RoleAdmin}, roles: policy.InventoryDelete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext("")
			if tt.principal != nil {
				deliverycontext.SetPrincipal(c, tt.principal)
			}

			err := m.RequireRoles(tt.roles)(okHandler)(c)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, http.StatusNoContent, rec.Code)
		})
	}
}
