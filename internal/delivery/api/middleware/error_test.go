package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"grocery/internal/delivery/api/response"
	"grocery/internal/delivery/api/validator"
	deliverycontext "grocery/internal/delivery/context"
	domainerrors "grocery/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetails any
	}{
		{
			name:        "wrapped app error exposes context",
			err:         errors.Wrap(domainerrors.ErrValidationFailed, "city is required"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantMessage: "input validation failed",
			wantDetails: "city is required",
		},
		{
			name:        "bare app error",
			err:         domainerrors.ErrProductNotFound,
			wantStatus:  http.StatusNotFound,
			wantCode:    "PRODUCT_NOT_FOUND",
			wantMessage: "product not found",
		},
		{
			name:        "forbidden hides details",
			err:         errors.Wrap(domainerrors.ErrForbidden, "shopping list belongs to another user"),
			wantStatus:  http.StatusForbidden,
			wantCode:    "FORBIDDEN",
			wantMessage: "access denied",
		},
		{
			name:        "refresh mismatch looks like any invalid token",
			err:         domainerrors.ErrRefreshMismatch,
			wantStatus:  http.StatusUnauthorized,
			wantCode:    "INVALID_TOKEN",
			wantMessage: "invalid or expired token",
		},
		{
			name:        "server error hides details",
			err:         errors.Wrap(domainerrors.ErrStoreUnavailable, "dial tcp 10.0.0.1:6379: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "STORE_UNAVAILABLE",
			wantMessage: "internal server error",
		},
		{
			name: "validation fields",
			err: &validator.ValidationError{Fields: []validator.FieldError{
				{Field: "shopping_items[0].quantity", Rule: "gt", Param: "0"},
			}},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantMessage: "input validation failed",
			wantDetails: []any{map[string]any{"field": "shopping_items[0].quantity", "rule": "gt", "param": "0"}},
		},
		{
			name:        "echo http error",
			err:         echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			wantStatus:  http.StatusMethodNotAllowed,
			wantCode:    "HTTP_ERROR",
			wantMessage: "Method Not Allowed",
		},
		{
			name:        "unknown error",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: "Internal server error, please try again later",
		},
	}

	m := NewErrorMiddleware(discardLogger())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			deliverycontext.SetRequestID(c, "req-1")

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body struct {
				Error struct {
					Code    string `json:"code"`
					Message string `json:"message"`
					Details any    `json:"details"`
				} `json:"error"`
				Meta response.MetaInfo `json:"meta"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantMessage, body.Error.Message)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.Equal(t, "req-1", body.Meta.RequestID)
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	NewErrorMiddleware(discardLogger()).HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, "done", rec.Body.String())
}
