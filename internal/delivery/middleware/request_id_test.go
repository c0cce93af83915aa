package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "grocery/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generates id when header is absent"},
		{name: "keeps client supplied id", incoming: "client-req-1", keep: true},
		{name: "trims client supplied id", incoming: "  trace-42 ", keep: true},
		{name: "replaces overlong id", incoming: strings.Repeat("a", maxRequestIDLength+1)},
		{name: "replaces id with spaces", incoming: "two words"},
		{name: "replaces id with control characters", incoming: "bad\x01id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&buf, nil)))

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var fromCtx string
			err := m.Process(func(c echo.Context) error {
				ctx := c.Request().Context()
				fromCtx = deliverycontext.GetRequestIDFromContext(ctx)
				deliverycontext.GetLoggerOrDefault(ctx, nil).Info("inside handler")

				return nil
			})(c)
			require.NoError(t, err)

			id := rec.Header().Get(deliverycontext.HeaderXRequestID)
			require.NotEmpty(t, id)
			if tt.keep {
				assert.Equal(t, strings.TrimSpace(tt.incoming), id)
			} else {
				assert.NotEqual(t, tt.incoming, id)
				assert.Len(t, id, 36)
			}
			assert.Equal(t, id, fromCtx)
			assert.Equal(t, id, deliverycontext.GetRequestID(c))
			assert.Contains(t, buf.String(), "request_id="+id)
		})
	}
}
