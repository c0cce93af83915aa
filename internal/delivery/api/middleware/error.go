// Package middleware contains the Echo middleware specific to the API server.
package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"grocery/internal/delivery/api/response"
	"grocery/internal/delivery/api/validator"
	deliverycontext "grocery/internal/delivery/context"
	domainerrors "grocery/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
		}

		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), errorDetails(err, appErr))

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c)
}

// errorDetails returns field failures for validation errors, the error's own details,
// or the context a service wrapped around the sentinel.
func errorDetails(err error, appErr domainerrors.AppError) any {
	var validationErr *validator.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Fields
	}

	if details := appErr.Details(); details != "" {
		return details
	}

	if wrapped := strings.TrimSuffix(err.Error(), ": "+appErr.Error()); wrapped != err.Error() {
		return wrapped
	}

	return nil
}
