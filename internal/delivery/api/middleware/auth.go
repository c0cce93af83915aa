package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "grocery/internal/delivery/context"
	"grocery/internal/domain/entity"
	domainerrors "grocery/internal/domain/errors"
	"grocery/internal/domain/policy"
	"grocery/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication and role checks.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the bearer access token and stores its principal on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return errors.Wrap(domainerrors.ErrUnauthorized, "authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || strings.TrimSpace(tokenString) == "" {
			return errors.Wrap(domainerrors.ErrInvalidToken, "authorization header must be a bearer token")
		}

		principal, err := m.tokenSvc.VerifyAccess(strings.TrimSpace(tokenString))
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Access token rejected", slog.Any("error", err))

			return errors.Wrap(domainerrors.ErrInvalidToken, "access token rejected")
		}

		deliverycontext.SetPrincipal(c, principal)

		return next(c)
	}
}

// RequireRoles admits principals holding one of roles. It must run after Authenticate.
func (m *AuthMiddleware) RequireRoles(roles entity.Roles) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := deliverycontext.GetPrincipal(c)
			if principal == nil {
				return errors.Wrap(domainerrors.ErrUnauthorized, "principal missing from context")
			}

			if !policy.Authorize(principal, roles) {
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Warn("Role check failed",
					slog.String("role", principal.Role.String()),
					slog.Any("required", roles.ToStrings()),
					slog.String("path", c.Path()),
				)

				return errors.Wrapf(domainerrors.ErrForbidden, "requires one of %s", strings.Join(roles.ToStrings(), ", "))
			}

			return next(c)
		}
	}
}
