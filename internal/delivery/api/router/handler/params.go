// Package handler contains the HTTP handlers of the API server.
package handler

import (
	"net/url"
	"strings"

	deliverycontext "grocery/internal/delivery/context"
	"grocery/internal/domain/entity"
	domainerrors "grocery/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.Wrapf(domainerrors.ErrValidationFailed, "%s must be a UUID", name)
	}

	return id, nil
}

func emailParam(c echo.Context) (string, error) {
	email, err := url.PathUnescape(c.Param("email"))
	if err != nil || strings.TrimSpace(email) == "" {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "email path parameter is invalid")
	}

	return email, nil
}

// principal returns the authenticated caller; routes behind Authenticate always have one.
func principal(c echo.Context) (*entity.Principal, error) {
	p := deliverycontext.GetPrincipal(c)
	if p == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return p, nil
}
