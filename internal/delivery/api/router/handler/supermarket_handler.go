package handler

import (
	"grocery/internal/delivery/api/response"
	"grocery/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SupermarketHandler serves supermarket management.
type SupermarketHandler struct {
	uc usecase.SupermarketUsecase
}

// NewSupermarketHandler is the constructor for SupermarketHandler.
func NewSupermarketHandler(uc usecase.SupermarketUsecase) *SupermarketHandler {
	return &SupermarketHandler{uc: uc}
}

func (h *SupermarketHandler) Create(c echo.Context) error {
	var req supermarketRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid supermarket input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	supermarket, err := h.uc.Create(c.Request().Context(), usecase.SupermarketInput(req))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, newSupermarketResponse(supermarket))
}

func (h *SupermarketHandler) List(c echo.Context) error {
	supermarkets, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, mapSlice(supermarkets, newSupermarketResponse))
}

func (h *SupermarketHandler) Get(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	supermarket, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newSupermarketResponse(supermarket))
}

// Update applies a partial change; omitted fields keep their value.
func (h *SupermarketHandler) Update(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req supermarketRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid supermarket input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	supermarket, err := h.uc.Update(c.Request().Context(), id, usecase.SupermarketInput(req))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newSupermarketResponse(supermarket))
}

func (h *SupermarketHandler) Delete(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	supermarket, err := h.uc.Delete(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newSupermarketResponse(supermarket))
}
