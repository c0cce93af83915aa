package handler

import (
	"net/http"

	"grocery/internal/delivery/api/response"
	"grocery/internal/domain/entity"
	"grocery/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ShoppingListHandler prices shopping lists and serves saved ones.
type ShoppingListHandler struct {
	uc usecase.ShoppingListUsecase
}

// NewShoppingListHandler is the constructor for ShoppingListHandler.
func NewShoppingListHandler(uc usecase.ShoppingListUsecase) *ShoppingListHandler {
	return &ShoppingListHandler{uc: uc}
}

// Build prices the requested items against the cheapest listings in the city.
func (h *ShoppingListHandler) Build(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req buildListRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid shopping list input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	items := make([]entity.ShoppingRequestItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = entity.ShoppingRequestItem{ProductID: item.ProductID, Quantity: item.Quantity}
	}

	list, err := h.uc.BuildList(c.Request().Context(), p, usecase.BuildListInput{
		City:  req.City,
		Items: items,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, newShoppingListResponse(list))
}

// ListMine returns the caller's saved lists, newest first.
func (h *ShoppingListHandler) ListMine(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	lists, err := h.uc.ListMine(c.Request().Context(), p)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, mapSlice(lists, newShoppingListResponse))
}

func (h *ShoppingListHandler) Get(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	list, err := h.uc.Get(c.Request().Context(), p, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newShoppingListResponse(list))
}

// QRCode renders a PNG that shares a saved list.
func (h *ShoppingListHandler) QRCode(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	png, err := h.uc.ShareQR(c.Request().Context(), p, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ResolveQR returns the list a scanned QR payload points at.
func (h *ShoppingListHandler) ResolveQR(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req resolveQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid QR input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	list, err := h.uc.ResolveQR(c.Request().Context(), p, req.Payload)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newShoppingListResponse(list))
}
