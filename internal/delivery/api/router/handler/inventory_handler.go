package handler

import (
	"grocery/internal/delivery/api/response"
	"grocery/internal/domain/entity"
	domainerrors "grocery/internal/domain/errors"
	"grocery/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InventoryHandler serves listings: the price of a product at a supermarket.
type InventoryHandler struct {
	uc usecase.InventoryUsecase
}

// NewInventoryHandler is the constructor for InventoryHandler.
func NewInventoryHandler(uc usecase.InventoryUsecase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

func (h *InventoryHandler) Create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid inventory input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	listing, err := h.uc.Create(c.Request().Context(), p, usecase.CreateListingInput{
		ProductID:     req.ProductID,
		SupermarketID: req.SupermarketID,
		Price:         *req.Price,
		InStock:       req.InStock,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, newListingResponse(listing))
}

// List returns all listings, or those of one product when ?product_id is set.
func (h *InventoryHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		listings []*entity.Listing
		err      error
	)
	if raw := c.QueryParam("product_id"); raw != "" {
		productID, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			return errors.Wrap(domainerrors.ErrValidationFailed, "product_id must be a UUID")
		}
		listings, err = h.uc.ListByProduct(ctx, productID)
	} else {
		listings, err = h.uc.List(ctx)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, mapSlice(listings, newListingResponse))
}

func (h *InventoryHandler) Update(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	supermarketID, productID, err := listingKey(c)
	if err != nil {
		return err
	}

	var req updateListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid inventory input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	listing, err := h.uc.Update(c.Request().Context(), p, supermarketID, productID, usecase.UpdateListingInput(req))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newListingResponse(listing))
}

func (h *InventoryHandler) Delete(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	supermarketID, productID, err := listingKey(c)
	if err != nil {
		return err
	}

	listing, err := h.uc.Delete(c.Request().Context(), p, supermarketID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newListingResponse(listing))
}

func listingKey(c echo.Context) (supermarketID, productID uuid.UUID, err error) {
	if supermarketID, err = uuidParam(c, "supermarketId"); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	if productID, err = uuidParam(c, "productId"); err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	return supermarketID, productID, nil
}
