package handler

import (
	"github.com/labstack/echo/v4"

	"fleamarket/internal/domain/entity"
	"fleamarket/internal/usecase"
	"fleamarket/pkg/errors"
	"fleamarket/pkg/response"
)

type CartHandler struct {
	storeUseCase *usecase.StoreUseCase
}

func NewCartHandler(storeUseCase *usecase.StoreUseCase) *CartHandler {
	return &CartHandler{
		storeUseCase: storeUseCase,
	}
}

type addToCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1,max=99"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type cartView struct {
	Items     []entity.CartEntry `json:"items"`
	Total     float64            `json:"total"`
	ItemCount int                `json:"itemCount"`
}

func (h *CartHandler) view() cartView {
	return cartView{
		Items:     h.storeUseCase.Cart(),
		Total:     h.storeUseCase.GetCartTotal(),
		ItemCount: h.storeUseCase.GetCartItemCount(),
	}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	return response.Success(c, h.view())
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if req.Quantity == 0 {
		req.Quantity = 1
	}

	ctx := c.Request().Context()
	if _, ok := h.storeUseCase.GetProductByID(ctx, req.ProductID); !ok {
		return response.Error(c, errors.NotFound("Product", nil))
	}

	if err := h.storeUseCase.AddToCart(ctx, req.ProductID, req.Quantity); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, h.view())
}

// UpdateCartItem sets an entry's quantity; zero or less removes it
func (h *CartHandler) UpdateCartItem(c echo.Context) error {
	var req updateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := h.storeUseCase.UpdateCartQuantity(c.Request().Context(), c.Param("productId"), req.Quantity); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, h.view())
}

func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	if err := h.storeUseCase.RemoveFromCart(c.Request().Context(), c.Param("productId")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, h.view())
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	if err := h.storeUseCase.ClearCart(c.Request().Context()); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, h.view())
}
