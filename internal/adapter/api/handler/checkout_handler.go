package handler

import (
	"strings"

	"github.com/labstack/echo/v4"

	"fleamarket/internal/domain/entity"
	"fleamarket/internal/usecase"
	"fleamarket/pkg/errors"
	"fleamarket/pkg/response"
)

type CheckoutHandler struct {
	storeUseCase *usecase.StoreUseCase
}

func NewCheckoutHandler(storeUseCase *usecase.StoreUseCase) *CheckoutHandler {
	return &CheckoutHandler{
		storeUseCase: storeUseCase,
	}
}

type checkoutRequest struct {
	Name    string `json:"name" validate:"required,notblank,max=100"`
	Phone   string `json:"phone" validate:"required,phone"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address" validate:"required,notblank,max=300"`
	Notes   string `json:"notes" validate:"max=500"`
}

func (h *CheckoutHandler) Checkout(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.storeUseCase.Checkout(c.Request().Context(), entity.ShippingInfo{
		Name:    strings.TrimSpace(req.Name),
		Phone:   strings.TrimSpace(req.Phone),
		Email:   strings.TrimSpace(req.Email),
		Address: strings.TrimSpace(req.Address),
		Notes:   strings.TrimSpace(req.Notes),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, order)
}
