package handler

import (
	"github.com/labstack/echo/v4"

	"fleamarket/internal/domain/entity"
	"fleamarket/internal/usecase"
	"fleamarket/pkg/response"
)

type SessionHandler struct {
	storeUseCase *usecase.StoreUseCase
}

func NewSessionHandler(storeUseCase *usecase.StoreUseCase) *SessionHandler {
	return &SessionHandler{
		storeUseCase: storeUseCase,
	}
}

type sessionView struct {
	User          entity.User `json:"user"`
	CartItemCount int         `json:"cartItemCount"`
	CartTotal     float64     `json:"cartTotal"`
	UnreadCount   int         `json:"unreadCount"`
}

// GetSession returns the current user with the header badge counts
func (h *SessionHandler) GetSession(c echo.Context) error {
	return response.Success(c, sessionView{
		User:          h.storeUseCase.CurrentUser(),
		CartItemCount: h.storeUseCase.GetCartItemCount(),
		CartTotal:     h.storeUseCase.GetCartTotal(),
		UnreadCount:   h.storeUseCase.GetUnreadCount(),
	})
}
