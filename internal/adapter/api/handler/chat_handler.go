package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"fleamarket/internal/usecase"
	"fleamarket/pkg/errors"
	"fleamarket/pkg/response"
)

type ChatHandler struct {
	storeUseCase *usecase.StoreUseCase
}

func NewChatHandler(storeUseCase *usecase.StoreUseCase) *ChatHandler {
	return &ChatHandler{
		storeUseCase: storeUseCase,
	}
}

// Either productId or sellerId identifies the counterpart
type createChatRequest struct {
	ProductID    string `json:"productId"`
	SellerID     string `json:"sellerId"`
	SellerName   string `json:"sellerName" validate:"max=100"`
	SellerAvatar string `json:"sellerAvatar" validate:"omitempty,url"`
}

type sendMessageRequest struct {
	Text string `json:"text" validate:"required,notblank,max=1000"`
}

// CreateChat opens the thread with a seller, or returns the existing one
func (h *ChatHandler) CreateChat(c echo.Context) error {
	var req createChatRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ctx := c.Request().Context()

	if req.ProductID != "" {
		product, ok := h.storeUseCase.GetProductByID(ctx, req.ProductID)
		if !ok {
			return response.Error(c, errors.NotFound("Product", nil))
		}
		req.SellerID = product.Seller.ID
		req.SellerName = product.Seller.Name
		req.SellerAvatar = product.Seller.Avatar
	}

	if req.SellerID == "" {
		return response.Error(c, errors.BadRequest("productId or sellerId is required", nil))
	}
	if req.SellerID == h.storeUseCase.CurrentUser().ID {
		return response.Error(c, errors.BadRequest("Cannot start a chat with yourself", nil))
	}

	chatID, err := h.storeUseCase.CreateOrGetChat(ctx, req.SellerID, req.SellerName, req.SellerAvatar)
	if err != nil {
		return response.Error(c, err)
	}

	chat, ok := h.storeUseCase.GetChatByID(ctx, chatID)
	if !ok {
		return response.Error(c, errors.Internal("Chat was not stored", nil))
	}

	return response.Success(c, chat)
}

func (h *ChatHandler) GetChats(c echo.Context) error {
	return response.Success(c, map[string]interface{}{
		"chats":       h.storeUseCase.ListChats(),
		"unreadCount": h.storeUseCase.GetUnreadCount(),
	})
}

func (h *ChatHandler) GetChatByID(c echo.Context) error {
	chat, ok := h.storeUseCase.GetChatByID(c.Request().Context(), c.Param("id"))
	if !ok {
		return response.Error(c, errors.NotFound("Chat", nil))
	}

	return response.Success(c, chat)
}

func (h *ChatHandler) MarkChatAsRead(c echo.Context) error {
	ctx := c.Request().Context()
	chatID := c.Param("id")

	if _, ok := h.storeUseCase.GetChatByID(ctx, chatID); !ok {
		return response.Error(c, errors.NotFound("Chat", nil))
	}

	if err := h.storeUseCase.MarkChatAsRead(ctx, chatID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"chatId":      chatID,
		"unreadCount": h.storeUseCase.GetUnreadCount(),
	})
}

// SendMessage posts a message from the session user
func (h *ChatHandler) SendMessage(c echo.Context) error {
	return h.appendMessage(c, h.storeUseCase.SendMessage)
}

// ReceiveReply posts a message on behalf of the seller. It stands in for the
// counterpart until a real second party exists.
func (h *ChatHandler) ReceiveReply(c echo.Context) error {
	return h.appendMessage(c, h.storeUseCase.ReceiveMessage)
}

func (h *ChatHandler) appendMessage(c echo.Context, appendFn func(ctx context.Context, chatID, text string) error) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ctx := c.Request().Context()
	chatID := c.Param("id")

	if _, ok := h.storeUseCase.GetChatByID(ctx, chatID); !ok {
		return response.Error(c, errors.NotFound("Chat", nil))
	}

	if err := appendFn(ctx, chatID, req.Text); err != nil {
		return response.Error(c, err)
	}

	chat, _ := h.storeUseCase.GetChatByID(ctx, chatID)
	return response.Created(c, chat)
}
