package router

import (
	"github.com/labstack/echo/v4"

	"fleamarket/internal/adapter/api/handler"
	"fleamarket/internal/adapter/api/middleware"
	"fleamarket/internal/infrastructure/ratelimit"
)

// SetupChatRouter sets up all chat-related routes (excluding WebSocket)
func SetupChatRouter(e *echo.Echo, chatHandler *handler.ChatHandler, limiter *ratelimit.RateLimiter) {
	chatGroup := e.Group("/v1/chats")

	// Chat management
	chatGroup.POST("", chatHandler.CreateChat)             // POST /v1/chats - Create or reuse the chat with a seller
	chatGroup.GET("", chatHandler.GetChats)                // GET /v1/chats - List chats, most recent first
	chatGroup.GET("/:id", chatHandler.GetChatByID)         // GET /v1/chats/:id - Get specific chat
	chatGroup.PUT("/:id/read", chatHandler.MarkChatAsRead) // PUT /v1/chats/:id/read - Mark chat as read

	// Message management
	sendLimit := middleware.RateLimitAction(limiter, ratelimit.ActionSendMessage)
	chatGroup.POST("/:id/messages", chatHandler.SendMessage, sendLimit) // POST /v1/chats/:id/messages - Send message
	chatGroup.POST("/:id/replies", chatHandler.ReceiveReply)            // POST /v1/chats/:id/replies - Seller reply
}
