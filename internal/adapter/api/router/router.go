package router

import (
	"github.com/labstack/echo/v4"

	"fleamarket/internal/adapter/api/handler"
	"fleamarket/internal/infrastructure/ratelimit"
)

func Setup(e *echo.Echo, limiter *ratelimit.RateLimiter, wsHandler *handler.WebSocketHandler) {
	SetupSessionRouter(e)
	SetupProductRouter(e, limiter)
	SetupCartRouter(e)
	SetupCheckoutRouter(e, limiter)
	SetupChatRouter(e, handler.GetChatHandler(), limiter)
	SetupWebSocketRouter(e, wsHandler)
	SetupHealthRouter(e)
}
