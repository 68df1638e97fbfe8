package router

import (
	"github.com/labstack/echo/v4"

	"fleamarket/internal/adapter/api/handler"
	"fleamarket/internal/adapter/api/middleware"
	"fleamarket/internal/infrastructure/ratelimit"
)

func SetupCheckoutRouter(e *echo.Echo, limiter *ratelimit.RateLimiter) {
	checkoutHandler := handler.GetCheckoutHandler()

	e.POST("/v1/checkout", checkoutHandler.Checkout, middleware.RateLimitAction(limiter, ratelimit.ActionCheckout))
}
