package router

import (
	"github.com/labstack/echo/v4"

	"fleamarket/internal/adapter/api/handler"
	"fleamarket/internal/adapter/api/middleware"
	"fleamarket/internal/infrastructure/ratelimit"
)

func SetupProductRouter(e *echo.Echo, limiter *ratelimit.RateLimiter) {
	productHandler := handler.GetProductHandler()

	products := e.Group("/v1/products")
	products.GET("", productHandler.ListProducts)
	products.GET("/:id", productHandler.GetProduct)
	products.POST("", productHandler.CreateProduct, middleware.RateLimitAction(limiter, ratelimit.ActionAddProduct))
}
