package router

import (
	"github.com/labstack/echo/v4"

	"fleamarket/internal/adapter/api/handler"
)

func SetupCartRouter(e *echo.Echo) {
	cartHandler := handler.GetCartHandler()

	cart := e.Group("/v1/cart")
	cart.GET("", cartHandler.GetCart)
	cart.POST("", cartHandler.AddToCart)
	cart.DELETE("", cartHandler.ClearCart)
	cart.PUT("/:productId", cartHandler.UpdateCartItem)
	cart.DELETE("/:productId", cartHandler.RemoveFromCart)
}
