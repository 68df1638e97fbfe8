package router

import (
	"github.com/labstack/echo/v4"

	"fleamarket/internal/adapter/api/handler"
)

func SetupSessionRouter(e *echo.Echo) {
	e.GET("/v1/session", handler.GetSessionHandler().GetSession)
}
