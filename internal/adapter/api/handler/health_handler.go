package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type HealthHandler struct {
	storageDriver string
	clientCount   func() int
}

var healthHandler *HealthHandler

func NewHealthHandler(storageDriver string, clientCount func() int) *HealthHandler {
	return &HealthHandler{
		storageDriver: storageDriver,
		clientCount:   clientCount,
	}
}

func SetupHealthHandler(storageDriver string, clientCount func() int) {
	healthHandler = NewHealthHandler(storageDriver, clientCount)
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	clients := 0
	if h.clientCount != nil {
		clients = h.clientCount()
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":    "Server is running",
		"storage":   h.storageDriver,
		"wsClients": clients,
		"time":      time.Now().Format(time.RFC3339),
	})
}
