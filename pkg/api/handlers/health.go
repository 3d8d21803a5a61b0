package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urmzd/smarthome/pkg/api/types"
	"github.com/urmzd/smarthome/pkg/hub"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	hub *hub.Hub
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(h *hub.Hub) *HealthHandler {
	return &HealthHandler{hub: h}
}

// Health handles GET /health
// @Summary      Health check
// @Description  Returns the health status of the simulator and the number of registered devices
// @Tags         health
// @Produce      json
// @Success      200  {object}  types.HealthResponse  "Service is healthy"
// @Failure      503  {object}  types.HealthResponse  "No devices registered"
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	count := h.hub.Len()

	status := "healthy"
	httpStatus := http.StatusOK
	if count == 0 {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, types.HealthResponse{
		Status:    status,
		Devices:   count,
		Timestamp: time.Now(),
	})
}
