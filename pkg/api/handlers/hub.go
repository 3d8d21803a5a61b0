package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/urmzd/smarthome/pkg/api/types"
	"github.com/urmzd/smarthome/pkg/hub"
)

// HubHandler handles bulk endpoints
type HubHandler struct {
	hub *hub.Hub
}

// NewHubHandler creates a new hub handler
func NewHubHandler(h *hub.Hub) *HubHandler {
	return &HubHandler{hub: h}
}

// TurnOnAll handles POST /hub/on
// @Summary      Turn on all devices
// @Tags         hub
// @Produce      json
// @Success      200  {object}  types.BulkResponse
// @Router       /hub/on [post]
func (h *HubHandler) TurnOnAll(c *gin.Context) {
	outcomes := h.hub.TurnOnAll()
	c.JSON(http.StatusOK, types.BulkResponse{Outcomes: outcomes, Count: len(outcomes)})
}

// TurnOffAll handles POST /hub/off
// @Summary      Turn off all devices
// @Tags         hub
// @Produce      json
// @Success      200  {object}  types.BulkResponse
// @Router       /hub/off [post]
func (h *HubHandler) TurnOffAll(c *gin.Context) {
	outcomes := h.hub.TurnOffAll()
	c.JSON(http.StatusOK, types.BulkResponse{Outcomes: outcomes, Count: len(outcomes)})
}

// Status handles GET /hub/status
// @Summary      Status of all devices
// @Tags         hub
// @Produce      json
// @Success      200  {object}  types.HubStatusResponse
// @Router       /hub/status [get]
func (h *HubHandler) Status(c *gin.Context) {
	entries := h.hub.StatusAll()
	c.JSON(http.StatusOK, types.HubStatusResponse{Devices: entries, Count: len(entries)})
}
