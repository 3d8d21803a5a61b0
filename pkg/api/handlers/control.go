package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urmzd/smarthome/pkg/api/types"
	"github.com/urmzd/smarthome/pkg/device/schema"
	"github.com/urmzd/smarthome/pkg/hub"
)

// ControlHandler handles device state endpoints
type ControlHandler struct {
	hub       *hub.Hub
	validator *schema.Validator
}

// NewControlHandler creates a new control handler
func NewControlHandler(h *hub.Hub, validator *schema.Validator) *ControlHandler {
	return &ControlHandler{hub: h, validator: validator}
}

// GetState handles GET /devices/:id/state
// @Summary      Get device state
// @Description  Returns a structured snapshot of every device field
// @Tags         devices
// @Produce      json
// @Param        id   path      string  true  "Device name or kind"
// @Success      200  {object}  types.StateResponse
// @Failure      404  {object}  types.ErrorResponse  "Device not found"
// @Router       /devices/{id}/state [get]
func (h *ControlHandler) GetState(c *gin.Context) {
	d, err := h.hub.Lookup(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.StateResponse{
		Device:    d.Name(),
		State:     d.State(),
		Timestamp: time.Now(),
	})
}

// SetState handles POST /devices/:id/state
// @Summary      Set device state
// @Description  Applies a JSON state document validated against the device's schema
// @Tags         devices
// @Accept       json
// @Produce      json
// @Param        id       path      string  true  "Device name or kind"
// @Param        request  body      object  true  "State to set"
// @Success      200      {object}  types.OperationResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid request"
// @Failure      404      {object}  types.ErrorResponse  "Device not found"
// @Router       /devices/{id}/state [post]
func (h *ControlHandler) SetState(c *gin.Context) {
	var req map[string]any
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		invalidRequest(c, "Invalid request body")
		return
	}

	d, err := h.hub.Lookup(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	if err := h.validator.ValidateDevice(d, req); err != nil {
		writeError(c, err)
		return
	}

	o, err := h.hub.Apply(d.Name(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	respond(c, d, o.Result)
}
