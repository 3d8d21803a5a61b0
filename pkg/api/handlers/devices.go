package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urmzd/smarthome/pkg/api/types"
	"github.com/urmzd/smarthome/pkg/device"
	"github.com/urmzd/smarthome/pkg/hub"
	"github.com/urmzd/smarthome/pkg/metrics"
)

// DevicesHandler handles device listing and power endpoints
type DevicesHandler struct {
	hub *hub.Hub
}

// NewDevicesHandler creates a new devices handler
func NewDevicesHandler(h *hub.Hub) *DevicesHandler {
	return &DevicesHandler{hub: h}
}

// ListDevices handles GET /devices
// @Summary      List all devices
// @Description  Returns every registered device in registration order
// @Tags         devices
// @Produce      json
// @Success      200  {object}  types.ListDevicesResponse
// @Router       /devices [get]
func (h *DevicesHandler) ListDevices(c *gin.Context) {
	devices := h.hub.Devices()

	result := make([]types.DeviceInfo, 0, len(devices))
	for _, d := range devices {
		result = append(result, types.NewDeviceInfo(d))
	}

	c.JSON(http.StatusOK, types.ListDevicesResponse{
		Devices: result,
		Count:   len(result),
	})
}

// GetDevice handles GET /devices/:id
// @Summary      Get device details
// @Description  Returns details for a device by name ("Climate Control") or kind ("climate")
// @Tags         devices
// @Produce      json
// @Param        id   path      string  true  "Device name or kind"
// @Success      200  {object}  types.DeviceResponse
// @Failure      404  {object}  types.ErrorResponse  "Device not found"
// @Router       /devices/{id} [get]
func (h *DevicesHandler) GetDevice(c *gin.Context) {
	d, err := h.hub.Lookup(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DeviceResponse{
		Device: types.NewDeviceInfo(d),
	})
}

// GetStatus handles GET /devices/:id/status
// @Summary      Get device status
// @Description  Returns the human readable status text of a device
// @Tags         devices
// @Produce      json
// @Param        id   path      string  true  "Device name or kind"
// @Success      200  {object}  types.StatusResponse
// @Failure      404  {object}  types.ErrorResponse  "Device not found"
// @Router       /devices/{id}/status [get]
func (h *DevicesHandler) GetStatus(c *gin.Context) {
	d, err := h.hub.Lookup(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.StatusResponse{
		Device: d.Name(),
		Status: d.Status(),
	})
}

// TurnOn handles POST /devices/:id/on
// @Summary      Turn a device on
// @Description  Turns a device on (arms the security system)
// @Tags         devices
// @Produce      json
// @Param        id   path      string  true  "Device name or kind"
// @Success      200  {object}  types.OperationResponse
// @Failure      404  {object}  types.ErrorResponse  "Device not found"
// @Router       /devices/{id}/on [post]
func (h *DevicesHandler) TurnOn(c *gin.Context) {
	h.power(c, "turn_on", device.Device.TurnOn)
}

// TurnOff handles POST /devices/:id/off
// @Summary      Turn a device off
// @Description  Turns a device off (disarms the security system)
// @Tags         devices
// @Produce      json
// @Param        id   path      string  true  "Device name or kind"
// @Success      200  {object}  types.OperationResponse
// @Failure      404  {object}  types.ErrorResponse  "Device not found"
// @Router       /devices/{id}/off [post]
func (h *DevicesHandler) TurnOff(c *gin.Context) {
	h.power(c, "turn_off", device.Device.TurnOff)
}

// Toggle handles POST /devices/:id/toggle
// @Summary      Toggle a device
// @Description  Turns a device on if it is off, otherwise off
// @Tags         devices
// @Produce      json
// @Param        id   path      string  true  "Device name or kind"
// @Success      200  {object}  types.OperationResponse
// @Failure      404  {object}  types.ErrorResponse  "Device not found"
// @Router       /devices/{id}/toggle [post]
func (h *DevicesHandler) Toggle(c *gin.Context) {
	o, err := h.hub.Toggle(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.OperationResponse{
		Device:    o.Name,
		Result:    o.Result,
		Status:    o.Status,
		Timestamp: time.Now(),
	})
}

func (h *DevicesHandler) power(c *gin.Context, op string, fn func(device.Device) device.Result) {
	d, err := h.hub.Lookup(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	res := fn(d)
	metrics.RecordOperation(d.Name(), op, res.OK, nil)
	respond(c, d, res)
}

// respond writes the outcome of an operation on d together with its new status.
func respond(c *gin.Context, d device.Device, res device.Result) {
	c.JSON(http.StatusOK, types.OperationResponse{
		Device:    d.Name(),
		Result:    res,
		Status:    d.Status(),
		Timestamp: time.Now(),
	})
}
