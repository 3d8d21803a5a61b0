package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urmzd/smarthome/pkg/api/types"
	"github.com/urmzd/smarthome/pkg/device"
	"github.com/urmzd/smarthome/pkg/hub"
	"github.com/urmzd/smarthome/pkg/metrics"
)

// heartbeatInterval is how often an idle event stream sends a heartbeat
var heartbeatInterval = 30 * time.Second

// SecurityHandler handles security system endpoints
type SecurityHandler struct {
	hub *hub.Hub
	loc *time.Location
}

// NewSecurityHandler creates a new security handler. Log timestamps are
// rendered in loc.
func NewSecurityHandler(h *hub.Hub, loc *time.Location) *SecurityHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &SecurityHandler{hub: h, loc: loc}
}

// TriggerAlarm handles POST /security/alarm/trigger
// @Summary      Trigger the alarm
// @Description  Raises the alarm. Has no effect unless the system is armed.
// @Tags         security
// @Produce      json
// @Success      200  {object}  types.OperationResponse
// @Failure      404  {object}  types.ErrorResponse  "No security system registered"
// @Router       /security/alarm/trigger [post]
func (h *SecurityHandler) TriggerAlarm(c *gin.Context) {
	h.do(c, "trigger_alarm", (*device.SecuritySystem).TriggerAlarm)
}

// ResetAlarm handles POST /security/alarm/reset
// @Summary      Reset the alarm
// @Description  Clears the alarm and motion flags
// @Tags         security
// @Produce      json
// @Success      200  {object}  types.OperationResponse
// @Failure      404  {object}  types.ErrorResponse  "No security system registered"
// @Router       /security/alarm/reset [post]
func (h *SecurityHandler) ResetAlarm(c *gin.Context) {
	h.do(c, "reset_alarm", (*device.SecuritySystem).ResetAlarm)
}

// DetectMotion handles POST /security/motion
// @Summary      Report motion
// @Description  Records motion and escalates to the alarm. Has no effect unless armed.
// @Tags         security
// @Produce      json
// @Success      200  {object}  types.OperationResponse
// @Failure      404  {object}  types.ErrorResponse  "No security system registered"
// @Router       /security/motion [post]
func (h *SecurityHandler) DetectMotion(c *gin.Context) {
	h.do(c, "detect_motion", (*device.SecuritySystem).DetectMotion)
}

// StartRecording handles POST /security/camera/start
// @Summary      Start camera recording
// @Tags         security
// @Produce      json
// @Success      200  {object}  types.OperationResponse
// @Failure      404  {object}  types.ErrorResponse  "No security system registered"
// @Router       /security/camera/start [post]
func (h *SecurityHandler) StartRecording(c *gin.Context) {
	h.do(c, "start_recording", (*device.SecuritySystem).StartCameraRecording)
}

// StopRecording handles POST /security/camera/stop
// @Summary      Stop camera recording
// @Tags         security
// @Produce      json
// @Success      200  {object}  types.OperationResponse
// @Failure      404  {object}  types.ErrorResponse  "No security system registered"
// @Router       /security/camera/stop [post]
func (h *SecurityHandler) StopRecording(c *gin.Context) {
	h.do(c, "stop_recording", (*device.SecuritySystem).StopCameraRecording)
}

// SetSensitivity handles PUT /security/sensitivity
// @Summary      Set motion sensitivity
// @Tags         security
// @Accept       json
// @Produce      json
// @Param        request  body      types.SetSensitivityRequest  true  "Sensitivity level (1-10)"
// @Success      200      {object}  types.OperationResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid level"
// @Failure      404      {object}  types.ErrorResponse  "No security system registered"
// @Router       /security/sensitivity [put]
func (h *SecurityHandler) SetSensitivity(c *gin.Context) {
	var req types.SetSensitivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "level is required")
		return
	}

	sec, err := h.hub.Security()
	if err != nil {
		writeError(c, err)
		return
	}

	res, err := sec.SetSensitivity(*req.Level)
	metrics.RecordOperation(sec.Name(), "set_sensitivity", res.OK, err)
	if err != nil {
		writeError(c, err)
		return
	}
	respond(c, sec, res)
}

// Logs handles GET /security/logs
// @Summary      Security log
// @Description  Returns the full security event log in chronological order
// @Tags         security
// @Produce      json
// @Success      200  {object}  types.LogsResponse
// @Failure      404  {object}  types.ErrorResponse  "No security system registered"
// @Router       /security/logs [get]
func (h *SecurityHandler) Logs(c *gin.Context) {
	sec, err := h.hub.Security()
	if err != nil {
		writeError(c, err)
		return
	}

	entries := sec.Logs()
	lines := make([]types.LogLine, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, types.NewLogLine(e, h.loc))
	}

	c.JSON(http.StatusOK, types.LogsResponse{
		Entries: lines,
		Count:   len(lines),
	})
}

// Events handles GET /security/events (SSE stream)
// @Summary      Subscribe to security events
// @Description  Server-Sent Events stream of new security log entries
// @Tags         security
// @Produce      text/event-stream
// @Success      200  {string}  string  "SSE event stream"
// @Router       /security/events [get]
func (h *SecurityHandler) Events(c *gin.Context) {
	sec, err := h.hub.Security()
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	var subscriber device.EventSubscriber = sec
	events := subscriber.Subscribe()
	defer subscriber.Unsubscribe(events)

	sendSSEEvent(c.Writer, "connected", map[string]any{
		"timestamp": time.Now(),
		"message":   "Connected to security event stream",
	})
	c.Writer.Flush()

	clientGone := c.Request.Context().Done()

	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-clientGone:
			return

		case entry, ok := <-events:
			if !ok {
				return
			}
			sendSSEEvent(c.Writer, "security", types.NewLogLine(entry, h.loc))
			c.Writer.Flush()

		case <-ticker.C:
			sendSSEEvent(c.Writer, "heartbeat", map[string]any{
				"timestamp": time.Now(),
			})
			c.Writer.Flush()
		}
	}
}

func (h *SecurityHandler) do(c *gin.Context, op string, fn func(*device.SecuritySystem) device.Result) {
	sec, err := h.hub.Security()
	if err != nil {
		writeError(c, err)
		return
	}
	res := fn(sec)
	metrics.RecordOperation(sec.Name(), op, res.OK, nil)
	respond(c, sec, res)
}

// sendSSEEvent writes an SSE event to the response
func sendSSEEvent(w io.Writer, eventType string, data any) {
	jsonData, _ := json.Marshal(data)
	_, _ = io.WriteString(w, "event: "+eventType+"\n")
	_, _ = io.WriteString(w, "data: "+string(jsonData)+"\n\n")
}
