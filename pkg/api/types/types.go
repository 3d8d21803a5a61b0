package types

import (
	"encoding/json"
	"time"

	"github.com/urmzd/smarthome/pkg/device"
	"github.com/urmzd/smarthome/pkg/hub"
)

// --- Request DTOs ---

// SetSensitivityRequest is the request body for PUT /security/sensitivity
type SetSensitivityRequest struct {
	Level *int `json:"level" binding:"required"`
}

// --- Response DTOs ---

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned from GET /health
type HealthResponse struct {
	Status    string    `json:"status"`
	Devices   int       `json:"devices"`
	Timestamp time.Time `json:"timestamp"`
}

// DeviceInfo describes a registered device and its current state
type DeviceInfo struct {
	Name        string             `json:"name"`
	Kind        string             `json:"kind"`
	On          bool               `json:"on"`
	Status      string             `json:"status"`
	State       device.DeviceState `json:"state"`
	StateSchema json.RawMessage    `json:"state_schema,omitempty"`
}

// NewDeviceInfo snapshots d.
func NewDeviceInfo(d device.Device) DeviceInfo {
	return DeviceInfo{
		Name:        d.Name(),
		Kind:        d.Kind(),
		On:          d.IsOn(),
		Status:      d.Status(),
		State:       d.State(),
		StateSchema: d.StateSchema(),
	}
}

// ListDevicesResponse is returned from GET /devices
type ListDevicesResponse struct {
	Devices []DeviceInfo `json:"devices"`
	Count   int          `json:"count"`
}

// DeviceResponse is returned from GET /devices/:id
type DeviceResponse struct {
	Device DeviceInfo `json:"device"`
}

// StatusResponse is returned from GET /devices/:id/status
type StatusResponse struct {
	Device string `json:"device"`
	Status string `json:"status"`
}

// OperationResponse is returned by every mutating device endpoint
type OperationResponse struct {
	Device    string        `json:"device"`
	Result    device.Result `json:"result"`
	Status    string        `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
}

// StateResponse is returned from GET /devices/:id/state
type StateResponse struct {
	Device    string             `json:"device"`
	State     device.DeviceState `json:"state"`
	Timestamp time.Time          `json:"timestamp"`
}

// BulkResponse is returned from POST /hub/on and /hub/off
type BulkResponse struct {
	Outcomes []hub.Outcome `json:"outcomes"`
	Count    int           `json:"count"`
}

// HubStatusResponse is returned from GET /hub/status
type HubStatusResponse struct {
	Devices []hub.StatusEntry `json:"devices"`
	Count   int               `json:"count"`
}

// LogsResponse is returned from GET /security/logs
type LogsResponse struct {
	Entries []LogLine `json:"entries"`
	Count   int       `json:"count"`
}

// LogLine is a security log entry with its ctime rendering
type LogLine struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Line      string    `json:"line"`
}

// NewLogLine converts e, displaying it in loc.
func NewLogLine(e device.LogEntry, loc *time.Location) LogLine {
	e = e.In(loc)
	return LogLine{Timestamp: e.Time, Message: e.Message, Line: e.String()}
}
