package mcp

import (
	"encoding/json"

	"github.com/urmzd/smarthome/pkg/device"
	"github.com/urmzd/smarthome/pkg/hub"
)

// GetHealthOutput is the output for the get_health tool
type GetHealthOutput struct {
	Status    string `json:"status" jsonschema:"description=Overall health status (healthy or degraded)"`
	Devices   int    `json:"devices" jsonschema:"description=Number of registered devices"`
	Timestamp string `json:"timestamp" jsonschema:"description=ISO8601 timestamp"`
}

// DeviceInfo represents a device in tool outputs
type DeviceInfo struct {
	Name        string             `json:"name" jsonschema:"description=Device name"`
	Kind        string             `json:"kind" jsonschema:"description=Device kind (light/climate/security)"`
	On          bool               `json:"on" jsonschema:"description=Whether the device is on (armed for the security system)"`
	Status      string             `json:"status" jsonschema:"description=Human-readable status line"`
	State       device.DeviceState `json:"state" jsonschema:"description=Current device state"`
	StateSchema json.RawMessage    `json:"state_schema,omitempty" jsonschema:"description=JSON Schema for settable state"`
}

// ListDevicesOutput is the output for the list_devices tool
type ListDevicesOutput struct {
	Devices []DeviceInfo `json:"devices" jsonschema:"description=Registered devices in registration order"`
	Count   int          `json:"count" jsonschema:"description=Total number of devices"`
}

// GetDeviceOutput is the output for the get_device tool
type GetDeviceOutput struct {
	Device DeviceInfo `json:"device" jsonschema:"description=Device information"`
}

// OperationOutput is the output of every tool that acts on one device
type OperationOutput struct {
	Device  string             `json:"device" jsonschema:"description=Device name"`
	OK      bool               `json:"ok" jsonschema:"description=Whether the operation took effect"`
	Message string             `json:"message" jsonschema:"description=Operation result message"`
	Status  string             `json:"status" jsonschema:"description=Device status after the operation"`
	State   device.DeviceState `json:"state" jsonschema:"description=Device state after the operation"`
}

// BulkOutput is the output for the turn_on_all and turn_off_all tools
type BulkOutput struct {
	Outcomes []hub.Outcome `json:"outcomes" jsonschema:"description=Per-device results in registration order"`
	Count    int           `json:"count" jsonschema:"description=Number of devices acted on"`
}

// HubStatusOutput is the output for the hub_status tool
type HubStatusOutput struct {
	Devices []hub.StatusEntry `json:"devices" jsonschema:"description=Status line per device"`
	Count   int               `json:"count" jsonschema:"description=Number of devices"`
}

// LogLine is a security log entry
type LogLine struct {
	Timestamp string `json:"timestamp" jsonschema:"description=ISO8601 timestamp"`
	Message   string `json:"message" jsonschema:"description=Event message"`
	Line      string `json:"line" jsonschema:"description=Log line as printed by the console"`
}

// SecurityLogsOutput is the output for the get_security_logs tool
type SecurityLogsOutput struct {
	Entries []LogLine `json:"entries" jsonschema:"description=Log entries, oldest first"`
	Count   int       `json:"count" jsonschema:"description=Number of entries"`
}

// --- Helper conversions ---

// DeviceToInfo converts a device.Device to DeviceInfo
func DeviceToInfo(d device.Device) DeviceInfo {
	return DeviceInfo{
		Name:        d.Name(),
		Kind:        d.Kind(),
		On:          d.IsOn(),
		Status:      d.Status(),
		State:       d.State(),
		StateSchema: d.StateSchema(),
	}
}

func operationOutput(d device.Device, res device.Result) OperationOutput {
	return OperationOutput{
		Device:  d.Name(),
		OK:      res.OK,
		Message: res.Message,
		Status:  d.Status(),
		State:   d.State(),
	}
}
