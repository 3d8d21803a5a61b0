package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/urmzd/smarthome/pkg/device"
	"github.com/urmzd/smarthome/pkg/device/schema"
	"github.com/urmzd/smarthome/pkg/hub"
)

type handlerFunc func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)

func newTestServer(t *testing.T) (*Server, *hub.Hub) {
	t.Helper()
	h, err := hub.FromKinds(device.Kinds())
	if err != nil {
		t.Fatal(err)
	}
	return NewServer(h, schema.NewValidator(), time.UTC), h
}

func call(t *testing.T, fn handlerFunc, name string, args map[string]any) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	}
	res, err := fn(context.Background(), req)
	if err != nil {
		t.Fatalf("%s returned protocol error: %v", name, err)
	}
	if len(res.Content) == 0 {
		t.Fatalf("%s returned no content", name)
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("%s content is %T", name, res.Content[0])
	}
	return text.Text, res.IsError
}

func decodeOutput[T any](t *testing.T, text string) T {
	t.Helper()
	var v T
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		t.Fatalf("decode %s: %v", text, err)
	}
	return v
}

func TestListDevices(t *testing.T) {
	s, _ := newTestServer(t)

	text, isErr := call(t, s.handleListDevices, "list_devices", nil)
	if isErr {
		t.Fatal(text)
	}
	out := decodeOutput[ListDevicesOutput](t, text)
	if out.Count != 3 || out.Devices[1].Name != "Climate Control" {
		t.Errorf("output = %+v", out)
	}
	if len(out.Devices[0].StateSchema) == 0 {
		t.Error("missing state schema")
	}
}

func TestGetDevice_NotFound(t *testing.T) {
	s, _ := newTestServer(t)

	text, isErr := call(t, s.handleGetDevice, "get_device", map[string]any{"id": "Garage"})
	if !isErr || !strings.Contains(text, "device not found") {
		t.Errorf("got %q, isError=%v", text, isErr)
	}

	_, isErr = call(t, s.handleGetDevice, "get_device", map[string]any{})
	if !isErr {
		t.Error("missing id accepted")
	}
}

func TestTurnOn_WithBrightness(t *testing.T) {
	s, h := newTestServer(t)

	text, isErr := call(t, s.handleTurnOn, "turn_on", map[string]any{"id": "light", "brightness": float64(40)})
	if isErr {
		t.Fatal(text)
	}
	out := decodeOutput[OperationOutput](t, text)
	if out.Status != "Light is on" {
		t.Errorf("status = %q", out.Status)
	}
	d, _ := h.Find("Light")
	if got := d.(*device.Light).Brightness(); got != 40 {
		t.Errorf("brightness = %d, want 40", got)
	}

	// Brightness is only part of the light's schema.
	_, isErr = call(t, s.handleTurnOn, "turn_on", map[string]any{"id": "climate", "brightness": float64(40)})
	if !isErr {
		t.Error("brightness accepted for climate control")
	}
	if d, _ := h.Find("Climate Control"); d.IsOn() {
		t.Error("rejected turn_on changed climate control")
	}
}

func TestToggleDevice(t *testing.T) {
	s, _ := newTestServer(t)

	text, _ := call(t, s.handleToggleDevice, "toggle_device", map[string]any{"id": "Security System"})
	out := decodeOutput[OperationOutput](t, text)
	if out.Message != "Security system armed and cameras activated." || !out.OK {
		t.Errorf("first toggle = %+v", out)
	}

	text, _ = call(t, s.handleToggleDevice, "toggle_device", map[string]any{"id": "Security System"})
	out = decodeOutput[OperationOutput](t, text)
	if out.Status != "Security system is disarmed" {
		t.Errorf("second toggle status = %q", out.Status)
	}
}

func TestBulkAndStatus(t *testing.T) {
	s, _ := newTestServer(t)

	text, _ := call(t, s.handleTurnOnAll, "turn_on_all", nil)
	bulk := decodeOutput[BulkOutput](t, text)
	if bulk.Count != 3 {
		t.Fatalf("count = %d", bulk.Count)
	}

	text, _ = call(t, s.handleHubStatus, "hub_status", nil)
	status := decodeOutput[HubStatusOutput](t, text)
	want := []string{
		"Light is on",
		"Climate control is on, Temperature: 22°C, Humidity: 50%, Fan Speed: Off, Mode: Cooling",
		"Security system is armed, all is secure.",
	}
	for i, w := range want {
		if status.Devices[i].Status != w {
			t.Errorf("status[%d] = %q, want %q", i, status.Devices[i].Status, w)
		}
	}

	call(t, s.handleTurnOffAll, "turn_off_all", nil)
	text, _ = call(t, s.handleHubStatus, "hub_status", nil)
	status = decodeOutput[HubStatusOutput](t, text)
	if status.Devices[2].Status != "Security system is disarmed" {
		t.Errorf("status after off = %+v", status)
	}
}

func TestSetDeviceState(t *testing.T) {
	s, h := newTestServer(t)

	tests := []struct {
		name    string
		args    map[string]any
		wantErr bool
	}{
		{"nested", map[string]any{"id": "climate", "state": map[string]any{"temperature": float64(25), "mode": "Heating"}}, false},
		{"flat", map[string]any{"id": "climate", "humidity": float64(35)}, false},
		{"out of range", map[string]any{"id": "climate", "state": map[string]any{"temperature": float64(31)}}, true},
		{"unknown key", map[string]any{"id": "light", "state": map[string]any{"hue": "red"}}, true},
		{"not an object", map[string]any{"id": "light", "state": "ON"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, isErr := call(t, s.handleSetDeviceState, "set_device_state", tt.args)
			if isErr != tt.wantErr {
				t.Errorf("isError = %v, want %v: %s", isErr, tt.wantErr, text)
			}
		})
	}

	d, _ := h.Find("Climate Control")
	cc := d.(*device.ClimateControl)
	if cc.Temperature() != 25 || cc.Humidity() != 35 || cc.Mode() != device.ModeHeating {
		t.Errorf("state = %v", cc.State())
	}
}

func TestSecurityAction(t *testing.T) {
	s, h := newTestServer(t)

	text, isErr := call(t, s.handleSecurityAction, "security_action", map[string]any{"action": "detect_motion"})
	if isErr {
		t.Fatal(text)
	}
	if out := decodeOutput[OperationOutput](t, text); out.OK || out.Message != "Security system is not armed." {
		t.Errorf("disarmed motion = %+v", out)
	}

	sec, _ := h.Security()
	sec.TurnOn()

	text, _ = call(t, s.handleSecurityAction, "security_action", map[string]any{"action": "detect_motion"})
	if out := decodeOutput[OperationOutput](t, text); out.Status != "Security system is armed, alarm is triggered!" {
		t.Errorf("status = %q", out.Status)
	}

	_, isErr = call(t, s.handleSecurityAction, "security_action", map[string]any{"action": "self_destruct"})
	if !isErr {
		t.Error("unknown action accepted")
	}
}

func TestSetSensitivity(t *testing.T) {
	s, h := newTestServer(t)

	tests := []struct {
		level   any
		wantErr bool
	}{
		{float64(7), false},
		{float64(0), true},
		{float64(11), true},
		{float64(2.5), true},
		{"high", true},
	}

	for _, tt := range tests {
		_, isErr := call(t, s.handleSetSensitivity, "set_sensitivity", map[string]any{"level": tt.level})
		if isErr != tt.wantErr {
			t.Errorf("level %v: isError = %v, want %v", tt.level, isErr, tt.wantErr)
		}
	}

	sec, _ := h.Security()
	if sec.Sensitivity() != 7 {
		t.Errorf("sensitivity = %d, want 7", sec.Sensitivity())
	}
}

func TestGetSecurityLogs(t *testing.T) {
	s, h := newTestServer(t)
	sec, _ := h.Security()
	sec.TurnOn()
	sec.StartCameraRecording()

	text, isErr := call(t, s.handleGetSecurityLogs, "get_security_logs", nil)
	if isErr {
		t.Fatal(text)
	}
	out := decodeOutput[SecurityLogsOutput](t, text)
	if out.Count != 2 || out.Entries[1].Message != "Camera recording started." {
		t.Errorf("logs = %+v", out)
	}
}

func TestNoSecuritySystem(t *testing.T) {
	h := hub.New()
	h.Add(device.NewLight())
	s := NewServer(h, schema.NewValidator(), nil)

	_, isErr := call(t, s.handleGetSecurityLogs, "get_security_logs", nil)
	if !isErr {
		t.Error("logs without a security system should be a tool error")
	}

	text, _ := call(t, s.handleGetHealth, "get_health", nil)
	if out := decodeOutput[GetHealthOutput](t, text); out.Status != "healthy" || out.Devices != 1 {
		t.Errorf("health = %+v", out)
	}
}
