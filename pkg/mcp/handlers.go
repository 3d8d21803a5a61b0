package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog/log"
	"github.com/urmzd/smarthome/pkg/device"
	"github.com/urmzd/smarthome/pkg/metrics"
)

type securityAction struct {
	name string
	fn   func(*device.SecuritySystem) device.Result
}

var securityActions = []securityAction{
	{"trigger_alarm", (*device.SecuritySystem).TriggerAlarm},
	{"detect_motion", (*device.SecuritySystem).DetectMotion},
	{"reset_alarm", (*device.SecuritySystem).ResetAlarm},
	{"start_recording", (*device.SecuritySystem).StartCameraRecording},
	{"stop_recording", (*device.SecuritySystem).StopCameraRecording},
}

func securityActionNames() []string {
	names := make([]string, len(securityActions))
	for i, a := range securityActions {
		names[i] = a.name
	}
	return names
}

func (s *Server) handleGetHealth(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	count := s.hub.Len()
	status := "healthy"
	if count == 0 {
		status = "degraded"
	}

	out := GetHealthOutput{
		Status:    status,
		Devices:   count,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleListDevices(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	devices := s.hub.Devices()

	infos := make([]DeviceInfo, 0, len(devices))
	for _, d := range devices {
		infos = append(infos, DeviceToInfo(d))
	}

	out := ListDevicesOutput{
		Devices: infos,
		Count:   len(infos),
	}

	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetDevice(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredString(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	d, err := s.hub.Lookup(id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("device not found: %s", err)), nil
	}

	out := GetDeviceOutput{Device: DeviceToInfo(d)}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleTurnOn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredString(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	b, ok := request.GetArguments()["brightness"]
	if !ok {
		return s.power(id, "turn_on", device.Device.TurnOn)
	}

	// Brightness goes through the schema so non-lights reject it.
	return s.applyState(id, map[string]any{"state": device.PowerOn, "brightness": b})
}

func (s *Server) handleTurnOff(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredString(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.power(id, "turn_off", device.Device.TurnOff)
}

func (s *Server) handleToggleDevice(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredString(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return s.power(id, "toggle", device.Toggle)
}

func (s *Server) handleTurnOnAll(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	outcomes := s.hub.TurnOnAll()
	return mcp.NewToolResultText(formatJSON(BulkOutput{Outcomes: outcomes, Count: len(outcomes)})), nil
}

func (s *Server) handleTurnOffAll(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	outcomes := s.hub.TurnOffAll()
	return mcp.NewToolResultText(formatJSON(BulkOutput{Outcomes: outcomes, Count: len(outcomes)})), nil
}

func (s *Server) handleHubStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entries := s.hub.StatusAll()
	return mcp.NewToolResultText(formatJSON(HubStatusOutput{Devices: entries, Count: len(entries)})), nil
}

func (s *Server) handleSetDeviceState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredString(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := request.GetArguments()

	// State may come as a nested "state" object or as flat args.
	stateMap := map[string]any{}
	if stateRaw, ok := args["state"]; ok {
		sm, ok := stateRaw.(map[string]any)
		if !ok {
			return mcp.NewToolResultError(`parameter "state" must be an object`), nil
		}
		stateMap = sm
	} else {
		for k, v := range args {
			if k != "id" {
				stateMap[k] = v
			}
		}
	}

	return s.applyState(id, stateMap)
}

func (s *Server) handleSecurityAction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := requiredString(request, "action")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var action *securityAction
	for i := range securityActions {
		if securityActions[i].name == name {
			action = &securityActions[i]
			break
		}
	}
	if action == nil {
		return mcp.NewToolResultError(fmt.Sprintf("unknown security action %q", name)), nil
	}

	sec, err := s.hub.Security()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res := action.fn(sec)
	metrics.RecordOperation(sec.Name(), action.name, res.OK, nil)
	return mcp.NewToolResultText(formatJSON(operationOutput(sec, res))), nil
}

func (s *Server) handleSetSensitivity(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	level, err := requiredInt(request, "level")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	sec, err := s.hub.Security()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := sec.SetSensitivity(level)
	metrics.RecordOperation(sec.Name(), "set_sensitivity", res.OK, err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatJSON(operationOutput(sec, res))), nil
}

func (s *Server) handleGetSecurityLogs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sec, err := s.hub.Security()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	entries := sec.Logs()
	lines := make([]LogLine, 0, len(entries))
	for _, e := range entries {
		e = e.In(s.loc)
		lines = append(lines, LogLine{
			Timestamp: e.Time.Format(time.RFC3339),
			Message:   e.Message,
			Line:      e.String(),
		})
	}

	return mcp.NewToolResultText(formatJSON(SecurityLogsOutput{Entries: lines, Count: len(lines)})), nil
}

func (s *Server) power(id, op string, fn func(device.Device) device.Result) (*mcp.CallToolResult, error) {
	d, err := s.hub.Lookup(id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("device not found: %s", err)), nil
	}
	res := fn(d)
	metrics.RecordOperation(d.Name(), op, res.OK, nil)
	log.Debug().Str("device", d.Name()).Str("op", op).Msg(res.Message)
	return mcp.NewToolResultText(formatJSON(operationOutput(d, res))), nil
}

func (s *Server) applyState(id string, state map[string]any) (*mcp.CallToolResult, error) {
	d, err := s.hub.Lookup(id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("device not found: %s", err)), nil
	}

	if s.validator != nil {
		if err := s.validator.ValidateDevice(d, state); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("validation error: %s", err)), nil
		}
	}

	o, err := s.hub.Apply(d.Name(), state)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to set device state: %s", err)), nil
	}
	return mcp.NewToolResultText(formatJSON(operationOutput(d, o.Result))), nil
}

// --- helpers ---

func requiredString(request mcp.CallToolRequest, key string) (string, error) {
	args := request.GetArguments()
	v, ok := args[key]
	if !ok || v == nil {
		return "", fmt.Errorf("required parameter %q is missing", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("parameter %q must be a non-empty string", key)
	}
	return s, nil
}

func requiredInt(request mcp.CallToolRequest, key string) (int, error) {
	v, ok := request.GetArguments()[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("required parameter %q is missing", key)
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case float64:
		if n == math.Trunc(n) {
			return int(n), nil
		}
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), nil
		}
	}
	return 0, fmt.Errorf("parameter %q must be an integer", key)
}

func formatJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to marshal response: %s"}`, err)
	}
	return string(b)
}
