package mcp

import "github.com/mark3labs/mcp-go/mcp"

const idDescription = "Device name (Light, Climate Control, Security System) or kind (light, climate, security)"

// registerTools registers all MCP tools with the server
func (s *Server) registerTools() {
	// Health check
	s.mcpServer.AddTool(
		mcp.NewTool("get_health",
			mcp.WithDescription("Check the health of the simulator and how many devices are registered"),
		),
		s.handleGetHealth,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("list_devices",
			mcp.WithDescription("List all registered devices with their status and current state"),
		),
		s.handleListDevices,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("get_device",
			mcp.WithDescription("Get detailed information about a device, including the JSON Schema of its settable state"),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description(idDescription),
			),
		),
		s.handleGetDevice,
	)

	// Power
	s.mcpServer.AddTool(
		mcp.NewTool("turn_on",
			mcp.WithDescription("Turn on a device. Turning on the security system arms it."),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description(idDescription),
			),
			mcp.WithNumber("brightness",
				mcp.Description("Brightness level 0-100 (lights only, optional)"),
			),
		),
		s.handleTurnOn,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("turn_off",
			mcp.WithDescription("Turn off a device. Turning off the security system disarms it."),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description(idDescription),
			),
		),
		s.handleTurnOff,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("toggle_device",
			mcp.WithDescription("Turn a device on if it is off, otherwise off, and report its status"),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description(idDescription),
			),
		),
		s.handleToggleDevice,
	)

	// Hub
	s.mcpServer.AddTool(
		mcp.NewTool("turn_on_all",
			mcp.WithDescription("Turn on every registered device in registration order"),
		),
		s.handleTurnOnAll,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("turn_off_all",
			mcp.WithDescription("Turn off every registered device in registration order"),
		),
		s.handleTurnOffAll,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("hub_status",
			mcp.WithDescription("Report the status line of every registered device"),
		),
		s.handleHubStatus,
	)

	// State
	s.mcpServer.AddTool(
		mcp.NewTool("set_device_state",
			mcp.WithDescription("Set the state of a device. Properties are validated against the device's schema."),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description(idDescription),
			),
			mcp.WithObject("state",
				mcp.Required(),
				mcp.Description("State properties to set (e.g. {\"state\": \"ON\", \"temperature\": 20, \"fan_speed\": 2})"),
			),
		),
		s.handleSetDeviceState,
	)

	// Security
	s.mcpServer.AddTool(
		mcp.NewTool("security_action",
			mcp.WithDescription("Run a security system action. Alarm and motion actions need the system armed, recording actions need active cameras."),
			mcp.WithString("action",
				mcp.Required(),
				mcp.Description("Action to run"),
				mcp.Enum(securityActionNames()...),
			),
		),
		s.handleSecurityAction,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("set_sensitivity",
			mcp.WithDescription("Set the motion sensor sensitivity"),
			mcp.WithNumber("level",
				mcp.Required(),
				mcp.Description("Sensitivity level 1-10"),
			),
		),
		s.handleSetSensitivity,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("get_security_logs",
			mcp.WithDescription("Return the security event log in chronological order"),
		),
		s.handleGetSecurityLogs,
	)
}
