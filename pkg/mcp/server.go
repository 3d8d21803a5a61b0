package mcp

import (
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/urmzd/smarthome/pkg/device/schema"
	"github.com/urmzd/smarthome/pkg/hub"
)

// Server wraps the MCP server with the hub's device operations
type Server struct {
	mcpServer *server.MCPServer
	hub       *hub.Hub
	validator *schema.Validator
	loc       *time.Location
}

// NewServer creates a new MCP server over h. Security log timestamps are
// rendered in loc.
func NewServer(h *hub.Hub, validator *schema.Validator, loc *time.Location) *Server {
	if loc == nil {
		loc = time.UTC
	}
	s := &Server{
		hub:       h,
		validator: validator,
		loc:       loc,
	}

	s.mcpServer = server.NewMCPServer(
		"smarthome",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	s.registerTools()

	return s
}

// ServeStdio starts the MCP server using stdio transport
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
