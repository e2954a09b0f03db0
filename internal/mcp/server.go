// Package mcp exposes window centering to MCP clients over stdio.
package mcp

import (
	"context"
	"log"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/takakiwakuda/CenterWindow/internal/center"
)

const (
	ServerName    = "centerwindow"
	ServerVersion = "1.0.1"
)

// Server is the MCP server for window centering.
type Server struct {
	mcpServer *mcpsdk.Server
	platform  center.Platform
}

func NewServer(platform center.Platform) *Server {
	s := &Server{platform: platform}

	// Awareness is process-wide and must be set before the first
	// geometry query. A failure only degrades coordinates on scaled
	// monitors, so the server keeps running.
	if err := platform.SetPerMonitorDPIAware(); err != nil {
		log.Printf("Warning: failed to enable per-monitor DPI awareness: %v", err)
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "center_window",
		Description: "Center a window on its current monitor given its Win32 handle. The window keeps its size. Optionally center within the work area (excluding the taskbar) or compute the position without moving.",
	}, s.handleCenterWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "window_info",
		Description: "Return the title, bounding rectangle, DPI scale and nearest monitor of a window identified by its Win32 handle.",
	}, s.handleWindowInfo)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_monitors",
		Description: "List all attached monitors with their bounds, work areas, primary flag and DPI scale.",
	}, s.handleListMonitors)
}
