package mcp

import (
	"context"
	"fmt"
	"io"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/takakiwakuda/CenterWindow/internal/center"
	"github.com/takakiwakuda/CenterWindow/internal/geometry"
)

func (s *Server) handleCenterWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args CenterWindowInput) (*mcpsdk.CallToolResult, CenterWindowOutput, error) {
	// Awareness was set once at server startup; setting the context
	// again would fail with ERROR_ACCESS_DENIED, so skip it here.
	opts := center.Options{
		DisableDPIAwareness: true,
		UseWorkArea:         args.UseWorkArea,
		DryRun:              args.DryRun,
	}

	res, err := center.New(s.platform, io.Discard).Run(uintptr(args.Handle), opts)
	if err != nil {
		return nil, CenterWindowOutput{}, fmt.Errorf("window %d: %w", args.Handle, err)
	}

	return nil, CenterWindowOutput{
		Handle:  args.Handle,
		X:       res.Target.X,
		Y:       res.Target.Y,
		Width:   res.Window.Width(),
		Height:  res.Window.Height(),
		Monitor: res.Monitor.Device,
		Moved:   res.Moved,
	}, nil
}

func (s *Server) handleWindowInfo(_ context.Context, _ *mcpsdk.CallToolRequest, args WindowInfoInput) (*mcpsdk.CallToolResult, WindowInfoOutput, error) {
	handle := uintptr(args.Handle)

	win, err := s.platform.WindowRect(handle)
	if err != nil {
		return nil, WindowInfoOutput{}, fmt.Errorf("window %d: %w", args.Handle, err)
	}
	mon, err := s.platform.MonitorForWindow(handle)
	if err != nil {
		return nil, WindowInfoOutput{}, fmt.Errorf("window %d: %w", args.Handle, err)
	}

	dpi := s.platform.WindowDPI(handle)
	if dpi <= 0 {
		dpi = 96
	}

	return nil, WindowInfoOutput{
		Handle:       args.Handle,
		Title:        s.platform.WindowTitle(handle),
		Rect:         rectInfo(win),
		ScalePercent: dpi * 100 / 96,
		Monitor:      monitorInfo(mon),
	}, nil
}

func (s *Server) handleListMonitors(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListMonitorsInput) (*mcpsdk.CallToolResult, ListMonitorsOutput, error) {
	monitors, err := s.platform.Monitors()
	if err != nil {
		return nil, ListMonitorsOutput{}, err
	}

	out := ListMonitorsOutput{Monitors: make([]MonitorInfo, 0, len(monitors))}
	for _, mon := range monitors {
		out.Monitors = append(out.Monitors, monitorInfo(mon))
	}
	return nil, out, nil
}

func rectInfo(r geometry.Rect) RectInfo {
	return RectInfo{
		Left:   r.Left,
		Top:    r.Top,
		Right:  r.Right,
		Bottom: r.Bottom,
		Width:  r.Width(),
		Height: r.Height(),
	}
}

func monitorInfo(m center.Monitor) MonitorInfo {
	return MonitorInfo{
		Device:       m.Device,
		Primary:      m.Primary,
		ScalePercent: m.Scale(),
		Bounds:       rectInfo(m.Bounds),
		WorkArea:     rectInfo(m.WorkArea),
	}
}
