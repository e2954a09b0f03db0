package center

import "github.com/takakiwakuda/CenterWindow/internal/geometry"

// Monitor describes one attached display.
type Monitor struct {
	// Device is the system name of the display, e.g. `\\.\DISPLAY1`.
	Device string
	// Bounds is the full monitor rectangle in virtual-screen coordinates.
	Bounds geometry.Rect
	// WorkArea is Bounds minus taskbars and docked appbars.
	WorkArea geometry.Rect
	// Primary marks the monitor whose top-left corner is the origin.
	Primary bool
	// DPI is the effective DPI of the monitor; 96 means 100% scaling.
	DPI int
}

// Scale returns the monitor scaling factor as a percentage.
func (m Monitor) Scale() int {
	if m.DPI <= 0 {
		return 100
	}
	return m.DPI * 100 / 96
}

// Platform is the window-system surface the centering operation runs
// against. The production implementation wraps user32; tests substitute
// an in-memory fake.
//
// WindowTitle and WindowDPI are diagnostic lookups and never fail: a
// window with no caption yields "" and an unknown DPI yields the 96
// baseline.
type Platform interface {
	// SetPerMonitorDPIAware opts the process into per-monitor DPI
	// awareness so rectangles are reported in physical pixels.
	SetPerMonitorDPIAware() error
	// WindowRect returns the outer bounding rectangle of the window.
	WindowRect(handle uintptr) (geometry.Rect, error)
	// WindowTitle returns the window caption, or "" when there is none.
	WindowTitle(handle uintptr) string
	// WindowDPI returns the DPI the window is rendered at.
	WindowDPI(handle uintptr) int
	// MonitorForWindow returns the monitor nearest to the window. A
	// window dragged off-screen still resolves to its nearest monitor.
	MonitorForWindow(handle uintptr) (Monitor, error)
	// MoveWindow repositions the window without resizing it and asks
	// the system to repaint.
	MoveWindow(handle uintptr, x, y, width, height int) error
	// Monitors lists every attached monitor.
	Monitors() ([]Monitor, error)
}
