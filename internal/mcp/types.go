package mcp

// CenterWindowInput is the input schema for the center_window tool.
type CenterWindowInput struct {
	Handle      uint64 `json:"handle" jsonschema:"required,Win32 window handle (HWND) of the window to center, as returned by tools like Spy++ or EnumWindows"`
	UseWorkArea bool   `json:"use_work_area,omitempty" jsonschema:"Center within the monitor work area (excludes the taskbar) instead of the full monitor rectangle"`
	DryRun      bool   `json:"dry_run,omitempty" jsonschema:"Compute the target position without moving the window"`
}

// CenterWindowOutput reports the computed position and whether the
// window was actually moved.
type CenterWindowOutput struct {
	Handle  uint64 `json:"handle"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Monitor string `json:"monitor"`
	Moved   bool   `json:"moved"`
}

// WindowInfoInput is the input schema for the window_info tool.
type WindowInfoInput struct {
	Handle uint64 `json:"handle" jsonschema:"required,Win32 window handle (HWND) to inspect"`
}

// WindowInfoOutput describes a window and the monitor it sits on.
type WindowInfoOutput struct {
	Handle       uint64      `json:"handle"`
	Title        string      `json:"title"`
	Rect         RectInfo    `json:"rect"`
	ScalePercent int         `json:"scale_percent"`
	Monitor      MonitorInfo `json:"monitor"`
}

// ListMonitorsInput is the (empty) input schema for list_monitors.
type ListMonitorsInput struct{}

// ListMonitorsOutput lists every attached monitor.
type ListMonitorsOutput struct {
	Monitors []MonitorInfo `json:"monitors"`
}

// RectInfo is a rectangle in virtual-screen coordinates.
type RectInfo struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// MonitorInfo describes one attached monitor.
type MonitorInfo struct {
	Device       string   `json:"device"`
	Primary      bool     `json:"primary"`
	ScalePercent int      `json:"scale_percent"`
	Bounds       RectInfo `json:"bounds"`
	WorkArea     RectInfo `json:"work_area"`
}
