//go:build windows

// Package winapi implements center.Platform on top of user32 and shcore.
package winapi

import (
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/takakiwakuda/CenterWindow/internal/center"
	"github.com/takakiwakuda/CenterWindow/internal/geometry"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	shcore = windows.NewLazySystemDLL("shcore.dll")

	procEnumDisplayMonitors           = user32.NewProc("EnumDisplayMonitors")
	procGetDpiForWindow               = user32.NewProc("GetDpiForWindow")
	procGetMonitorInfoW               = user32.NewProc("GetMonitorInfoW")
	procGetWindowRect                 = user32.NewProc("GetWindowRect")
	procGetWindowTextLengthW          = user32.NewProc("GetWindowTextLengthW")
	procGetWindowTextW                = user32.NewProc("GetWindowTextW")
	procMonitorFromWindow             = user32.NewProc("MonitorFromWindow")
	procMoveWindow                    = user32.NewProc("MoveWindow")
	procSetProcessDpiAwarenessContext = user32.NewProc("SetProcessDpiAwarenessContext")
	procGetDpiForMonitor              = shcore.NewProc("GetDpiForMonitor")
)

const (
	monitorDefaultToNearest = 0x00000002
	monitorinfofPrimary     = 0x00000001
	mdtEffectiveDPI         = 0
	baselineDPI             = 96

	// DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE_V2 is the pseudo-handle -4.
	perMonitorAwareV2 = ^uintptr(3)
)

type rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

type monitorInfoEx struct {
	Size    uint32
	Monitor rect
	Work    rect
	Flags   uint32
	Device  [32]uint16
}

// API implements center.Platform using Win32 calls.
type API struct{}

func New() *API { return &API{} }

// SetPerMonitorDPIAware opts the process into per-monitor DPI awareness
// (v2) so window and monitor rectangles come back in physical pixels.
// On Windows older than 1703 the entry point does not exist.
func (*API) SetPerMonitorDPIAware() error {
	if err := procSetProcessDpiAwarenessContext.Find(); err != nil {
		return &CallError{
			Op:      "SetProcessDpiAwarenessContext",
			Code:    uint32(windows.ERROR_PROC_NOT_FOUND),
			Message: "Per-monitor DPI awareness is not supported on this version of Windows",
		}
	}
	ret, _, callErr := procSetProcessDpiAwarenessContext.Call(perMonitorAwareV2)
	if ret == 0 {
		return newCallError("SetProcessDpiAwarenessContext", callErr)
	}
	return nil
}

func (*API) WindowRect(handle uintptr) (geometry.Rect, error) {
	var rc rect
	ret, _, callErr := procGetWindowRect.Call(handle, uintptr(unsafe.Pointer(&rc)))
	if ret == 0 {
		return geometry.Rect{}, newCallError("GetWindowRect", callErr)
	}
	return toRect(rc), nil
}

// WindowTitle returns the window caption. Windows without a caption and
// failed lookups both yield ""; callers treat the title as advisory.
func (*API) WindowTitle(handle uintptr) string {
	length, _, _ := procGetWindowTextLengthW.Call(handle)
	if length == 0 {
		return ""
	}
	buf := make([]uint16, length+1)
	n, _, _ := procGetWindowTextW.Call(handle, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if n == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}

// WindowDPI returns the DPI the window is rendered at, falling back to
// the 96 baseline when GetDpiForWindow is unavailable (pre-1607) or the
// handle is invalid. The value is diagnostic only.
func (*API) WindowDPI(handle uintptr) int {
	if err := procGetDpiForWindow.Find(); err != nil {
		return baselineDPI
	}
	dpi, _, _ := procGetDpiForWindow.Call(handle)
	if dpi == 0 {
		return baselineDPI
	}
	return int(dpi)
}

// MonitorForWindow resolves the monitor nearest to the window.
// MONITOR_DEFAULTTONEAREST keeps off-screen windows resolvable, but an
// invalid handle still fails.
func (*API) MonitorForWindow(handle uintptr) (center.Monitor, error) {
	hmon, _, callErr := procMonitorFromWindow.Call(handle, monitorDefaultToNearest)
	if hmon == 0 {
		return center.Monitor{}, newCallError("MonitorFromWindow", callErr)
	}
	return monitorInfo(hmon)
}

// MoveWindow repositions the window, keeping the given size, and asks
// the system to repaint it.
func (*API) MoveWindow(handle uintptr, x, y, width, height int) error {
	ret, _, callErr := procMoveWindow.Call(handle,
		uintptr(x), uintptr(y), uintptr(width), uintptr(height), 1)
	if ret == 0 {
		return newCallError("MoveWindow", callErr)
	}
	return nil
}

type monitorEnum struct {
	monitors []center.Monitor
	err      error
}

// Callback slots come from a fixed per-process pool that is never
// released, so the callback is allocated once and results travel
// through the lparam pointer.
var enumMonitorsCallback = windows.NewCallback(func(hmon, hdc, lprc, lparam uintptr) uintptr {
	acc := (*monitorEnum)(unsafe.Pointer(lparam))
	mon, err := monitorInfo(hmon)
	if err != nil {
		acc.err = err
		return 0 // stop enumeration
	}
	acc.monitors = append(acc.monitors, mon)
	return 1
})

// Monitors lists every attached monitor in enumeration order.
func (*API) Monitors() ([]center.Monitor, error) {
	var acc monitorEnum
	ret, _, callErr := procEnumDisplayMonitors.Call(0, 0, enumMonitorsCallback, uintptr(unsafe.Pointer(&acc)))
	if acc.err != nil {
		return nil, acc.err
	}
	if ret == 0 {
		return nil, newCallError("EnumDisplayMonitors", callErr)
	}
	return acc.monitors, nil
}

func monitorInfo(hmon uintptr) (center.Monitor, error) {
	var mi monitorInfoEx
	mi.Size = uint32(unsafe.Sizeof(mi))
	ret, _, callErr := procGetMonitorInfoW.Call(hmon, uintptr(unsafe.Pointer(&mi)))
	if ret == 0 {
		return center.Monitor{}, newCallError("GetMonitorInfoW", callErr)
	}
	return center.Monitor{
		Device:   windows.UTF16ToString(mi.Device[:]),
		Bounds:   toRect(mi.Monitor),
		WorkArea: toRect(mi.Work),
		Primary:  mi.Flags&monitorinfofPrimary != 0,
		DPI:      monitorDPI(hmon),
	}, nil
}

// monitorDPI queries the effective DPI via shcore, introduced in
// Windows 8.1. Failures fall back to the 96 baseline.
func monitorDPI(hmon uintptr) int {
	if err := procGetDpiForMonitor.Find(); err != nil {
		return baselineDPI
	}
	var dpiX, dpiY uint32
	hr, _, _ := procGetDpiForMonitor.Call(hmon, mdtEffectiveDPI,
		uintptr(unsafe.Pointer(&dpiX)), uintptr(unsafe.Pointer(&dpiY)))
	if hr != 0 || dpiX == 0 {
		return baselineDPI
	}
	return int(dpiX)
}

func toRect(rc rect) geometry.Rect {
	return geometry.Rect{
		Left:   int(rc.Left),
		Top:    int(rc.Top),
		Right:  int(rc.Right),
		Bottom: int(rc.Bottom),
	}
}

// newCallError wraps the GetLastError value from a failed proc call.
// Call always returns a windows.Errno; zero means the API signalled
// failure without setting a last error.
func newCallError(op string, err error) error {
	ce := &CallError{Op: op}
	if errno, ok := err.(windows.Errno); ok && errno != 0 {
		ce.Code = uint32(errno)
		ce.Message = strings.TrimRight(errno.Error(), ".\r\n") + "."
	} else {
		ce.Message = op + " failed."
	}
	return ce
}
