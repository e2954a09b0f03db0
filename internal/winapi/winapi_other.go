//go:build !windows

package winapi

import (
	"errors"

	"github.com/takakiwakuda/CenterWindow/internal/center"
	"github.com/takakiwakuda/CenterWindow/internal/geometry"
)

// ErrUnsupported is returned by every platform call on non-Windows
// builds. It exists so the pure packages stay buildable and testable
// everywhere.
var ErrUnsupported = errors.New("window positioning requires Windows")

// API satisfies center.Platform; every call fails with ErrUnsupported.
type API struct{}

func New() *API { return &API{} }

func (*API) SetPerMonitorDPIAware() error { return ErrUnsupported }

func (*API) WindowRect(uintptr) (geometry.Rect, error) {
	return geometry.Rect{}, ErrUnsupported
}

func (*API) WindowTitle(uintptr) string { return "" }

func (*API) WindowDPI(uintptr) int { return 96 }

func (*API) MonitorForWindow(uintptr) (center.Monitor, error) {
	return center.Monitor{}, ErrUnsupported
}

func (*API) MoveWindow(uintptr, int, int, int, int) error { return ErrUnsupported }

func (*API) Monitors() ([]center.Monitor, error) { return nil, ErrUnsupported }
