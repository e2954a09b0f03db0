// Package center implements the core operation: compute the centered
// position of a window on its current monitor and move it there.
package center

import (
	"fmt"
	"io"

	"github.com/takakiwakuda/CenterWindow/internal/geometry"
)

// Options control a single centering run.
type Options struct {
	// DisableDPIAwareness skips the per-monitor DPI awareness call.
	// Coordinates on scaled monitors may then be virtualized.
	DisableDPIAwareness bool
	// DryRun computes and reports the target position without moving
	// the window.
	DryRun bool
	// UseWorkArea centers within the monitor work area instead of the
	// full monitor rectangle.
	UseWorkArea bool
	// Verbose prints window and screen diagnostics before acting.
	Verbose bool
}

// Result reports what a run computed and whether the window was moved.
type Result struct {
	Handle  uintptr
	Window  geometry.Rect
	Screen  geometry.Rect
	Target  geometry.Point
	Monitor Monitor
	Moved   bool
}

// Centerer runs the centering operation against a Platform, writing
// progress to out.
type Centerer struct {
	platform Platform
	out      io.Writer
}

func New(platform Platform, out io.Writer) *Centerer {
	return &Centerer{platform: platform, out: out}
}

// Run centers the window identified by handle on its nearest monitor.
// The window keeps its size. Any platform failure aborts the run; the
// window is never left partially processed because the single move is
// the last step.
func (c *Centerer) Run(handle uintptr, opts Options) (*Result, error) {
	if opts.DisableDPIAwareness {
		fmt.Fprintln(c.out, "DPI awareness is disabled.")
	} else {
		if err := c.platform.SetPerMonitorDPIAware(); err != nil {
			return nil, err
		}
		fmt.Fprintln(c.out, "Per-monitor DPI awareness is enabled.")
	}

	win, err := c.platform.WindowRect(handle)
	if err != nil {
		return nil, err
	}

	mon, err := c.platform.MonitorForWindow(handle)
	if err != nil {
		return nil, err
	}

	screen := mon.Bounds
	if opts.UseWorkArea {
		screen = mon.WorkArea
	}

	target := geometry.CenterIn(win.Width(), win.Height(), screen)

	if opts.Verbose {
		c.printDiagnostics(handle, win, screen, target)
	}

	res := &Result{
		Handle:  handle,
		Window:  win,
		Screen:  screen,
		Target:  target,
		Monitor: mon,
	}

	if opts.DryRun {
		fmt.Fprintf(c.out, "Window %d would move to (%d, %d); no changes were applied.\n",
			handle, target.X, target.Y)
		return res, nil
	}

	if err := c.platform.MoveWindow(handle, target.X, target.Y, win.Width(), win.Height()); err != nil {
		return nil, err
	}
	res.Moved = true

	fmt.Fprintf(c.out, "Window %d moved to (%d, %d).\n", handle, target.X, target.Y)
	return res, nil
}

func (c *Centerer) printDiagnostics(handle uintptr, win, screen geometry.Rect, target geometry.Point) {
	dpi := c.platform.WindowDPI(handle)
	if dpi <= 0 {
		dpi = 96
	}

	fmt.Fprintf(c.out, "Title:         %s\n", c.platform.WindowTitle(handle))
	fmt.Fprintf(c.out, "Handle:        %d\n", handle)
	fmt.Fprintf(c.out, "Top:           %d\n", win.Top)
	fmt.Fprintf(c.out, "Bottom:        %d\n", win.Bottom)
	fmt.Fprintf(c.out, "Right:         %d\n", win.Right)
	fmt.Fprintf(c.out, "Left:          %d\n", win.Left)
	fmt.Fprintf(c.out, "Width:         %d\n", win.Width())
	fmt.Fprintf(c.out, "Height:        %d\n", win.Height())
	fmt.Fprintf(c.out, "Screen Width:  %d\n", screen.Width())
	fmt.Fprintf(c.out, "Screen Height: %d\n", screen.Height())
	fmt.Fprintf(c.out, "Scale:         %d%%\n", dpi*100/96)
	fmt.Fprintf(c.out, "Target X:      %d\n", target.X)
	fmt.Fprintf(c.out, "Target Y:      %d\n", target.Y)
}
