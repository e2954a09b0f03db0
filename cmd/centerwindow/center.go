package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/takakiwakuda/CenterWindow/internal/center"
	"github.com/takakiwakuda/CenterWindow/internal/config"
	"github.com/takakiwakuda/CenterWindow/internal/console"
	"github.com/takakiwakuda/CenterWindow/internal/winapi"
)

func runCenter(args []string) int {
	printer := console.NewPrinter()

	cfg, err := config.Load()
	if err != nil {
		printer.Error(err)
		return 1
	}

	fs := flag.NewFlagSet("centerwindow", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() { printMainUsage(os.Stderr) }
	dryRun := fs.Bool("dry-run", false, "Compute the position without moving the window")
	useWorkArea := fs.Bool("use-work-area", cfg.UseWorkArea, "Center within the work area (excludes the taskbar)")
	disableDPI := fs.Bool("disable-dpi-awareness", cfg.DisableDPIAwareness, "Skip the per-monitor DPI awareness call")
	verbose := fs.Bool("verbose", cfg.Verbose, "Print window and screen diagnostics before acting")
	fs.BoolVar(verbose, "v", cfg.Verbose, "Print window and screen diagnostics before acting")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "a window handle is required")
		fmt.Fprintln(os.Stderr, "")
		printMainUsage(os.Stderr)
		return 2
	}

	handleArg := fs.Arg(0)
	// Flags may also follow the handle.
	if err := fs.Parse(fs.Args()[1:]); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "unexpected argument: %s\n", fs.Arg(0))
		return 2
	}

	handle, err := parseHandle(handleArg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	centerer := center.New(winapi.New(), os.Stdout)
	opts := center.Options{
		DisableDPIAwareness: *disableDPI,
		DryRun:              *dryRun,
		UseWorkArea:         *useWorkArea,
		Verbose:             *verbose,
	}
	if _, err := centerer.Run(handle, opts); err != nil {
		printer.Error(err)
		return 1
	}
	return 0
}

// parseHandle accepts decimal or 0x-prefixed hexadecimal window handles.
// Zero is passed through so the platform reports the real error.
func parseHandle(s string) (uintptr, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid window handle %q", s)
	}
	return uintptr(v), nil
}
