package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stderr)
		os.Exit(2)
	}

	switch os.Args[1] {
	case "monitors":
		os.Exit(runMonitors(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		// Anything else is treated as the window handle for the
		// default centering operation.
		os.Exit(runCenter(os.Args[1:]))
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: centerwindow <handle> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Center the window identified by <handle> on its current monitor.")
	fmt.Fprintln(w, "The handle is a Win32 HWND in decimal or 0x-prefixed hex.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --dry-run                  Compute the position without moving the window")
	fmt.Fprintln(w, "  --use-work-area            Center within the work area (excludes the taskbar)")
	fmt.Fprintln(w, "  --disable-dpi-awareness    Skip the per-monitor DPI awareness call")
	fmt.Fprintln(w, "  -v, --verbose              Print window and screen diagnostics before acting")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  monitors            List attached monitors")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print configuration")
	fmt.Fprintln(w, "  mcp serve           Start the MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'centerwindow <command> --help' for command-specific options.")
}
