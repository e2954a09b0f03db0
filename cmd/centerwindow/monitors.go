package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/takakiwakuda/CenterWindow/internal/center"
	"github.com/takakiwakuda/CenterWindow/internal/console"
	"github.com/takakiwakuda/CenterWindow/internal/geometry"
	"github.com/takakiwakuda/CenterWindow/internal/winapi"
)

type monitorRectJSON struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

type monitorJSON struct {
	Device       string          `json:"device"`
	Primary      bool            `json:"primary"`
	ScalePercent int             `json:"scale_percent"`
	Bounds       monitorRectJSON `json:"bounds"`
	WorkArea     monitorRectJSON `json:"work_area"`
}

func runMonitors(args []string) int {
	fs := flag.NewFlagSet("monitors", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: centerwindow monitors [--json]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "List attached monitors with their bounds, work areas and DPI scale.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	jsonOut := fs.Bool("json", false, "Output monitor details as JSON")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "monitors takes no arguments")
		return 2
	}

	printer := console.NewPrinter()

	api := winapi.New()
	// Without awareness the bounds come back virtualized on scaled
	// monitors; a failure is survivable here.
	_ = api.SetPerMonitorDPIAware()

	monitors, err := api.Monitors()
	if err != nil {
		printer.Error(err)
		return 1
	}

	if *jsonOut {
		out := make([]monitorJSON, 0, len(monitors))
		for _, mon := range monitors {
			out = append(out, monitorJSON{
				Device:       mon.Device,
				Primary:      mon.Primary,
				ScalePercent: mon.Scale(),
				Bounds:       toMonitorRectJSON(mon.Bounds),
				WorkArea:     toMonitorRectJSON(mon.WorkArea),
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			printer.Error(err)
			return 1
		}
		return 0
	}

	for _, mon := range monitors {
		printMonitor(mon)
	}
	return 0
}

func printMonitor(mon center.Monitor) {
	suffix := ""
	if mon.Primary {
		suffix = " (primary)"
	}
	fmt.Printf("%s%s\n", mon.Device, suffix)
	fmt.Printf("  bounds:    %dx%d at (%d, %d)\n",
		mon.Bounds.Width(), mon.Bounds.Height(), mon.Bounds.Left, mon.Bounds.Top)
	fmt.Printf("  work area: %dx%d at (%d, %d)\n",
		mon.WorkArea.Width(), mon.WorkArea.Height(), mon.WorkArea.Left, mon.WorkArea.Top)
	fmt.Printf("  scale:     %d%%\n", mon.Scale())
}

func toMonitorRectJSON(r geometry.Rect) monitorRectJSON {
	return monitorRectJSON{
		Left:   r.Left,
		Top:    r.Top,
		Right:  r.Right,
		Bottom: r.Bottom,
		Width:  r.Width(),
		Height: r.Height(),
	}
}
