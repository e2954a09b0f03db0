//go:build windows

package winapi

import "testing"

// The runtime hands out callback slots from a fixed pool of roughly
// 2000 and never frees them, so enumerating must not allocate one per
// call. Looping past the pool size panics if it does.
func TestMonitorsRepeatedEnumeration(t *testing.T) {
	api := New()
	for i := 0; i < 2500; i++ {
		if _, err := api.Monitors(); err != nil {
			t.Fatalf("Monitors failed on iteration %d: %v", i, err)
		}
	}
}

func TestMonitorsReportsAtLeastOneMonitor(t *testing.T) {
	monitors, err := New().Monitors()
	if err != nil {
		t.Fatalf("Monitors failed: %v", err)
	}
	if len(monitors) == 0 {
		t.Fatal("no monitors enumerated")
	}
	for _, mon := range monitors {
		if mon.Bounds.Empty() {
			t.Fatalf("monitor %s has empty bounds %+v", mon.Device, mon.Bounds)
		}
		if mon.WorkArea.Width() > mon.Bounds.Width() || mon.WorkArea.Height() > mon.Bounds.Height() {
			t.Fatalf("monitor %s work area %+v exceeds bounds %+v", mon.Device, mon.WorkArea, mon.Bounds)
		}
	}
}
