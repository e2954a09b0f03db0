// Package config loads the optional user configuration that supplies
// default values for the centering flags. Command-line flags always win
// over the file.
package config

// Config holds the persisted flag defaults.
type Config struct {
	// UseWorkArea centers within the monitor work area by default.
	UseWorkArea bool `yaml:"use_work_area"`
	// DisableDPIAwareness skips the per-monitor DPI awareness call.
	DisableDPIAwareness bool `yaml:"disable_dpi_awareness"`
	// Verbose always prints window and screen diagnostics.
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the built-in defaults: every option off.
func DefaultConfig() *Config {
	return &Config{}
}
