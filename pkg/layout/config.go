package layout

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/ylingene/gallery/pkg/errors"
)

// Default configuration values. These match the breakpoints and row
// geometry the site templates were designed around.
const (
	DefaultBoxSpacing        = 10.0
	DefaultContainerPadding  = 0.0
	DefaultTargetRowHeight   = 320.0
	DefaultTolerance         = 0.25
	DefaultMobileBreakpoint  = 500.0
	DefaultDesktopBreakpoint = 1024.0
)

// Config holds the static geometry settings for a gallery. It is never
// mutated by the engine; the zero value is not usable, call
// DefaultConfig or LoadConfig instead.
type Config struct {
	// BoxSpacing is the horizontal and vertical gap between boxes, in px.
	BoxSpacing float64 `toml:"box_spacing"`

	// ContainerPadding is subtracted from both sides of the container
	// before packing.
	ContainerPadding float64 `toml:"container_padding"`

	// TargetRowHeight is the row height the packer aims for, in px.
	TargetRowHeight float64 `toml:"target_row_height"`

	// Tolerance is the fractional deviation from TargetRowHeight a
	// justified row may have (e.g. 0.25 allows 240..400 for a 320 target).
	Tolerance float64 `toml:"tolerance"`

	// MobileBreakpoint is the container width at or below which the
	// single-column fallback is used.
	MobileBreakpoint float64 `toml:"mobile_breakpoint"`

	// DesktopBreakpoint separates the two eager-load classes, see LoadHint.
	DesktopBreakpoint float64 `toml:"desktop_breakpoint"`
}

// DefaultConfig returns the standard gallery configuration.
func DefaultConfig() Config {
	return Config{
		BoxSpacing:        DefaultBoxSpacing,
		ContainerPadding:  DefaultContainerPadding,
		TargetRowHeight:   DefaultTargetRowHeight,
		Tolerance:         DefaultTolerance,
		MobileBreakpoint:  DefaultMobileBreakpoint,
		DesktopBreakpoint: DefaultDesktopBreakpoint,
	}
}

// Validate checks that the configuration describes usable geometry.
func (c Config) Validate() error {
	if c.TargetRowHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "target row height must be positive, got %v", c.TargetRowHeight)
	}
	if c.Tolerance < 0 || c.Tolerance >= 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "tolerance must be in [0, 1), got %v", c.Tolerance)
	}
	if c.BoxSpacing < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "box spacing must not be negative, got %v", c.BoxSpacing)
	}
	if c.ContainerPadding < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "container padding must not be negative, got %v", c.ContainerPadding)
	}
	if c.MobileBreakpoint > c.DesktopBreakpoint {
		return errors.New(errors.ErrCodeInvalidConfig, "mobile breakpoint %v exceeds desktop breakpoint %v", c.MobileBreakpoint, c.DesktopBreakpoint)
	}
	return nil
}

// LoadConfig reads a TOML configuration file and fills unset fields with
// defaults. Unknown keys are rejected so typos surface at build time.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config %s", path)
	}

	cfg := DefaultConfig()
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q in %s", undecoded[0].String(), path)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
