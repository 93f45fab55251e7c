package pipeline

import (
	"testing"

	"github.com/ylingene/gallery/pkg/layout"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"json", false},
		{"svg", false},
		{"html", false},
		{"png", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestOptionsValidateForScan(t *testing.T) {
	// Missing source dir
	opts := Options{}
	if err := opts.ValidateForScan(); err == nil {
		t.Error("Missing source dir should fail")
	}

	opts = Options{SourceDir: "photos"}
	if err := opts.ValidateForScan(); err != nil {
		t.Errorf("Valid options should pass: %v", err)
	}
	if opts.Logger == nil {
		t.Error("Logger default should be set")
	}
}

func TestSetLayoutDefaults(t *testing.T) {
	opts := Options{}
	opts.SetLayoutDefaults()

	if opts.ContainerWidth != DefaultContainerWidth {
		t.Errorf("ContainerWidth should be %g, got %g", DefaultContainerWidth, opts.ContainerWidth)
	}
	if opts.TargetRowHeight != layout.DefaultTargetRowHeight {
		t.Errorf("TargetRowHeight should be %g, got %g", layout.DefaultTargetRowHeight, opts.TargetRowHeight)
	}
	if opts.Tolerance != layout.DefaultTolerance {
		t.Errorf("Tolerance should be %g, got %g", layout.DefaultTolerance, opts.Tolerance)
	}
	if opts.BoxSpacing != layout.DefaultBoxSpacing {
		t.Errorf("BoxSpacing should be %g, got %g", layout.DefaultBoxSpacing, opts.BoxSpacing)
	}

	// Explicit values are preserved
	opts = Options{ContainerWidth: 800, Tolerance: 0.1}
	opts.SetLayoutDefaults()
	if opts.ContainerWidth != 800 || opts.Tolerance != 0.1 {
		t.Error("Explicit values should not be overwritten")
	}
}

func TestSetRenderDefaults(t *testing.T) {
	opts := Options{}
	opts.SetRenderDefaults()

	if len(opts.Formats) != 1 || opts.Formats[0] != FormatHTML {
		t.Errorf("Formats should be [html], got %v", opts.Formats)
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{SourceDir: "photos"}

	// First call
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}

	originalWidth := opts.ContainerWidth
	originalFormats := len(opts.Formats)

	// Second call should be idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Second validation failed: %v", err)
	}

	if opts.ContainerWidth != originalWidth {
		t.Error("ContainerWidth changed on second call")
	}
	if len(opts.Formats) != originalFormats {
		t.Error("Formats changed on second call")
	}
}

func TestOptionsValidateAndSetDefaultsRejectsBadConfig(t *testing.T) {
	opts := Options{SourceDir: "photos", Tolerance: 1.5}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("Out-of-range tolerance should fail validation")
	}
}

func TestLayoutConfig(t *testing.T) {
	opts := Options{SourceDir: "photos"}
	opts.SetLayoutDefaults()

	cfg := opts.LayoutConfig()
	if cfg.TargetRowHeight != layout.DefaultTargetRowHeight {
		t.Errorf("config should carry defaults, got target %g", cfg.TargetRowHeight)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestApplyConfig(t *testing.T) {
	cfg := layout.Config{
		BoxSpacing:        4,
		TargetRowHeight:   280,
		Tolerance:         0.2,
		MobileBreakpoint:  400,
		DesktopBreakpoint: 1100,
	}

	// File values fill unset fields
	opts := Options{SourceDir: "photos"}
	opts.ApplyConfig(cfg)
	if opts.TargetRowHeight != 280 || opts.BoxSpacing != 4 {
		t.Error("config file values should fill unset options")
	}

	// Explicit options win
	opts = Options{SourceDir: "photos", TargetRowHeight: 500}
	opts.ApplyConfig(cfg)
	if opts.TargetRowHeight != 500 {
		t.Error("explicit option should win over config file")
	}
}

func TestLayoutKeyOpts(t *testing.T) {
	opts := Options{SourceDir: "photos", ContainerWidth: 1200}
	opts.SetLayoutDefaults()

	ko := opts.LayoutKeyOpts()
	if ko.ContainerWidth != 1200 {
		t.Errorf("key opts should carry container width, got %g", ko.ContainerWidth)
	}
	if ko.TargetRowHeight != layout.DefaultTargetRowHeight {
		t.Errorf("key opts should carry target row height, got %g", ko.TargetRowHeight)
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	opts := Options{SourceDir: "photos", Labels: true}

	ao := opts.ArtifactKeyOpts("svg")
	if ao.Format != "svg" || !ao.Labels || ao.Thumbs {
		t.Errorf("unexpected artifact key opts: %+v", ao)
	}
}
