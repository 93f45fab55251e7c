package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ylingene/gallery/pkg/pipeline"
)

func TestRootCommand(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	if root.Use != "gallery" {
		t.Errorf("Use = %q, want gallery", root.Use)
	}

	want := []string{"scan", "layout", "render", "build", "preview", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestCacheDir(t *testing.T) {
	// XDG_CACHE_HOME takes precedence
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")
	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg-cache", "gallery") {
		t.Errorf("dir = %q", dir)
	}

	// Falls back to ~/.cache/gallery
	t.Setenv("XDG_CACHE_HOME", "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}
	dir, err = cacheDir()
	if err != nil {
		t.Fatalf("cacheDir: %v", err)
	}
	if dir != filepath.Join(home, ".cache", "gallery") {
		t.Errorf("dir = %q", dir)
	}
}

func TestNewCache(t *testing.T) {
	// noCache always yields a working null cache
	c, err := newCache(true)
	if err != nil {
		t.Fatalf("newCache(true): %v", err)
	}
	defer c.Close()
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"html"}},
		{"svg", []string{"svg"}},
		{"html,svg,png", []string{"html", "svg", "png"}},
	}

	for _, tt := range tests {
		got := parseFormats(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestApplyConfigFile(t *testing.T) {
	// Empty path is a no-op
	opts := pipeline.Options{}
	if err := applyConfigFile(&opts, ""); err != nil {
		t.Errorf("empty path should be a no-op: %v", err)
	}

	// Valid config fills unset fields
	path := filepath.Join(t.TempDir(), "gallery.toml")
	cfg := `target_row_height = 280.0
tolerance = 0.2
box_spacing = 4.0
`
	if err := os.WriteFile(path, []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}
	opts = pipeline.Options{}
	if err := applyConfigFile(&opts, path); err != nil {
		t.Fatalf("applyConfigFile: %v", err)
	}
	if opts.TargetRowHeight != 280 || opts.Tolerance != 0.2 || opts.BoxSpacing != 4 {
		t.Errorf("config values not applied: %+v", opts)
	}

	// Missing file errors
	if err := applyConfigFile(&opts, filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("missing config file should error")
	}
}
