package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"docview/internal/viewport"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docview.toml")
	content := []byte(`
[viewer]
mode = "text"
zoom = "Fit"

[layout]
vertical_page_margin = 4.0

[terminal]
pixels_per_row = 16.0
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	cfg, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Viewer.Mode != "text" || cfg.Viewer.Zoom != "Fit" {
		t.Fatalf("unexpected viewer section: %+v", cfg.Viewer)
	}
	if cfg.Layout.VerticalPageMargin != 4 || cfg.Layout.BaseWidth != viewport.DefaultBaseWidth {
		t.Fatalf("unexpected layout section: %+v", cfg.Layout)
	}
	if cfg.Terminal.PixelsPerRow != 16 {
		t.Fatalf("unexpected terminal section: %+v", cfg.Terminal)
	}

	opts := cfg.Options()
	if opts.Mode != viewport.ModeText || opts.Zoom != viewport.ZoomFit {
		t.Fatalf("unexpected options: %+v", opts)
	}
	if opts.Settings.VerticalPageMargin != 4 {
		t.Fatalf("settings not converted: %+v", opts.Settings)
	}
}

func TestLoadReturnsValidationWarnings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docview.toml")
	content := []byte(`
[viewer]
mode = "pdf"

[terminal]
pixels_per_row = 0.0
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	cfg, warnings, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %d: %v", len(warnings), warnings)
	}
	if !strings.Contains(warnings[1], "terminal.pixels_per_row") {
		t.Fatalf("unexpected warning %q", warnings[1])
	}
	if cfg != Default() {
		t.Fatalf("expected bad values reset to defaults, got %+v", cfg)
	}

	_, warnings, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil || len(warnings) != 0 {
		t.Fatalf("defaults should load cleanly, got %v %v", warnings, err)
	}
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("[viewer\nmode="), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	_, _, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DOCVIEW_MODE", "text")
	t.Setenv("DOCVIEW_ZOOM", "75%")
	t.Setenv("DOCVIEW_LOG_LEVEL", "debug")
	cfg, _, err := Load(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Viewer.Mode != "text" || cfg.Viewer.Zoom != "75%" || cfg.Log.Level != "debug" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}

func TestValidateResetsBadValues(t *testing.T) {
	cfg := Default()
	cfg.Viewer.Mode = "pdf"
	cfg.Viewer.Zoom = "120%"
	cfg.Layout.BaseWidth = -1
	cfg.Layout.DefaultAspect = 0
	cfg.Terminal.PixelsPerRow = 0
	cfg.Log.Level = "loud"

	warnings := cfg.Validate()
	if len(warnings) != 6 {
		t.Fatalf("expected 6 warnings, got %d: %v", len(warnings), warnings)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults after validation, got %+v", cfg)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "docview.toml")
	cfg := Default()
	cfg.Viewer.Zoom = "150%"
	cfg.Log.File = "docview.log"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	got, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got != cfg {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv(EnvPath, "/tmp/custom.toml")
	if got := DefaultPath(); got != "/tmp/custom.toml" {
		t.Fatalf("DefaultPath = %q", got)
	}

	t.Setenv(EnvPath, "")
	home := t.TempDir()
	t.Setenv("HOME", home)
	if got := DefaultPath(); got != filepath.Join(home, ".docview.toml") {
		t.Fatalf("DefaultPath = %q", got)
	}
}
