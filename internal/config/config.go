package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"docview/internal/infra/logx"
	"docview/internal/viewport"
)

// EnvPath overrides the config file location.
const EnvPath = "DOCVIEW_CONFIG"

// Config is the on-disk configuration of the viewer.
type Config struct {
	Viewer   ViewerConfig   `toml:"viewer"`
	Layout   LayoutConfig   `toml:"layout"`
	Terminal TerminalConfig `toml:"terminal"`
	Log      LogConfig      `toml:"log"`
}

// ViewerConfig holds the initial viewing state.
type ViewerConfig struct {
	Mode         string `toml:"mode"`
	Zoom         string `toml:"zoom"`
	SidebarWidth int    `toml:"sidebar_width"` // columns
	ShowSidebar  bool   `toml:"show_sidebar"`
}

// LayoutConfig mirrors viewport.Settings, in pixels.
type LayoutConfig struct {
	BaseWidth                float64 `toml:"base_width"`
	Breakpoint               float64 `toml:"breakpoint"`
	PageRail                 float64 `toml:"page_rail"`
	SmallPageRail            float64 `toml:"small_page_rail"`
	VerticalPageMargin       float64 `toml:"vertical_page_margin"`
	DocumentMargin           float64 `toml:"document_margin"`
	AnnotationDocumentMargin float64 `toml:"annotation_document_margin"`
	DefaultAspect            float64 `toml:"default_aspect"`
	VisibleOffset            float64 `toml:"visible_offset"`
	AnnotationOffset         float64 `toml:"annotation_offset"`
}

// TerminalConfig maps pixel geometry onto terminal cells.
type TerminalConfig struct {
	PixelsPerRow        float64 `toml:"pixels_per_row"`
	PixelsPerColumn     float64 `toml:"pixels_per_column"`
	MeasureBatch        int     `toml:"measure_batch"`
	MeasureIntervalMsec int     `toml:"measure_interval_ms"`
}

// LogConfig configures logx.
type LogConfig struct {
	Level   string `toml:"level"`
	File    string `toml:"file"`
	Verbose bool   `toml:"verbose"`
}

// Default returns the built-in configuration.
func Default() Config {
	s := viewport.DefaultSettings()
	return Config{
		Viewer: ViewerConfig{
			Mode:         string(viewport.ModeImage),
			Zoom:         viewport.ZoomOptions[len(viewport.ZoomOptions)-1].String(),
			SidebarWidth: 32,
		},
		Layout: LayoutConfig{
			BaseWidth:                s.BaseWidth,
			Breakpoint:               s.Breakpoint,
			PageRail:                 s.BasePageRail,
			SmallPageRail:            s.SmallPageRail,
			VerticalPageMargin:       s.VerticalPageMargin,
			DocumentMargin:           s.DocumentMargin,
			AnnotationDocumentMargin: s.AnnotationDocumentMargin,
			DefaultAspect:            s.DefaultAspect,
			VisibleOffset:            s.VisibleOffset,
			AnnotationOffset:         s.AnnotationOffset,
		},
		Terminal: TerminalConfig{
			PixelsPerRow:        24,
			PixelsPerColumn:     8,
			MeasureBatch:        4,
			MeasureIntervalMsec: 60,
		},
		Log: LogConfig{Level: "warn"},
	}
}

// DefaultPath returns the config location: $DOCVIEW_CONFIG or
// ~/.docview.toml.
func DefaultPath() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".docview.toml"
	}
	return filepath.Join(home, ".docview.toml")
}

// Load reads path over the defaults. A missing file is not an error.
// Environment overrides are applied last and the result is validated; the
// returned warnings name every value that was reset. Load runs before
// logging is configured, so reporting them is left to the caller.
func Load(path string) (Config, []string, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// defaults
	case err != nil:
		return cfg, nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Default(), nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	applyEnv(&cfg)
	return cfg, cfg.Validate(), nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DOCVIEW_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("DOCVIEW_MODE"); v != "" {
		cfg.Viewer.Mode = v
	}
	if v := os.Getenv("DOCVIEW_ZOOM"); v != "" {
		cfg.Viewer.Zoom = v
	}
}

// Validate resets out-of-range values to their defaults and returns a
// warning for each one.
func (c *Config) Validate() []string {
	def := Default()
	var warnings []string
	reset := func(name string, bad bool, fix func()) {
		if bad {
			fix()
			warnings = append(warnings, name+" out of range, using default")
		}
	}

	if _, err := viewport.ParseMode(c.Viewer.Mode); err != nil {
		c.Viewer.Mode = def.Viewer.Mode
		warnings = append(warnings, err.Error())
	}
	if _, err := viewport.ParseZoom(c.Viewer.Zoom); err != nil {
		c.Viewer.Zoom = def.Viewer.Zoom
		warnings = append(warnings, err.Error())
	}
	if _, err := logx.ParseLevel(c.Log.Level); err != nil {
		c.Log.Level = def.Log.Level
		warnings = append(warnings, err.Error())
	}

	reset("viewer.sidebar_width", c.Viewer.SidebarWidth < 8, func() { c.Viewer.SidebarWidth = def.Viewer.SidebarWidth })
	reset("layout.base_width", c.Layout.BaseWidth <= 0, func() { c.Layout.BaseWidth = def.Layout.BaseWidth })
	reset("layout.breakpoint", c.Layout.Breakpoint < 0, func() { c.Layout.Breakpoint = def.Layout.Breakpoint })
	reset("layout.page_rail", c.Layout.PageRail < 0, func() { c.Layout.PageRail = def.Layout.PageRail })
	reset("layout.small_page_rail", c.Layout.SmallPageRail < 0, func() { c.Layout.SmallPageRail = def.Layout.SmallPageRail })
	reset("layout.vertical_page_margin", c.Layout.VerticalPageMargin < 0, func() { c.Layout.VerticalPageMargin = def.Layout.VerticalPageMargin })
	reset("layout.document_margin", c.Layout.DocumentMargin < 0, func() { c.Layout.DocumentMargin = def.Layout.DocumentMargin })
	reset("layout.annotation_document_margin", c.Layout.AnnotationDocumentMargin < 0, func() {
		c.Layout.AnnotationDocumentMargin = def.Layout.AnnotationDocumentMargin
	})
	reset("layout.default_aspect", c.Layout.DefaultAspect <= 0, func() { c.Layout.DefaultAspect = def.Layout.DefaultAspect })
	reset("layout.visible_offset", c.Layout.VisibleOffset > 0, func() { c.Layout.VisibleOffset = def.Layout.VisibleOffset })
	reset("terminal.pixels_per_row", c.Terminal.PixelsPerRow < 1, func() { c.Terminal.PixelsPerRow = def.Terminal.PixelsPerRow })
	reset("terminal.pixels_per_column", c.Terminal.PixelsPerColumn < 1, func() { c.Terminal.PixelsPerColumn = def.Terminal.PixelsPerColumn })
	reset("terminal.measure_batch", c.Terminal.MeasureBatch < 1, func() { c.Terminal.MeasureBatch = def.Terminal.MeasureBatch })
	reset("terminal.measure_interval_ms", c.Terminal.MeasureIntervalMsec < 1, func() {
		c.Terminal.MeasureIntervalMsec = def.Terminal.MeasureIntervalMsec
	})
	return warnings
}

// Save writes cfg to path as TOML.
func Save(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Settings converts the layout section for the viewport controller.
func (c Config) Settings() viewport.Settings {
	return viewport.Settings{
		BaseWidth:                c.Layout.BaseWidth,
		Breakpoint:               c.Layout.Breakpoint,
		BasePageRail:             c.Layout.PageRail,
		SmallPageRail:            c.Layout.SmallPageRail,
		VerticalPageMargin:       c.Layout.VerticalPageMargin,
		DocumentMargin:           c.Layout.DocumentMargin,
		AnnotationDocumentMargin: c.Layout.AnnotationDocumentMargin,
		DefaultAspect:            c.Layout.DefaultAspect,
		VisibleOffset:            c.Layout.VisibleOffset,
		AnnotationOffset:         c.Layout.AnnotationOffset,
	}
}

// Options builds controller options from the viewer section. Call after
// Validate; unparsable values fall back to the defaults.
func (c Config) Options() viewport.Options {
	opts := viewport.DefaultOptions()
	opts.Settings = c.Settings()
	if m, err := viewport.ParseMode(c.Viewer.Mode); err == nil {
		opts.Mode = m
	}
	if z, err := viewport.ParseZoom(c.Viewer.Zoom); err == nil {
		opts.Zoom = z
	}
	return opts
}

// LogLevel returns the configured level.
func (c Config) LogLevel() logx.Level {
	l, _ := logx.ParseLevel(c.Log.Level)
	return l
}

// MeasureInterval is the delay between measurement batches.
func (c Config) MeasureInterval() time.Duration {
	return time.Duration(c.Terminal.MeasureIntervalMsec) * time.Millisecond
}

