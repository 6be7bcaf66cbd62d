package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"twoface/internal/layout"
)

// FileName is the config file looked up inside a config directory.
const FileName = "config.yaml"

type Config struct {
	Theme    string       `yaml:"theme"`
	LogLevel string       `yaml:"log_level"`
	Resize   ResizeConfig `yaml:"resize"`
	Layout   LayoutConfig `yaml:"layout"`
}

type ResizeConfig struct {
	DebounceMS int `yaml:"debounce_ms"`
}

// LayoutConfig is a window set together with the terminal size it was
// designed for.
type LayoutConfig struct {
	Rows    int            `yaml:"rows"`
	Cols    int            `yaml:"cols"`
	Windows []WindowConfig `yaml:"windows"`
}

// WindowConfig describes one window. Zero constraints are unset.
type WindowConfig struct {
	ID           string `yaml:"id"`
	Row          int    `yaml:"row"`
	Col          int    `yaml:"col"`
	Rows         int    `yaml:"rows"`
	Cols         int    `yaml:"cols"`
	MinRows      int    `yaml:"min_rows"`
	MinCols      int    `yaml:"min_cols"`
	MaxRows      int    `yaml:"max_rows"`
	MaxCols      int    `yaml:"max_cols"`
	StaticHeight bool   `yaml:"static_height"`
	StaticWidth  bool   `yaml:"static_width"`
}

func DefaultConfig() Config {
	return Config{
		Theme:    "mocha",
		LogLevel: "info",
		Resize:   ResizeConfig{DebounceMS: 100},
		Layout:   DefaultLayout(),
	}
}

// DefaultLayout is a scrollback pane above a one-line status bar and a
// three-line input box, sized for 24x80.
func DefaultLayout() LayoutConfig {
	return LayoutConfig{
		Rows: 24,
		Cols: 80,
		Windows: []WindowConfig{
			{ID: "main", Row: 0, Col: 0, Rows: 20, Cols: 80, MinRows: 3},
			{ID: "status", Row: 20, Col: 0, Rows: 1, Cols: 80, StaticHeight: true},
			{ID: "input", Row: 21, Col: 0, Rows: 3, Cols: 80, StaticHeight: true},
		},
	}
}

func Load() (Config, error) {
	return LoadFrom(getConfigPath())
}

// LoadFromDir loads config.yaml from dir.
func LoadFromDir(dir string) (Config, error) {
	return LoadFrom(filepath.Join(dir, FileName))
}

func LoadFrom(configPath string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	// A file that names its own layout replaces the default one entirely.
	cfg.Layout = LayoutConfig{}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}

	if cfg.Theme == "" {
		cfg.Theme = "mocha"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Resize.DebounceMS == 0 {
		cfg.Resize.DebounceMS = 100
	}
	if len(cfg.Layout.Windows) == 0 && cfg.Layout.Rows == 0 && cfg.Layout.Cols == 0 {
		cfg.Layout = DefaultLayout()
	}

	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("invalid config %s: %w", configPath, err)
	}
	return cfg, nil
}

// Validate reports every problem with the config at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Resize.DebounceMS < 0 {
		errs = append(errs, fmt.Errorf("resize.debounce_ms must not be negative, got %d", c.Resize.DebounceMS))
	}
	if err := c.Layout.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Validate checks the terminal size and every window description.
func (l *LayoutConfig) Validate() error {
	var errs []error
	if l.Rows <= 0 || l.Cols <= 0 {
		errs = append(errs, fmt.Errorf("layout size must be positive, got %dx%d", l.Rows, l.Cols))
	}

	seen := make(map[string]bool, len(l.Windows))
	for i, w := range l.Windows {
		name := w.ID
		if name == "" {
			name = fmt.Sprintf("#%d", i)
			errs = append(errs, fmt.Errorf("window %s: id is required", name))
		} else if seen[w.ID] {
			errs = append(errs, fmt.Errorf("window %s: duplicate id", name))
		}
		seen[w.ID] = true

		if w.Row < 0 || w.Col < 0 {
			errs = append(errs, fmt.Errorf("window %s: position must not be negative, got (%d,%d)", name, w.Row, w.Col))
		}
		if w.Rows <= 0 || w.Cols <= 0 {
			errs = append(errs, fmt.Errorf("window %s: size must be positive, got %dx%d", name, w.Rows, w.Cols))
		}
		if w.MinRows < 0 || w.MinCols < 0 || w.MaxRows < 0 || w.MaxCols < 0 {
			errs = append(errs, fmt.Errorf("window %s: constraints must not be negative", name))
		}
		if w.MaxRows > 0 && w.MinRows > w.MaxRows {
			errs = append(errs, fmt.Errorf("window %s: min_rows %d exceeds max_rows %d", name, w.MinRows, w.MaxRows))
		}
		if w.MaxCols > 0 && w.MinCols > w.MaxCols {
			errs = append(errs, fmt.Errorf("window %s: min_cols %d exceeds max_cols %d", name, w.MinCols, w.MaxCols))
		}
	}
	return errors.Join(errs...)
}

// Build returns fresh live windows for the layout. Each call allocates a
// new set, so a reload never aliases windows a running engine still owns.
func (l LayoutConfig) Build() []*layout.Window {
	windows := make([]*layout.Window, 0, len(l.Windows))
	for _, w := range l.Windows {
		windows = append(windows, &layout.Window{
			ID:           w.ID,
			Row:          w.Row,
			Col:          w.Col,
			Rows:         w.Rows,
			Cols:         w.Cols,
			MinRows:      w.MinRows,
			MinCols:      w.MinCols,
			MaxRows:      w.MaxRows,
			MaxCols:      w.MaxCols,
			StaticHeight: w.StaticHeight,
			StaticWidth:  w.StaticWidth,
		})
	}
	return windows
}

// DebounceWindow returns the configured debounce window.
func (r ResizeConfig) DebounceWindow() time.Duration {
	return time.Duration(r.DebounceMS) * time.Millisecond
}

// Path returns the config file path Load reads, honoring configDir when set.
func Path(configDir string) string {
	if configDir != "" {
		return filepath.Join(configDir, FileName)
	}
	return getConfigPath()
}

func getConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "twoface", FileName)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "twoface", FileName)
	}

	return filepath.Join(home, ".config", "twoface", FileName)
}
