// Package config holds the settings of the cube binary. Everything has a
// compiled-in default; an optional YAML file can override individual fields.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Filename is the config file cmd/cube looks for in the working directory.
const Filename = "cube.yml"

// Config is the top-level configuration.
type Config struct {
	Window  Window  `yaml:"window"`
	Shaders Shaders `yaml:"shaders"`
	Log     Log     `yaml:"log"`
}

// Window configures the window and its swap behaviour.
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// Shaders locates the shader sources and decides how build failures are
// treated. With Strict unset a failed compile or link is logged and the
// program is used anyway.
type Shaders struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
	Strict   bool   `yaml:"strict"`
}

// Log configures the stderr logger.
type Log struct {
	Level string `yaml:"level"` // debug, info, warn or error
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		Window: Window{
			Width:  1280,
			Height: 720,
			Title:  "GL Example",
			VSync:  true,
		},
		Shaders: Shaders{
			Vertex:   "resrc/shaders/phong.vert",
			Fragment: "resrc/shaders/phong.frag",
			Strict:   true,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads path on top of Default. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Shaders.Vertex == "" || c.Shaders.Fragment == "" {
		return errors.New("shader paths must not be empty")
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel converts the configured level name.
func (l Log) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", l.Level)
	}
}
