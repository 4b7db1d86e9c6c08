// Package config loads the meshtopo settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the settings read from config.toml
type Config struct {
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
	Watch  WatchConfig  `toml:"watch"`
}

// OutputConfig controls how reports and meshes are written
type OutputConfig struct {
	// Format is text, yaml or json
	Format string `toml:"format"`
	// Geometry adds coordinate measurements to info reports
	Geometry bool `toml:"geometry"`
}

// LogConfig controls the logger
type LogConfig struct {
	Level string `toml:"level"`
}

// WatchConfig controls the watch command
type WatchConfig struct {
	Debounce string `toml:"debounce"`
}

// Default returns the settings used when no file is present
func Default() Config {
	return Config{
		Output: OutputConfig{Format: "text", Geometry: true},
		Log:    LogConfig{Level: "info"},
		Watch:  WatchConfig{Debounce: "200ms"},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/meshtopo/config.toml, falling back
// to the user config directory of the platform.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		if dir, err = os.UserConfigDir(); err != nil {
			return ""
		}
	}
	return filepath.Join(dir, "meshtopo", "config.toml")
}

// Load reads the settings from path on top of the defaults. An empty path
// reads DefaultPath, which may be missing.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return cfg, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}
	return cfg, cfg.Validate()
}

// Validate checks the enumerated and duration settings
func (c Config) Validate() error {
	switch c.Output.Format {
	case "text", "yaml", "json":
	default:
		return fmt.Errorf("invalid output format %q", c.Output.Format)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if _, err := c.DebounceDuration(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses the log level name
func (c Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.Log.Level))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return level, nil
}

// DebounceDuration parses the watch debounce interval
func (c Config) DebounceDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil {
		return 0, fmt.Errorf("invalid watch debounce %q: %w", c.Watch.Debounce, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid watch debounce %q: negative", c.Watch.Debounce)
	}
	return d, nil
}
