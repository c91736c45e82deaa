// Package config loads CLI settings from a TOML file with NATIVEVIEW_*
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the CLI settings.
type Config struct {
	Log      LogConfig      `toml:"log"`
	Render   RenderConfig   `toml:"render"`
	NATS     NATSConfig     `toml:"nats"`
	Theme    ThemeConfig    `toml:"theme"`
	Sessions SessionsConfig `toml:"session"`
}

type LogConfig struct {
	Level  string `toml:"level"`  // NATIVEVIEW_LOG_LEVEL (default "info")
	Format string `toml:"format"` // NATIVEVIEW_LOG_FORMAT: text|json (default "text")
}

type RenderConfig struct {
	Renderer string `toml:"renderer"` // NATIVEVIEW_RENDERER (default "tree")
	Title    string `toml:"title"`    // NATIVEVIEW_TITLE
}

type NATSConfig struct {
	URL           string `toml:"url"`            // NATIVEVIEW_NATS_URL (empty = events are dropped)
	SubjectPrefix string `toml:"subject_prefix"` // NATIVEVIEW_NATS_SUBJECT_PREFIX (default "nativeview.events")
}

type ThemeConfig struct {
	Name    string            `toml:"name"`    // NATIVEVIEW_THEME
	Variant string            `toml:"variant"` // NATIVEVIEW_THEME_VARIANT
	Tokens  map[string]string `toml:"tokens"`
	// Variants holds per-variant token overrides keyed by variant name.
	Variants map[string]map[string]string `toml:"variants"`
}

type SessionsConfig struct {
	ID string `toml:"id"` // NATIVEVIEW_SESSION (empty = generated)
}

// FileName is the config file looked up in the working directory.
const FileName = "nativeview.toml"

const defaultSubjectPrefix = "nativeview.events"

// Default returns the settings used when no file or environment is present.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: "info", Format: "text"},
		Render: RenderConfig{Renderer: "tree"},
		NATS:   NATSConfig{SubjectPrefix: defaultSubjectPrefix},
		Theme:  ThemeConfig{Name: "default"},
	}
}

// Load reads path over the defaults, then applies environment overrides. A
// missing file is not an error. An empty path looks for FileName in the
// working directory.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = FileName
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: decode %s: %w", filepath.Base(path), err)
		}
	}
	cfg.ApplyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode parses TOML data over the defaults without environment overrides.
func Decode(data string) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overrides fields from the environment lookup.
func (c *Config) ApplyEnv(getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	set(&c.Log.Level, "NATIVEVIEW_LOG_LEVEL")
	set(&c.Log.Format, "NATIVEVIEW_LOG_FORMAT")
	set(&c.Render.Renderer, "NATIVEVIEW_RENDERER")
	set(&c.Render.Title, "NATIVEVIEW_TITLE")
	set(&c.NATS.URL, "NATIVEVIEW_NATS_URL")
	set(&c.NATS.SubjectPrefix, "NATIVEVIEW_NATS_SUBJECT_PREFIX")
	set(&c.Theme.Name, "NATIVEVIEW_THEME")
	set(&c.Theme.Variant, "NATIVEVIEW_THEME_VARIANT")
	set(&c.Sessions.ID, "NATIVEVIEW_SESSION")
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

// LogLevel parses the configured level.
func (c Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("config: log.level: %w", err)
	}
	return level, nil
}

// Logger builds the slog logger described by the log settings.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := c.LogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// Save writes the config as TOML.
func Save(path string, cfg Config) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return nil
}
