package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	for _, key := range []string{"NATIVEVIEW_LOG_LEVEL", "NATIVEVIEW_RENDERER", "NATIVEVIEW_NATS_URL", "NATIVEVIEW_THEME"} {
		t.Setenv(key, "")
	}
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode(t *testing.T) {
	cfg, err := Decode(`
[log]
level = "debug"
format = "json"

[render]
renderer = "html"

[nats]
url = "nats://127.0.0.1:4222"

[theme]
name = "acme"
variant = "dark"
[theme.tokens]
brand = "#112233"
[theme.variants.dark]
brand = "#445566"
`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := Default()
	want.Log = LogConfig{Level: "debug", Format: "json"}
	want.Render.Renderer = "html"
	want.NATS.URL = "nats://127.0.0.1:4222"
	want.Theme = ThemeConfig{
		Name:     "acme",
		Variant:  "dark",
		Tokens:   map[string]string{"brand": "#112233"},
		Variants: map[string]map[string]string{"dark": {"brand": "#445566"}},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_Invalid(t *testing.T) {
	if _, err := Decode(`[log]
level = "loud"`); err == nil || !strings.Contains(err.Error(), "log.level") {
		t.Fatalf("expected level error, got %v", err)
	}
	if _, err := Decode(`[log]
format = "xml"`); err == nil || !strings.Contains(err.Error(), "log.format") {
		t.Fatalf("expected format error, got %v", err)
	}
	if _, err := Decode(`not toml = = 1`); err == nil {
		t.Fatalf("expected syntax error")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"NATIVEVIEW_RENDERER":            "json",
		"NATIVEVIEW_NATS_URL":            " nats://example:4222 ",
		"NATIVEVIEW_NATS_SUBJECT_PREFIX": "lvn.events",
		"NATIVEVIEW_SESSION":             "nvs-fixed",
	}
	cfg := Default()
	cfg.ApplyEnv(func(key string) string { return env[key] })

	if cfg.Render.Renderer != "json" || cfg.NATS.URL != "nats://example:4222" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.NATS.SubjectPrefix != "lvn.events" || cfg.Sessions.ID != "nvs-fixed" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("unset env should keep default, got %q", cfg.Log.Level)
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("NATIVEVIEW_RENDERER", "")
	path := filepath.Join(t.TempDir(), FileName)
	cfg := Default()
	cfg.Render.Renderer = "json"
	cfg.Theme.Tokens = map[string]string{"ink": "black"}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLogger(t *testing.T) {
	cfg := Default()
	cfg.Log.Format = "json"
	cfg.Log.Level = "warn"
	var buf bytes.Buffer
	logger, err := cfg.Logger(&buf)
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown", "key", "value")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, `"key":"value"`) {
		t.Fatalf("unexpected log output %q", out)
	}
}
