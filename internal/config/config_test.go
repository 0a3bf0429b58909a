package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/twiced-technology-gmbh/nhmoon/internal/engine"
	"github.com/twiced-technology-gmbh/nhmoon/internal/moon"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", ConfigFileName)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Found() {
		t.Fatal("expected Found to be false")
	}
	if cfg.Path() != path {
		t.Fatalf("expected path %s, got %s", path, cfg.Path())
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	c, err := cfg.Classifier()
	if err != nil {
		t.Fatalf("Classifier: %v", err)
	}
	if c != moon.Classifier(moon.DefaultPeriodic()) {
		t.Fatalf("expected default periodic model, got %#v", c)
	}
	if !cfg.Bell() {
		t.Fatal("bell should default to true")
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
moon:
  model: nethack
tui:
  today_color: "15"
  bell: false
keys:
  scroll_week_down: [n]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Found() {
		t.Fatal("expected Found to be true")
	}
	if cfg.Moon.Period != "177/6" || cfg.Moon.Window != moon.DefaultWindow {
		t.Fatalf("periodic defaults lost: %+v", cfg.Moon)
	}
	if cfg.TUI.TodayColor != "15" || cfg.TUI.FullMoonColor != DefaultFullMoonColor {
		t.Fatalf("unexpected tui config %+v", cfg.TUI)
	}
	if cfg.Bell() {
		t.Fatal("expected bell disabled")
	}
	c, err := cfg.Classifier()
	if err != nil {
		t.Fatalf("Classifier: %v", err)
	}
	if _, ok := c.(moon.NetHack); !ok {
		t.Fatalf("expected NetHack classifier, got %T", c)
	}
	keys, err := cfg.KeyOverrides()
	if err != nil {
		t.Fatalf("KeyOverrides: %v", err)
	}
	if got := keys[engine.ScrollWeekDown]; len(got) != 1 || got[0] != "n" {
		t.Fatalf("unexpected key override %v", got)
	}
}

func TestLoadPeriodicModel(t *testing.T) {
	path := writeConfig(t, `
version: 1
moon:
  model: periodic
  epoch: 2000-01-21
  period: "30"
  window: 1
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	p, err := cfg.Periodic()
	if err != nil {
		t.Fatalf("Periodic: %v", err)
	}
	if p.Num != 30 || p.Den != 1 || p.Window != 1 || p.Epoch != cfg.Moon.Epoch.Ordinal() {
		t.Fatalf("unexpected model %+v", p)
	}
	if p.PhaseOf(p.Epoch) != moon.Full {
		t.Fatal("epoch should be a full moon")
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad yaml", "moon: [", "parsing"},
		{"version", "version: 2\n", "unsupported version"},
		{"model", "moon:\n  model: lunar\n", "moon.model"},
		{"period", "moon:\n  period: 29.5\n", "moon.period"},
		{"window", "moon:\n  period: \"30\"\n  window: 8\n", "moon"},
		{"epoch", "moon:\n  epoch: 2025-02-30\n", "parsing"},
		{"color", "tui:\n  full_moon_color: \"\"\n", "tui.full_moon_color"},
		{"key command", "keys:\n  launch: [x]\n", "unknown command"},
		{"empty keys", "keys:\n  quit: []\n", "at least one key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q in error, got %v", tt.want, err)
			}
		})
	}
}

func TestResolvePath(t *testing.T) {
	t.Setenv(EnvConfig, "")
	dir := t.TempDir()
	explicit := filepath.Join(dir, "explicit.yml")
	got, err := ResolvePath(explicit)
	if err != nil || got != explicit {
		t.Fatalf("ResolvePath(explicit) = %q, %v", got, err)
	}

	fromEnv := filepath.Join(dir, "env.yml")
	t.Setenv(EnvConfig, fromEnv)
	got, err = ResolvePath("")
	if err != nil || got != fromEnv {
		t.Fatalf("ResolvePath(env) = %q, %v", got, err)
	}

	t.Setenv(EnvConfig, "")
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	got, err = ResolvePath("")
	if err != nil {
		t.Fatalf("ResolvePath(default): %v", err)
	}
	if filepath.Base(got) != ConfigFileName || filepath.Base(filepath.Dir(got)) != AppDir {
		t.Fatalf("unexpected default path %q", got)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := NewDefault().Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), "epoch: \"2025-01-15\"") && !strings.Contains(string(data), "epoch: 2025-01-15") {
		t.Fatalf("epoch missing from YAML:\n%s", data)
	}
	cfg, err := Load(writeConfig(t, string(data)))
	if err != nil {
		t.Fatalf("reloading marshalled config: %v", err)
	}
	if cfg.Moon != NewDefault().Moon {
		t.Fatalf("moon section changed: %+v", cfg.Moon)
	}
}
