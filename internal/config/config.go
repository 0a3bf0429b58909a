package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/twiced-technology-gmbh/nhmoon/internal/date"
	"github.com/twiced-technology-gmbh/nhmoon/internal/engine"
	"github.com/twiced-technology-gmbh/nhmoon/internal/moon"
)

// ErrInvalid wraps every validation and parse failure.
var ErrInvalid = errors.New("invalid config")

// Config represents the nhmoon configuration.
type Config struct {
	Version int                 `yaml:"version"`
	Moon    MoonConfig          `yaml:"moon"`
	TUI     TUIConfig           `yaml:"tui"`
	Keys    map[string][]string `yaml:"keys,omitempty"`

	// path is the file the config was loaded from (not serialized).
	path string `yaml:"-"`
	// found reports whether the file existed.
	found bool `yaml:"-"`
}

// MoonConfig selects and parameterizes the moon classifier.
type MoonConfig struct {
	Model  string    `yaml:"model" json:"model"`
	Epoch  date.Date `yaml:"epoch" json:"epoch"`   // a full-moon day
	Period string    `yaml:"period" json:"period"` // days, "N" or "N/D"
	Window int64     `yaml:"window" json:"window"` // half-width in 1/D day units
}

// TUIConfig holds TUI-specific display settings.
type TUIConfig struct {
	FullMoonColor string `yaml:"full_moon_color" json:"full_moon_color"`
	NewMoonColor  string `yaml:"new_moon_color" json:"new_moon_color"`
	TodayColor    string `yaml:"today_color" json:"today_color"`
	Bell          *bool  `yaml:"bell,omitempty" json:"bell,omitempty"`
}

// NewDefault creates a Config with default values.
func NewDefault() *Config {
	return &Config{
		Version: CurrentVersion,
		Moon: MoonConfig{
			Model:  DefaultModel,
			Epoch:  date.MustParse(moon.DefaultEpoch),
			Period: moon.FormatPeriod(moon.DefaultPeriodNum, moon.DefaultPeriodDen),
			Window: moon.DefaultWindow,
		},
		TUI: TUIConfig{
			FullMoonColor: DefaultFullMoonColor,
			NewMoonColor:  DefaultNewMoonColor,
			TodayColor:    DefaultTodayColor,
			Bell:          boolPtr(true),
		},
	}
}

// Path returns the file the config was loaded from.
func (c *Config) Path() string {
	return c.path
}

// Found reports whether the config file existed when it was loaded.
func (c *Config) Found() bool {
	return c.found
}

// Bell reports whether the terminal bell is enabled. Defaults to true.
func (c *Config) Bell() bool {
	if c.TUI.Bell == nil {
		return true
	}
	return *c.TUI.Bell
}

// Periodic returns the periodic moon model described by the moon section.
func (c *Config) Periodic() (moon.Periodic, error) {
	num, den, err := moon.ParsePeriod(c.Moon.Period)
	if err != nil {
		return moon.Periodic{}, fmt.Errorf("%w: moon.period: %w", ErrInvalid, err)
	}
	p := moon.Periodic{Epoch: c.Moon.Epoch.Ordinal(), Num: num, Den: den, Window: c.Moon.Window}
	if err := p.Validate(); err != nil {
		return moon.Periodic{}, fmt.Errorf("%w: moon: %w", ErrInvalid, err)
	}
	return p, nil
}

// Classifier builds the configured moon classifier.
func (c *Config) Classifier() (moon.Classifier, error) {
	p, err := c.Periodic()
	if err != nil {
		return nil, err
	}
	cl, err := moon.ByName(c.Moon.Model, p)
	if err != nil {
		return nil, fmt.Errorf("%w: moon.model: %w", ErrInvalid, err)
	}
	return cl, nil
}

// KeyOverrides returns the configured key lists by command.
func (c *Config) KeyOverrides() (map[engine.Command][]string, error) {
	out := make(map[engine.Command][]string, len(c.Keys))
	for name, keys := range c.Keys {
		cmd, err := engine.ParseCommand(name)
		if err != nil {
			return nil, fmt.Errorf("%w: keys: %w", ErrInvalid, err)
		}
		if len(keys) == 0 {
			return nil, fmt.Errorf("%w: keys.%s must list at least one key", ErrInvalid, name)
		}
		for _, k := range keys {
			if strings.TrimSpace(k) == "" {
				return nil, fmt.Errorf("%w: keys.%s contains an empty key", ErrInvalid, name)
			}
		}
		out[cmd] = keys
	}
	return out, nil
}

// Validate checks the config for errors.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("%w: unsupported version %d (expected %d)", ErrInvalid, c.Version, CurrentVersion)
	}
	if c.Moon.Epoch.IsZero() {
		return fmt.Errorf("%w: moon.epoch is required", ErrInvalid)
	}
	if _, err := c.Classifier(); err != nil {
		return err
	}
	if err := c.validateTUI(); err != nil {
		return err
	}
	if _, err := c.KeyOverrides(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTUI() error {
	colors := []struct{ key, val string }{
		{"tui.full_moon_color", c.TUI.FullMoonColor},
		{"tui.new_moon_color", c.TUI.NewMoonColor},
		{"tui.today_color", c.TUI.TodayColor},
	}
	for _, col := range colors {
		if col.val == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalid, col.key)
		}
	}
	return nil
}

// DefaultPath returns <UserConfigDir>/nhmoon/config.yml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("getting config directory: %w", err)
	}
	return filepath.Join(dir, AppDir, ConfigFileName), nil
}

// ResolvePath picks the config file: the explicit path if set, then
// $NHMOON_CONFIG, then DefaultPath.
func ResolvePath(explicit string) (string, error) {
	if explicit == "" {
		explicit = os.Getenv(EnvConfig)
	}
	if explicit == "" {
		return DefaultPath()
	}
	abs, err := filepath.Abs(explicit)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	return abs, nil
}

// Load reads and validates the config at path. Fields missing from the file
// keep their defaults, and a missing file yields the default config.
func Load(path string) (*Config, error) {
	cfg := NewDefault()
	cfg.path = path

	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted source
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg.found = true

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", ErrInvalid, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal renders the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return data, nil
}
