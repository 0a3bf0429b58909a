// Package config handles the nhmoon configuration file.
package config

import "github.com/twiced-technology-gmbh/nhmoon/internal/moon"

const (
	// AppDir is the directory created under the user config directory.
	AppDir = "nhmoon"

	// ConfigFileName is the name of the config file within AppDir.
	ConfigFileName = "config.yml"

	// EnvConfig names the environment variable that overrides the config path.
	EnvConfig = "NHMOON_CONFIG"

	// CurrentVersion is the current config schema version.
	CurrentVersion = 1

	// DefaultModel is the moon model used when none is configured.
	DefaultModel = moon.ModelPeriodic

	// Default ANSI 256 colors for highlighted rows.
	DefaultFullMoonColor = "226" // yellow
	DefaultNewMoonColor  = "75"  // light blue
	DefaultTodayColor    = "230" // cream
)

// boolPtr returns a pointer to the given bool value.
func boolPtr(v bool) *bool { return &v }
