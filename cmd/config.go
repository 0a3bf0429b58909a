package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/nhmoon/internal/clierr"
	"github.com/twiced-technology-gmbh/nhmoon/internal/config"
	"github.com/twiced-technology-gmbh/nhmoon/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View the effective configuration",
	Long: `View the effective configuration (file values over defaults), get a specific
key, or print the path of the config file.`,
	RunE: runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.Flags().Bool("yaml", false, "print the effective configuration as YAML")
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// configAccessor describes how to read a config key.
type configAccessor struct {
	get func(*config.Config) any
}

func configAccessors() map[string]configAccessor {
	return map[string]configAccessor{
		"version": {
			get: func(c *config.Config) any { return c.Version },
		},
		"moon.model": {
			get: func(c *config.Config) any { return c.Moon.Model },
		},
		"moon.epoch": {
			get: func(c *config.Config) any { return c.Moon.Epoch.String() },
		},
		"moon.period": {
			get: func(c *config.Config) any { return c.Moon.Period },
		},
		"moon.window": {
			get: func(c *config.Config) any { return c.Moon.Window },
		},
		"tui.full_moon_color": {
			get: func(c *config.Config) any { return c.TUI.FullMoonColor },
		},
		"tui.new_moon_color": {
			get: func(c *config.Config) any { return c.TUI.NewMoonColor },
		},
		"tui.today_color": {
			get: func(c *config.Config) any { return c.TUI.TodayColor },
		},
		"tui.bell": {
			get: func(c *config.Config) any { return c.Bell() },
		},
		"keys": {
			get: func(c *config.Config) any {
				if c.Keys == nil {
					return map[string][]string{}
				}
				return c.Keys
			},
		},
	}
}

// allConfigKeys returns config keys in display order.
func allConfigKeys() []string {
	return []string{
		"version",
		"moon.model",
		"moon.epoch",
		"moon.period",
		"moon.window",
		"tui.full_moon_color",
		"tui.new_moon_color",
		"tui.today_color",
		"tui.bell",
		"keys",
	}
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	accessors := configAccessors()

	if outputFormat() == output.FormatJSON {
		m := make(map[string]any, len(accessors))
		for _, key := range allConfigKeys() {
			m[key] = accessors[key].get(cfg)
		}
		return output.JSON(os.Stdout, m)
	}

	// Table mode: key-value pairs.
	for _, key := range allConfigKeys() {
		val := accessors[key].get(cfg)
		fmt.Fprintf(os.Stdout, "%-20s %v\n", key, formatConfigValue(val))
	}
	return nil
}

func runConfigGet(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	key := args[0]
	acc, ok := configAccessors()[key]
	if !ok {
		return clierr.Newf(clierr.InvalidInput, "unknown config key %q; valid: %s",
			key, strings.Join(allConfigKeys(), ", "))
	}

	val := acc.get(cfg)

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, val)
	}

	fmt.Fprintln(os.Stdout, formatConfigValue(val))
	return nil
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	path, err := config.ResolvePath(flagConfig)
	if err != nil {
		return err
	}
	_, statErr := os.Stat(path)
	exists := statErr == nil

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, map[string]any{"path": path, "exists": exists})
	}
	if exists {
		output.Messagef(os.Stdout, "%s", path)
	} else {
		output.Messagef(os.Stdout, "%s (not found, using defaults)", path)
	}
	return nil
}

func formatConfigValue(val any) string {
	switch v := val.(type) {
	case map[string][]string:
		if len(v) == 0 {
			return "--"
		}
		names := make([]string, 0, len(v))
		for name := range v {
			names = append(names, name)
		}
		sort.Strings(names)
		parts := make([]string, 0, len(v))
		for _, name := range names {
			parts = append(parts, name+"="+strings.Join(v[name], "/"))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", v)
	}
}
