package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/routereport"
	"github.com/yacobolo/routereport/internal/console"
)

const (
	appName           = "routereport"
	defaultConfigFile = ".routereport.yaml"
	envPrefix         = "ROUTEREPORT_"
)

var k = koanf.New(".")

// flagKeys maps CLI flag names to their config file keys so every source
// writes to the same key.
var flagKeys = map[string]string{
	"name":         "route.name",
	"display-name": "route.display-name",
	"type":         "route.type",
	"filters":      "features.filters",
	"table":        "features.table",
	"modal":        "features.modal",
	"preview-url":  "preview.base-url",
	"routes-dir":   "routes-dir",
	"format":       "output.format",
	"color":        "output.color",
}

// envAliases restores hyphenated keys that the underscore-to-dot mapping
// splits apart.
var envAliases = map[string]string{
	"route.display.name": "route.display-name",
	"preview.base.url":   "preview.base-url",
	"routes.dir":         "routes-dir",
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
// A broken config file does not stop env vars and flags from loading; the
// returned error describes what was skipped.
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	explicit := cmd.Flags().Changed("config")

	fileErr := loadConfigFromPath(resolveConfigPath(configPath, explicit))

	// 3. CLI flags (highest precedence, only flags that were explicitly set)
	flags := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		key := f.Name
		if mapped, ok := flagKeys[key]; ok {
			key = mapped
		}
		return key, posflag.FlagVal(flags, f)
	}), nil); err != nil {
		return errors.Join(fileErr, fmt.Errorf("loading command flags: %w", err))
	}

	return fileErr
}

// resolveConfigPath falls back to the user config directory when the default
// project file does not exist. An explicit --config path is used as given.
func resolveConfigPath(configPath string, explicit bool) string {
	if configPath == "" {
		configPath = defaultConfigFile
	}
	if explicit {
		return configPath
	}
	if _, err := os.Stat(configPath); err == nil {
		return configPath
	}
	return userConfigPath()
}

// userConfigPath returns $XDG_CONFIG_HOME/routereport/config.yaml.
func userConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.yaml")
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	var fileErr error
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			fileErr = fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		fileErr = fmt.Errorf("reading config file %s: %w", configPath, err)
	}

	// 2. Environment variables (ROUTEREPORT_* prefix)
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return errors.Join(fileErr, fmt.Errorf("loading environment variables: %w", err))
	}

	return fileErr
}

// envKey maps an environment variable to a config key:
// ROUTEREPORT_ROUTE_NAME -> route.name
// ROUTEREPORT_FEATURES_TABLE -> features.table
// ROUTEREPORT_ROUTE_DISPLAY_NAME -> route.display-name
func envKey(s string) string {
	key := strings.ReplaceAll(
		strings.ToLower(strings.TrimPrefix(s, envPrefix)),
		"_", ".",
	)
	if alias, ok := envAliases[key]; ok {
		return alias
	}
	return key
}

// buildSnapshot constructs the configuration snapshot from koanf state.
func buildSnapshot() routereport.Snapshot {
	return routereport.Snapshot{
		RouteName:      getString("route.name", ""),
		DisplayName:    getString("route.display-name", ""),
		RouteType:      getString("route.type", ""),
		IncludeFilters: routereport.ParseFlag(getString("features.filters", "no")),
		IncludeTable:   routereport.ParseFlag(getString("features.table", "no")),
		IncludeModal:   routereport.ParseFlag(getString("features.modal", "no")),
	}
}

// buildOptions constructs presentation options from koanf state.
func buildOptions() routereport.Options {
	return routereport.Options{
		PreviewBaseURL: getString("preview.base-url", routereport.DefaultPreviewBaseURL),
		RoutesDir:      getString("routes-dir", routereport.DefaultRoutesDir),
	}
}

// outputSettings holds the resolved output controls.
type outputSettings struct {
	Format  string
	Color   string
	Quiet   bool
	Verbose bool
}

func buildOutputSettings() outputSettings {
	return outputSettings{
		Format:  getString("output.format", string(routereport.OutputText)),
		Color:   getString("output.color", console.ColorAuto),
		Quiet:   getBool("quiet", false),
		Verbose: getBool("verbose", false),
	}
}

// getString returns the value at key, or the default when unset or empty.
func getString(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getBool returns the value at key, or the default when unset.
func getBool(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}
