package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

// resetFlags restores every flag of cmd and its subcommands to its default,
// since rootCmd is shared between tests.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// isolate runs the test from an empty working directory with an empty user
// config directory.
func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	return dir
}

// execute runs rootCmd with args and returns what it wrote.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	resetKoanf()
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".routereport.yaml")
	configContent := `
route:
  name: grades
  display-name: Grade Overview
  type: list
features:
  filters: "yes"
  table: "no"
  modal: true
preview:
  base-url: http://localhost:4173
routes-dir: web/src/routes
output:
  format: json
verbose: true
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	snap := buildSnapshot()
	assert.Equal(t, "grades", snap.RouteName)
	assert.Equal(t, "Grade Overview", snap.DisplayName)
	assert.Equal(t, "list", snap.RouteType)
	assert.True(t, snap.IncludeFilters)
	assert.False(t, snap.IncludeTable)
	assert.True(t, snap.IncludeModal)

	opts := buildOptions()
	assert.Equal(t, "http://localhost:4173", opts.PreviewBaseURL)
	assert.Equal(t, "web/src/routes", opts.RoutesDir)

	settings := buildOutputSettings()
	assert.Equal(t, "json", settings.Format)
	assert.True(t, settings.Verbose)
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config: should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.routereport.yaml"))

	snap := buildSnapshot()
	assert.Empty(t, snap.RouteName)
	assert.False(t, snap.IncludeFilters)
	assert.False(t, snap.IncludeTable)
	assert.False(t, snap.IncludeModal)

	opts := buildOptions()
	assert.Equal(t, "http://localhost:5173", opts.PreviewBaseURL)
	assert.Equal(t, "src/routes", opts.RoutesDir)

	settings := buildOutputSettings()
	assert.Equal(t, "text", settings.Format)
	assert.Equal(t, "auto", settings.Color)
	assert.False(t, settings.Quiet)
	assert.False(t, settings.Verbose)
}

func TestConfigFileMalformed(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".routereport.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("route: [unclosed"), 0644))

	err := loadConfigFromPath(configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config file")
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".routereport.yaml")
	configContent := `
route:
  name: from-file
  display-name: From File
features:
  table: "no"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	// Set env vars that should override config file
	t.Setenv("ROUTEREPORT_ROUTE_NAME", "from-env")
	t.Setenv("ROUTEREPORT_ROUTE_DISPLAY_NAME", "From Env")
	t.Setenv("ROUTEREPORT_FEATURES_TABLE", "yes")
	t.Setenv("ROUTEREPORT_PREVIEW_BASE_URL", "http://localhost:9999")

	require.NoError(t, loadConfigFromPath(configPath))

	snap := buildSnapshot()
	assert.Equal(t, "from-env", snap.RouteName)
	assert.Equal(t, "From Env", snap.DisplayName)
	assert.True(t, snap.IncludeTable)
	assert.Equal(t, "http://localhost:9999", buildOptions().PreviewBaseURL)
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"ROUTEREPORT_ROUTE_NAME", "route.name"},
		{"ROUTEREPORT_ROUTE_DISPLAY_NAME", "route.display-name"},
		{"ROUTEREPORT_FEATURES_MODAL", "features.modal"},
		{"ROUTEREPORT_PREVIEW_BASE_URL", "preview.base-url"},
		{"ROUTEREPORT_ROUTES_DIR", "routes-dir"},
		{"ROUTEREPORT_VERBOSE", "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.want, envKey(tt.env))
		})
	}
}

func TestResolveConfigPath(t *testing.T) {
	dir := isolate(t)

	// No project file: fall back to the user config
	assert.Equal(t, filepath.Join(dir, "xdg", "routereport", "config.yaml"), resolveConfigPath("", false))

	// Explicit paths are used even when missing
	assert.Equal(t, "custom.yaml", resolveConfigPath("custom.yaml", true))

	// Project file wins over the user config
	require.NoError(t, os.WriteFile(defaultConfigFile, []byte("quiet: true\n"), 0644))
	assert.Equal(t, defaultConfigFile, resolveConfigPath(defaultConfigFile, false))
}

func TestUserConfigFallback(t *testing.T) {
	dir := isolate(t)

	userDir := filepath.Join(dir, "xdg", "routereport")
	require.NoError(t, os.MkdirAll(userDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(userDir, "config.yaml"), []byte(`
preview:
  base-url: http://localhost:3000
`), 0644))

	stdout, _, err := execute(t, "--name", "grades", "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, stdout, "http://localhost:3000/grades")
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	isolate(t)

	require.NoError(t, os.WriteFile(defaultConfigFile, []byte(`
route:
  name: from-file
  type: detail
features:
  table: "yes"
`), 0644))

	stdout, _, err := execute(t, "--name", "from-flag", "--color", "never")
	require.NoError(t, err)

	// Flag wins for name; untouched flag defaults do not mask the file
	assert.Contains(t, stdout, "Route 'from-flag' generated successfully!")
	assert.Contains(t, stdout, "Page type: detail")
	assert.Contains(t, stdout, "Sortable table")
}

func TestGetString(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, "default", getString("config.key", "default"))

	require.NoError(t, k.Set("config.key", "value"))
	assert.Equal(t, "value", getString("config.key", "default"))
}

func TestGetBool(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.False(t, getBool("config.key", false))
	assert.True(t, getBool("config.key", true))

	require.NoError(t, k.Set("config.key", false))
	assert.False(t, getBool("config.key", true))
}
