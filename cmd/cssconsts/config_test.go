package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssconsts.yaml")
	configContent := `
verbose: true

resolve:
  file: shared/consts.css
  pattern: "^--const-"
  write: true
  out-dir: dist
  paths:
    - "styles/**/*.css"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, "shared/consts.css", k.String("resolve.file"))
	assert.Equal(t, "^--const-", k.String("resolve.pattern"))
	assert.True(t, k.Bool("resolve.write"))
	assert.Equal(t, "dist", k.String("resolve.out-dir"))
	assert.Equal(t, []string{"styles/**/*.css"}, k.Strings("resolve.paths"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config — should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.cssconsts.yaml"))

	cfg := buildResolveConfig(nil)
	assert.Empty(t, cfg.File)
	assert.Empty(t, cfg.Pattern)
	assert.False(t, cfg.Write)
	assert.Empty(t, cfg.OutDir)
	assert.Equal(t, []string{"**/*.css"}, cfg.Paths)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssconsts.yaml")
	configContent := `
resolve:
  file: from-file.css
  write: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	t.Setenv("CSSCONSTS_RESOLVE_FILE", "from-env.css")
	t.Setenv("CSSCONSTS_RESOLVE_WRITE", "true")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "from-env.css", k.String("resolve.file"))
	assert.True(t, k.Bool("resolve.write"))
}

func TestBuildResolveConfig_ArgsWinOverConfiguredPaths(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssconsts.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("resolve:\n  paths:\n    - \"cfg/**/*.css\"\n"), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	cfg := buildResolveConfig([]string{"cli/*.css"})
	assert.Equal(t, []string{"cli/*.css"}, cfg.Paths)

	cfg = buildResolveConfig(nil)
	assert.Equal(t, []string{"cfg/**/*.css"}, cfg.Paths)
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(".cssconsts.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "resolve:")
	assert.Contains(t, string(data), "paths:")
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	require.NoError(t, os.WriteFile(".cssconsts.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	require.NoError(t, os.WriteFile(".cssconsts.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init", "--force"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(".cssconsts.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "resolve:")
}

func TestVersionCommand(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()

	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))
}
