package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmtrun/fmtrun/pkg/format"
)

// setupTestEnv points the XDG config dir at an empty temp dir so a config
// file on the host cannot leak into the test.
func setupTestEnv(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)
}

func TestLoadDefaults(t *testing.T) {
	setupTestEnv(t)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, format.DefaultTool, cfg.Tool)
	assert.Empty(t, cfg.SearchPaths)
	assert.Equal(t, "warn", cfg.Logs.Level)
}

func TestLoadExplicitFile(t *testing.T) {
	setupTestEnv(t)
	file := filepath.Join(t.TempDir(), "fmtrun.yaml")
	content := `tool: gofumpt
search_paths:
  - /opt/tools/bin
logs:
  level: debug
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))

	cfg, err := Load(file)

	require.NoError(t, err)
	assert.Equal(t, "gofumpt", cfg.Tool)
	assert.Equal(t, []string{"/opt/tools/bin"}, cfg.SearchPaths)
	assert.Equal(t, "debug", cfg.Logs.Level)
}

func TestLoadExplicitFilePartialOverride(t *testing.T) {
	setupTestEnv(t)
	file := filepath.Join(t.TempDir(), "fmtrun.yaml")
	require.NoError(t, os.WriteFile(file, []byte("logs:\n  level: debug\n"), 0o644))

	cfg, err := Load(file)

	require.NoError(t, err)
	assert.Equal(t, format.DefaultTool, cfg.Tool, "unset keys keep their defaults")
	assert.Equal(t, "debug", cfg.Logs.Level)
}

func TestLoadExplicitFileMissing(t *testing.T) {
	setupTestEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
}

func TestLoadExplicitFileMalformed(t *testing.T) {
	setupTestEnv(t)
	file := filepath.Join(t.TempDir(), "fmtrun.yaml")
	require.NoError(t, os.WriteFile(file, []byte("tool: [unclosed"), 0o644))

	_, err := Load(file)

	require.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	setupTestEnv(t)
	t.Setenv("FMTRUN_TOOL", "rustfmt")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "rustfmt", cfg.Tool)
}

func TestLoadEnvOverridesNestedKey(t *testing.T) {
	setupTestEnv(t)
	t.Setenv("FMTRUN_LOGS_LEVEL", "debug")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logs.Level)
}
