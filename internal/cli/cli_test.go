package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bauh-project/bauh"
	"github.com/bauh-project/bauh/pkg/config"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		cfgFile = ""
		initForce = false
		app = nil
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "bauh version "+bauh.Version)
}

func TestPathsCommand(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.yaml")

	out, err := executeCommand(t, "paths", "--config", cfg, "--no-log-file")
	require.NoError(t, err)

	assert.Contains(t, out, "Cache:")
	assert.Contains(t, out, "Autostart:")
	assert.Contains(t, out, cfg)
}

func TestConfigInitAndShow(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "bauh", "config.yaml")

	out, err := executeCommand(t, "config", "init", "--config", cfg, "--no-log-file")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+cfg)

	_, err = os.Stat(cfg)
	require.NoError(t, err)

	_, err = executeCommand(t, "config", "init", "--config", cfg, "--no-log-file")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	out, err = executeCommand(t, "config", "show", "--config", cfg, "--no-log-file")
	require.NoError(t, err)
	assert.Contains(t, out, "suggestions:")
	assert.Contains(t, out, "workers: 4")
}

func TestConfigInitForceRepairsInvalidFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("enrich: {workers: 0}\n"), 0644))

	out, err := executeCommand(t, "config", "init", "--force", "--config", cfg, "--no-log-file")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+cfg)

	loaded, err := config.Load(cfg)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), loaded)
}

func TestGemsCommandWithoutGems(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.yaml")

	out, err := executeCommand(t, "gems", "--config", cfg, "--no-log-file")
	require.NoError(t, err)
	assert.Contains(t, out, "No gems registered.")
}
