package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ttask/internal/config"
)

func TestNewDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := config.New(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Dir)
	assert.Equal(t, filepath.Join(dir, config.DataFile), cfg.DataFile)
	assert.False(t, cfg.Quiet)
}

func TestNewAppliesSettingsFile(t *testing.T) {
	dir := t.TempDir()
	settings := "data_file: /var/tasks/tasks.json\nquiet: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.SettingsFile), []byte(settings), 0o644))

	cfg, err := config.New(dir)
	require.NoError(t, err)

	assert.Equal(t, "/var/tasks/tasks.json", cfg.DataFile)
	assert.True(t, cfg.Quiet)
}

func TestNewEmptyDataFileKeepsDefault(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.SettingsFile), []byte("quiet: true\n"), 0o644))

	cfg, err := config.New(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, config.DataFile), cfg.DataFile)
}

func TestNewMalformedSettingsFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.SettingsFile), []byte("\t{nope"), 0o644))

	_, err := config.New(dir)
	assert.Error(t, err)
}

func TestDefaultConfigDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", config.AppName), config.DefaultConfigDir())
}
