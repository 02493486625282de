package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestLoadAppConfigDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadAppConfig(nil)
	require.NoError(t, err)
	require.Equal(t, LocationField, cfg.Location)
	require.Equal(t, "icon", cfg.FieldID)
	require.Equal(t, "fapicker.log", cfg.LogFile)
	require.True(t, filepath.IsAbs(cfg.StateDir))
	require.Equal(t, "fapicker", filepath.Base(cfg.StateDir))
}

func TestLoadAppConfigFlagsOverrideEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FAPICKER_FIELD_ID", "badge")
	t.Setenv("FAPICKER_LOG_LEVEL", "debug")

	cfg, err := LoadAppConfig([]string{"--state-dir", dir, "-f", "heroIcon", "config"})
	require.NoError(t, err)
	require.Equal(t, LocationConfig, cfg.Location)
	require.Equal(t, "heroIcon", cfg.FieldID)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, dir, cfg.StateDir)
}

func TestLoadAppConfigRejectsUnknownLocation(t *testing.T) {
	_, err := LoadAppConfig([]string{"--state-dir", t.TempDir(), "sidebar"})
	require.ErrorContains(t, err, `unknown location "sidebar"`)
}

func TestLoadAppConfigHelp(t *testing.T) {
	_, err := LoadAppConfig([]string{"--help"})
	require.ErrorIs(t, err, pflag.ErrHelp)
}
