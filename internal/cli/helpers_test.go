package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_CreatesDefaultWhenFlagAbsent(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig(&GlobalFlags{})
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.History.LookbackDays)

	created := filepath.Join(os.Getenv("HOME"), ".config", "hindsight", "config.yaml")
	_, err = os.Stat(created)
	assert.NoError(t, err, "first run should write defaults to the default path")
}

func TestLoadConfig_FlagOverridesDefaultPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("history:\n  lookback_days: 3\n"), 0644))

	cfg, err := loadConfig(&GlobalFlags{Config: path})
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.History.LookbackDays)

	defaultPath := filepath.Join(os.Getenv("HOME"), ".config", "hindsight", "config.yaml")
	_, err = os.Stat(defaultPath)
	assert.True(t, os.IsNotExist(err), "explicit --config should not touch the default path")
}

func TestLoadConfig_MissingExplicitFileFails(t *testing.T) {
	_, err := loadConfig(&GlobalFlags{Config: filepath.Join(t.TempDir(), "absent.yaml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}
