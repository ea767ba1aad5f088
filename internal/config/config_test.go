package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "data/training.db", cfg.Database.Path)
}

func TestLoadConfig_FromFile(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	contents := "server:\n  address: \":9090\"\ndatabase:\n  path: \"/var/lib/tracker/training.db\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(contents), 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, "/var/lib/tracker/training.db", cfg.Database.Path)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	viper.Reset()
	t.Setenv("SERVER_ADDRESS", ":7070")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Address)
	assert.Equal(t, "data/training.db", cfg.Database.Path)
}
