package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeycumines/osim/internal/config"
	"github.com/joeycumines/osim/internal/osim"
)

func TestLoad_emptyPathReturnsNil(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_overridesPartitionsAndUnits(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "osim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
real_time_partition_size: 32
user_partition_size: 480
resource_units:
  scanner: 2
  printer: 1
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 32, cfg.RealTimePartitionSize)
	assert.Equal(t, 480, cfg.UserPartitionSize)
	assert.Equal(t, map[osim.Resource]int{osim.Scanner: 2, osim.Printer: 1}, cfg.ResourceUnits)
}

func TestLoad_unknownResourceIsAnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "osim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("resource_units:\n  laser: 1\n"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoad_missingFileIsAnError(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
