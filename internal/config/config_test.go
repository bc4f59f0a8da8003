package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsComplete(t *testing.T) {
	cfg := Default()

	assert.Len(t, cfg.StatNames, 5)
	assert.NotEmpty(t, cfg.Locations)
	assert.NotEmpty(t, cfg.GhostTypes)
	assert.NotEmpty(t, cfg.DifficultyLevels)
	assert.NotEmpty(t, cfg.ResearchProjects)
	assert.NotEmpty(t, cfg.Utilities)
	assert.Greater(t, cfg.MaxStat, cfg.MinStat)
	assert.Greater(t, cfg.EventLogCap, 0)
}

func TestLoadLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balance.yaml")
	require.NoError(t, os.WriteFile(path, []byte("starting_funds: 9000\nhiring_cost: 250\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.StartingFunds)
	assert.Equal(t, 250, cfg.HiringCost)
	// Untouched values keep their defaults.
	assert.Equal(t, Default().MaxAgents, cfg.MaxAgents)
	assert.Equal(t, Default().Utilities, cfg.Utilities)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balance.yaml")
	require.NoError(t, os.WriteFile(path, []byte("starting_funds: [not a number"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
