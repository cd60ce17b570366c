package config

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Solver.Alphabet)
	assert.Equal(t, 0, cfg.Solver.Workers)
	assert.Equal(t, "peel", cfg.Solver.Strategy)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "stderr", cfg.Log.Output)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("CRACKME_SOLVER_WORKERS", "4")
	t.Setenv("CRACKME_LOG_LEVEL", "debug")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Solver.Workers)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "peel", cfg.Solver.Strategy)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crackme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
solver:
  alphabet: "0123456789ABCDEF"
  strategy: exhaustive
  workers: 2
log:
  level: info
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0123456789ABCDEF", cfg.Solver.Alphabet)
	assert.Equal(t, "exhaustive", cfg.Solver.Strategy)
	assert.Equal(t, 2, cfg.Solver.Workers)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "stderr", cfg.Log.Output)

	t.Setenv("CRACKME_SOLVER_STRATEGY", "peel")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "peel", cfg.Solver.Strategy)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
