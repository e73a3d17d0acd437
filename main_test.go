package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pascman/internal/config"
)

func TestParseFlags(t *testing.T) {
	o, err := parseFlags([]string{"-map", "level.txt", "-stdin"})
	require.NoError(t, err)
	assert.Equal(t, options{mapPath: "level.txt", stdin: true}, o)

	_, err = parseFlags([]string{"-bogus"})
	assert.Error(t, err)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pascman.toml")
	require.NoError(t, os.WriteFile(path, []byte("[game]\nmap = \"a.txt\"\nvillain_behavior = \"random\"\n"), 0o644))

	cfg, err := loadConfig(options{config: path})
	require.NoError(t, err)
	assert.Equal(t, "a.txt", cfg.Game.Map)
	assert.Equal(t, config.BehaviorRandom, cfg.Game.VillainBehavior)

	cfg, err = loadConfig(options{config: path, mapPath: "b.txt", stdin: true})
	require.NoError(t, err)
	assert.Equal(t, "b.txt", cfg.Game.Map)
	assert.Equal(t, config.BehaviorRemote, cfg.Game.VillainBehavior)
}

func TestLoadLayoutGenerated(t *testing.T) {
	cfg := config.Default()
	cfg.Game.Seed = 7
	l, err := loadLayout(cfg, options{generate: true})
	require.NoError(t, err)
	assert.Equal(t, 38, l.Map.Width)
	assert.Positive(t, l.Food())

	cfg.Game.Map = filepath.Join(t.TempDir(), "missing.txt")
	_, err = loadLayout(cfg, options{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := loadConfig(options{config: filepath.Join(t.TempDir(), "nope.yaml")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadLayoutStdinIgnoresMapFile(t *testing.T) {
	cfg := config.Default()
	cfg.Game.Map = filepath.Join(t.TempDir(), "missing.txt")
	l, err := loadLayout(cfg, options{stdin: true})
	require.NoError(t, err)
	assert.Equal(t, 30, l.Map.Width)
	assert.Equal(t, 20, l.Map.Height)
	assert.Empty(t, l.Spawns)
}
