package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/blockfall/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blockfall.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.Board.Width)
	assert.Equal(t, 20, cfg.Board.Height)
	assert.Equal(t, 500*time.Millisecond, cfg.Gravity.Interval)
	assert.Equal(t, "uniform", cfg.Randomizer)
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, config.Default().Board, cfg.Board)
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, `
board:
  width: 12
  height: 22
gravity:
  interval: 400ms
  level_step: 25ms
randomizer: bag
seed: 99
scores:
  backend: memory
ui:
  debug: true
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Board.Width)
	assert.Equal(t, 22, cfg.Board.Height)
	assert.Equal(t, 400*time.Millisecond, cfg.Gravity.Interval)
	assert.Equal(t, 25*time.Millisecond, cfg.Gravity.LevelStep)
	assert.Equal(t, 100*time.Millisecond, cfg.Gravity.MinInterval, "unset keys keep defaults")
	assert.Equal(t, "bag", cfg.Randomizer)
	assert.Equal(t, uint64(99), cfg.Seed)
	assert.Equal(t, "memory", cfg.Scores.Backend)
	assert.True(t, cfg.UI.Debug)
	assert.Equal(t, 30, cfg.UI.CellSize)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "randomizer: bag\nboard:\n  width: 12\n")
	t.Setenv("BLOCKFALL_RANDOMIZER", "uniform")
	t.Setenv("BLOCKFALL_GRAVITY_INTERVAL", "250ms")
	t.Setenv("BLOCKFALL_SCORES_BACKEND", "redis")
	t.Setenv("BLOCKFALL_SCORES_REDIS_ADDR", "localhost:6379")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "uniform", cfg.Randomizer)
	assert.Equal(t, 12, cfg.Board.Width)
	assert.Equal(t, 250*time.Millisecond, cfg.Gravity.Interval)
	assert.Equal(t, "redis", cfg.Scores.Backend)
	assert.Equal(t, "localhost:6379", cfg.Scores.RedisAddr)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := config.Load(writeConfig(t, "board: [1, 2"))
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := config.Load(writeConfig(t, "board:\n  width: 3\n"))
		assert.ErrorIs(t, err, config.ErrInvalid)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"short board", func(c *config.Config) { c.Board.Height = 2 }},
		{"zero interval", func(c *config.Config) { c.Gravity.Interval = 0 }},
		{"negative step", func(c *config.Config) { c.Gravity.LevelStep = -time.Millisecond }},
		{"step without floor", func(c *config.Config) {
			c.Gravity.LevelStep = time.Millisecond
			c.Gravity.MinInterval = 0
		}},
		{"unknown randomizer", func(c *config.Config) { c.Randomizer = "gaussian" }},
		{"unknown backend", func(c *config.Config) { c.Scores.Backend = "postgres" }},
		{"sqlite without path", func(c *config.Config) { c.Scores.Path = "" }},
		{"redis without addr", func(c *config.Config) { c.Scores.Backend = "redis" }},
		{"zero cell size", func(c *config.Config) { c.UI.CellSize = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}

func TestIntervalFor(t *testing.T) {
	g := config.GravityConfig{
		Interval:    500 * time.Millisecond,
		LevelStep:   50 * time.Millisecond,
		MinInterval: 200 * time.Millisecond,
	}

	assert.Equal(t, 500*time.Millisecond, g.IntervalFor(1))
	assert.Equal(t, 450*time.Millisecond, g.IntervalFor(2))
	assert.Equal(t, 200*time.Millisecond, g.IntervalFor(20))

	g.LevelStep = 0
	assert.Equal(t, 500*time.Millisecond, g.IntervalFor(20), "fixed timer without a step")
}
