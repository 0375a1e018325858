// Package config loads blockfall settings from defaults, a YAML file and
// BLOCKFALL_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the full set of runtime settings.
type Config struct {
	Board      BoardConfig   `yaml:"board" envPrefix:"BOARD_"`
	Gravity    GravityConfig `yaml:"gravity" envPrefix:"GRAVITY_"`
	Randomizer string        `yaml:"randomizer" env:"RANDOMIZER"`
	Seed       uint64        `yaml:"seed" env:"SEED"`
	Player     string        `yaml:"player" env:"PLAYER"`
	Scores     ScoresConfig  `yaml:"scores" envPrefix:"SCORES_"`
	Metrics    MetricsConfig `yaml:"metrics" envPrefix:"METRICS_"`
	Log        LogConfig     `yaml:"log" envPrefix:"LOG_"`
	UI         UIConfig      `yaml:"ui" envPrefix:"UI_"`
}

type BoardConfig struct {
	Width  int `yaml:"width" env:"WIDTH"`
	Height int `yaml:"height" env:"HEIGHT"`
}

// GravityConfig controls the drop timer. With a non-zero LevelStep the
// interval shrinks by LevelStep per level, never below MinInterval.
type GravityConfig struct {
	Interval    time.Duration `yaml:"interval" env:"INTERVAL"`
	LevelStep   time.Duration `yaml:"level_step" env:"LEVEL_STEP"`
	MinInterval time.Duration `yaml:"min_interval" env:"MIN_INTERVAL"`
}

type ScoresConfig struct {
	Backend       string `yaml:"backend" env:"BACKEND"`
	Path          string `yaml:"path" env:"PATH"`
	RedisAddr     string `yaml:"redis_addr" env:"REDIS_ADDR"`
	RedisPassword string `yaml:"redis_password" env:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db" env:"REDIS_DB"`
	RedisKey      string `yaml:"redis_key" env:"REDIS_KEY"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr" env:"ADDR"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LEVEL"`
	File  string `yaml:"file" env:"FILE"`
}

type UIConfig struct {
	CellSize int  `yaml:"cell_size" env:"CELL_SIZE"`
	Debug    bool `yaml:"debug" env:"DEBUG"`
}

// Default returns the settings of the classic game: a 10x20 board, a
// 500ms drop timer and uniformly random pieces.
func Default() Config {
	return Config{
		Board: BoardConfig{Width: 10, Height: 20},
		Gravity: GravityConfig{
			Interval:    500 * time.Millisecond,
			MinInterval: 100 * time.Millisecond,
		},
		Randomizer: "uniform",
		Player:     defaultPlayer(),
		Scores: ScoresConfig{
			Backend:  "sqlite",
			Path:     "blockfall.db",
			RedisKey: "blockfall:scores",
		},
		Log: LogConfig{Level: "info"},
		UI:  UIConfig{CellSize: 30},
	}
}

func defaultPlayer() string {
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return "player"
}

// Load applies the YAML file at path (when non-empty) and then the
// environment on top of the defaults, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "BLOCKFALL_"}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first setting that cannot run a game.
func (c Config) Validate() error {
	switch {
	case c.Board.Width < 4:
		return fmt.Errorf("%w: board width %d is below 4", ErrInvalid, c.Board.Width)
	case c.Board.Height < 4:
		return fmt.Errorf("%w: board height %d is below 4", ErrInvalid, c.Board.Height)
	case c.Gravity.Interval <= 0:
		return fmt.Errorf("%w: gravity interval must be positive", ErrInvalid)
	case c.Gravity.LevelStep < 0:
		return fmt.Errorf("%w: gravity level step must not be negative", ErrInvalid)
	case c.Gravity.LevelStep > 0 && c.Gravity.MinInterval <= 0:
		return fmt.Errorf("%w: gravity min interval must be positive", ErrInvalid)
	case c.UI.CellSize <= 0:
		return fmt.Errorf("%w: ui cell size must be positive", ErrInvalid)
	}

	switch c.Randomizer {
	case "uniform", "bag":
	default:
		return fmt.Errorf("%w: unknown randomizer %q", ErrInvalid, c.Randomizer)
	}

	switch c.Scores.Backend {
	case "none", "memory":
	case "sqlite":
		if c.Scores.Path == "" {
			return fmt.Errorf("%w: sqlite scores need a path", ErrInvalid)
		}
	case "redis":
		if c.Scores.RedisAddr == "" {
			return fmt.Errorf("%w: redis scores need an address", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown scores backend %q", ErrInvalid, c.Scores.Backend)
	}
	return nil
}

// IntervalFor returns the drop interval at the given level.
func (g GravityConfig) IntervalFor(level int) time.Duration {
	if g.LevelStep <= 0 || level <= 1 {
		return g.Interval
	}
	interval := g.Interval - time.Duration(level-1)*g.LevelStep
	return max(interval, g.MinInterval)
}
