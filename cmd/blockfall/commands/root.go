package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/plus3/blockfall/internal/config"
	"github.com/plus3/blockfall/internal/logging"
	"github.com/plus3/blockfall/internal/metrics"
	"github.com/plus3/blockfall/internal/printer"
	"github.com/plus3/blockfall/internal/scores"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

func versionString() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
}

// Execute runs the blockfall command tree. Errors the commands have not
// already explained, such as bad flags, are printed here.
func Execute(ctx context.Context) error {
	err := NewRootCmd().ExecuteContext(ctx)
	if err != nil && !printer.Reported(err) {
		printer.Stdio().Error("Error", err.Error(), "Run 'blockfall --help' for usage.")
	}
	return err
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "blockfall",
		Short: "A falling-block puzzle game",
		Long: `blockfall is a falling-block puzzle game for the desktop and the terminal.

Pieces fall onto a 10x20 board; complete rows to clear them and score 100
points per line. The game ends when a new piece has no room to spawn.`,
		Version: versionString(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "YAML config file")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	flags.String("log-file", "", "Write logs to this file (- discards them)")
	flags.Int("width", 0, "Board width in cells")
	flags.Int("height", 0, "Board height in cells")
	flags.Duration("gravity", 0, "Time between automatic drops")
	flags.Duration("level-step", 0, "Gravity speedup per level (0 keeps the speed constant)")
	flags.String("randomizer", "", "Piece randomizer: uniform or bag")
	flags.Uint64("seed", 0, "Randomizer seed")
	flags.String("player", "", "Player name recorded with scores")
	flags.String("scores-backend", "", "Score store: none, memory, sqlite or redis")
	flags.String("scores-path", "", "SQLite score database path")
	flags.String("redis-addr", "", "Redis address for the redis score store")
	flags.String("metrics-addr", "", "Serve Prometheus metrics on this address")

	root.AddCommand(
		newPlayCmd(),
		newTermCmd(),
		newSimCmd(),
		newScoresCmd(),
		newVersionCmd(),
	)
	return root
}

// runtime is what every game command needs: settings, a logger and the
// output printer.
type runtime struct {
	cfg     config.Config
	logger  *slog.Logger
	printer *printer.Printer
	closer  io.Closer
}

func (r *runtime) Close() error {
	return r.closer.Close()
}

// loadRuntime applies defaults, the config file, BLOCKFALL_* variables and
// flags, in that order. Logs go to logFallback unless log.file is set.
func loadRuntime(cmd *cobra.Command, logFallback io.Writer) (*runtime, error) {
	p := printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
	flags := cmd.Flags()

	path, _ := flags.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, p.Error("Invalid configuration", err.Error(),
			"Check the file passed to --config and any BLOCKFALL_* environment variables.")
	}

	applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return nil, p.Error("Invalid configuration", err.Error())
	}

	logger, closer, err := logging.Open(cfg.Log.Level, cfg.Log.File, logFallback)
	if err != nil {
		return nil, p.Error("Cannot start logging", err.Error(),
			"Use one of debug, info, warn, error for --log-level.")
	}
	return &runtime{cfg: cfg, logger: logger, printer: p, closer: closer}, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	set := func(name string, apply func()) {
		if flags.Changed(name) {
			apply()
		}
	}

	set("log-level", func() { cfg.Log.Level, _ = flags.GetString("log-level") })
	set("log-file", func() { cfg.Log.File, _ = flags.GetString("log-file") })
	set("width", func() { cfg.Board.Width, _ = flags.GetInt("width") })
	set("height", func() { cfg.Board.Height, _ = flags.GetInt("height") })
	set("gravity", func() { cfg.Gravity.Interval, _ = flags.GetDuration("gravity") })
	set("level-step", func() { cfg.Gravity.LevelStep, _ = flags.GetDuration("level-step") })
	set("randomizer", func() { cfg.Randomizer, _ = flags.GetString("randomizer") })
	set("seed", func() { cfg.Seed, _ = flags.GetUint64("seed") })
	set("player", func() { cfg.Player, _ = flags.GetString("player") })
	set("scores-backend", func() { cfg.Scores.Backend, _ = flags.GetString("scores-backend") })
	set("scores-path", func() { cfg.Scores.Path, _ = flags.GetString("scores-path") })
	set("redis-addr", func() { cfg.Scores.RedisAddr, _ = flags.GetString("redis-addr") })
	set("metrics-addr", func() { cfg.Metrics.Addr, _ = flags.GetString("metrics-addr") })
}

func (r *runtime) openScores(ctx context.Context) (scores.Store, error) {
	store, err := scores.Open(ctx, r.cfg.Scores)
	if err != nil {
		return nil, r.printer.Error("Cannot open the score store", err.Error(),
			"Pass --scores-backend=none to play without recording scores.",
			"Fix the scores settings in your config file.",
		)
	}
	return store, nil
}

// startMetrics serves metrics in the background when an address is set.
func (r *runtime) startMetrics(ctx context.Context) *metrics.Metrics {
	if r.cfg.Metrics.Addr == "" {
		return nil
	}
	m := metrics.New()
	go func() {
		if err := m.ListenAndServe(ctx, r.cfg.Metrics.Addr, r.logger); err != nil {
			r.logger.Error("metrics server stopped", "error", err)
		}
	}()
	return m
}

func formatDuration(d time.Duration) string {
	return d.Round(time.Second).String()
}
