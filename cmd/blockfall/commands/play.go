package commands

import (
	"context"
	"time"

	"github.com/plus3/blockfall/internal/metrics"
	"github.com/plus3/blockfall/internal/session"
	"github.com/plus3/blockfall/internal/ui/desktop"
	"github.com/spf13/cobra"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in a desktop window",
		Long: `Open the game in a desktop window.

Controls: arrows or WASD move and rotate, space hard drops, P pauses,
R restarts and Q or Escape quits. With --debug a Dear ImGui overlay shows
frame timings and lets you tune gravity while playing.`,
		Args: cobra.NoArgs,
		RunE: runPlay,
	}
	cmd.Flags().Bool("debug", false, "Show the debug overlay")
	cmd.Flags().Bool("demo", false, "Let the bot play, restarting after each game")
	cmd.Flags().Int("cell-size", 0, "Cell size in pixels")
	return cmd
}

func runPlay(cmd *cobra.Command, args []string) error {
	rt, err := loadRuntime(cmd, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer rt.Close()

	if cmd.Flags().Changed("debug") {
		rt.cfg.UI.Debug, _ = cmd.Flags().GetBool("debug")
	}
	if cmd.Flags().Changed("cell-size") {
		rt.cfg.UI.CellSize, _ = cmd.Flags().GetInt("cell-size")
		if err := rt.cfg.Validate(); err != nil {
			return rt.printer.Error("Invalid configuration", err.Error())
		}
	}
	demo, _ := cmd.Flags().GetBool("demo")

	ctx := cmd.Context()
	s, closeSession, err := rt.newSession(ctx, session.Options{Autoplay: demo, AutoRestart: demo})
	if err != nil {
		return err
	}
	defer closeSession()

	game := desktop.New(s, desktop.Options{
		CellSize: rt.cfg.UI.CellSize,
		Debug:    rt.cfg.UI.Debug,
		Logger:   rt.logger,
	})
	if err := game.Run(); err != nil {
		return rt.printer.Error("The game window failed", err.Error())
	}

	rt.printSummary(s)
	return nil
}

// newSession opens the score store, starts metrics when configured and
// builds a session from opts. The returned func releases the store.
func (r *runtime) newSession(ctx context.Context, opts session.Options) (*session.Session, func(), error) {
	store, err := r.openScores(ctx)
	if err != nil {
		return nil, nil, err
	}

	opts.Config = r.cfg
	opts.Logger = r.logger
	opts.Scores = store

	m := r.startMetrics(ctx)
	if m != nil {
		opts.Listeners = append(opts.Listeners, m)
	}

	s, err := session.New(opts)
	if err != nil {
		_ = store.Close()
		return nil, nil, r.printer.Error("Cannot start the game", err.Error())
	}
	if m != nil {
		s.Register(&metrics.FrameSystem{Metrics: m, Scheduler: s.Scheduler()})
	}

	closeStore := func() {
		if err := store.Close(); err != nil {
			r.logger.Error("close score store", "error", err)
		}
	}
	return s, closeStore, nil
}

func (r *runtime) printSummary(s *session.Session) {
	game := s.Game()
	elapsed := time.Duration(s.Snapshot().Elapsed * float64(time.Second))
	r.printer.Info("Score %d, %d lines, level %d in %s",
		game.Score(), game.Lines(), game.Level(), formatDuration(elapsed))

	if r.cfg.Scores.Backend != "none" && s.Recorder() != nil {
		if entry, ok := s.Recorder().Last(); ok {
			r.printer.Success("Recorded %d points for %s", entry.Score, entry.Player)
		}
	}
	if stats := s.Stats(); stats.Games > 1 {
		r.printer.Info("Best of %d games: %d", stats.Games, stats.BestScore)
	}
}
