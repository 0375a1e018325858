package commands

import (
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/internal/report"
	"github.com/plus3/blockfall/internal/session"
	"github.com/plus3/blockfall/tetris"
	"github.com/spf13/cobra"
)

const simFrameDelta = 1.0 / 60.0

func newSimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Let the bot play headless games and report the results",
		Long: `Run the autoplay bot without a window until it has finished the
requested number of games, then print a markdown report of scores,
cleared lines, piece counts and system timings.

The report is styled when stdout is a terminal. Scores are only stored
with --record.`,
		Example: `  blockfall sim --games 50 --seed 7
  blockfall sim --randomizer bag --plain > report.md`,
		Args: cobra.NoArgs,
		RunE: runSim,
	}
	cmd.Flags().Int("games", 10, "Number of games to finish")
	cmd.Flags().Int64("max-frames", 1_000_000, "Stop after this many frames even if games are unfinished")
	cmd.Flags().Bool("record", false, "Record finished games in the score store")
	cmd.Flags().Bool("plain", false, "Print unstyled markdown")
	return cmd
}

func runSim(cmd *cobra.Command, args []string) error {
	rt, err := loadRuntime(cmd, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer rt.Close()

	games, _ := cmd.Flags().GetInt("games")
	maxFrames, _ := cmd.Flags().GetInt64("max-frames")
	record, _ := cmd.Flags().GetBool("record")
	plain, _ := cmd.Flags().GetBool("plain")
	if games < 1 {
		return rt.printer.Error("Nothing to simulate", "--games must be at least 1.")
	}
	if !record {
		rt.cfg.Scores.Backend = "none"
	}

	rep := &report.Report{
		Games:      games,
		Width:      rt.cfg.Board.Width,
		Height:     rt.cfg.Board.Height,
		Randomizer: rt.cfg.Randomizer,
		Seed:       rt.cfg.Seed,
	}

	ctx := cmd.Context()
	s, closeSession, err := rt.newSession(ctx, session.Options{
		Autoplay:    true,
		AutoRestart: true,
		Listeners:   []engine.Listener{report.Collector{Report: rep}},
	})
	if err != nil {
		return err
	}
	defer closeSession()

	rt.logger.Info("simulation started", "games", games, "max_frames", maxFrames)
	start := time.Now()
	var frames int64
	for ; len(rep.Score.Samples) < games && frames < maxFrames; frames++ {
		if frames%1000 == 0 && ctx.Err() != nil {
			break
		}
		s.Step(simFrameDelta)
	}
	rep.Elapsed = time.Since(start).Round(time.Millisecond)

	if finished := len(rep.Score.Samples); finished < games {
		rt.printer.Warning("Finished %d of %d games before stopping", finished, games)
	}

	rep.Finalize(s.Scheduler().GetStats())
	for _, kind := range tetris.Kinds {
		rep.Kinds = append(rep.Kinds, report.KindCount{Kind: kind, Count: s.Stats().Spawned(kind)})
	}
	rt.logger.Info("simulation finished", "games", len(rep.Score.Samples), "frames", frames, "elapsed", rep.Elapsed)

	out := cmd.OutOrStdout()
	return rep.Render(out, !plain && report.IsTerminal(out))
}
