package commands

import (
	"github.com/spf13/cobra"
)

func newScoresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "List the high scores",
		Args:  cobra.NoArgs,
		RunE:  runScores,
	}
	cmd.Flags().IntP("limit", "n", 10, "Number of scores to show")
	return cmd
}

func runScores(cmd *cobra.Command, args []string) error {
	rt, err := loadRuntime(cmd, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer rt.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	if limit < 1 {
		return rt.printer.Error("Invalid limit", "--limit must be at least 1.")
	}

	ctx := cmd.Context()
	store, err := rt.openScores(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Top(ctx, limit)
	if err != nil {
		return rt.printer.Error("Cannot read scores", err.Error())
	}
	rt.printer.Scores(entries)
	return nil
}
