package commands

import (
	"errors"
	"io"
	"os"

	"github.com/plus3/blockfall/internal/session"
	"github.com/plus3/blockfall/internal/ui/terminal"
	"github.com/spf13/cobra"
)

func newTermCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "term",
		Short: "Play in the terminal",
		Long: `Play in the current terminal using raw mode and the alternate screen.

Logs are discarded unless --log-file is set, since they would draw over
the board.`,
		Args: cobra.NoArgs,
		RunE: runTerm,
	}
}

func runTerm(cmd *cobra.Command, args []string) error {
	rt, err := loadRuntime(cmd, io.Discard)
	if err != nil {
		return err
	}
	defer rt.Close()

	ctx := cmd.Context()
	s, closeSession, err := rt.newSession(ctx, session.Options{})
	if err != nil {
		return err
	}
	defer closeSession()

	err = terminal.Run(ctx, s, os.Stdin, os.Stdout, rt.logger)
	if errors.Is(err, terminal.ErrNotTerminal) {
		return rt.printer.Error("blockfall term needs an interactive terminal", err.Error(),
			"Run it directly in a terminal, not through a pipe.",
			"Use blockfall play for the desktop window.",
		)
	}
	if err != nil {
		return rt.printer.Error("The terminal session failed", err.Error())
	}

	rt.printSummary(s)
	return nil
}
