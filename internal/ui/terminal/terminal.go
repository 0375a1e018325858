// Package terminal runs a session in a raw-mode terminal.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/muesli/termenv"
	"github.com/plus3/blockfall/internal/session"
	"golang.org/x/term"
)

// FrameInterval is the scheduler tick of the terminal frontend.
const FrameInterval = 16 * time.Millisecond

// ErrNotTerminal is returned when input is not an interactive terminal.
var ErrNotTerminal = errors.New("stdin is not a terminal")

// Run plays s on the terminal attached to in and out until the player quits
// or ctx is cancelled. The terminal state is restored before returning.
func Run(ctx context.Context, s *session.Session, in, out *os.File, logger *slog.Logger) error {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return ErrNotTerminal
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	defer term.Restore(fd, state)

	output := termenv.NewOutput(out)
	output.AltScreen()
	output.HideCursor()
	output.ClearScreen()
	defer func() {
		output.ShowCursor()
		output.ExitAltScreen()
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go readInput(ctx, in, s.Input(), cancel, logger)

	s.Register(&RenderSystem{
		Session:  s,
		Renderer: NewRenderer(output),
		Writer:   out,
	})

	logger.Info("terminal session started", "profile", output.Profile.Name())
	s.Scheduler().Run(ctx, FrameInterval)
	// Wake the reader if it is still waiting for a key. Terminals that do
	// not support deadlines leave it blocked until the next key or exit;
	// it drops whatever it reads after ctx is done.
	_ = in.SetReadDeadline(time.Now())
	logger.Info("terminal session ended", "score", s.Game().Score())
	return nil
}

// readInput feeds decoded key presses to queue until quit, a read error or
// the end of ctx, then calls stop.
func readInput(ctx context.Context, in io.Reader, queue *session.InputQueue, stop func(), logger *slog.Logger) {
	defer stop()

	buf := make([]byte, 64)
	for {
		n, err := in.Read(buf)
		if ctx.Err() != nil {
			return
		}
		if n > 0 {
			actions, quit := decode(buf[:n])
			if len(actions) > 0 {
				queue.Push(actions...)
			}
			if quit {
				return
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, os.ErrDeadlineExceeded) {
				logger.Error("read input", "error", err)
			}
			return
		}
	}
}
