package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/internal/session"
	"github.com/plus3/blockfall/internal/ui"
	"github.com/plus3/blockfall/tetris"
)

const (
	filled = "██"
	ghost  = "░░"
	empty  = " ."
)

// Renderer draws snapshots as text, colored for the output's profile.
type Renderer struct {
	out *termenv.Output
}

func NewRenderer(out *termenv.Output) *Renderer {
	return &Renderer{out: out}
}

func (r *Renderer) cell(glyph string, c tetris.Cell) string {
	return r.out.String(glyph).Foreground(r.out.FromColor(ui.Color(c))).String()
}

// Frame renders the board with a side panel. Lines are separated by "\r\n"
// so the output is correct in raw mode.
func (r *Renderer) Frame(snap session.Snapshot) string {
	ghostCells := map[[2]int]tetris.Cell{}
	if snap.ShowPiece {
		snap.Ghost.Cells(func(x, y int, c tetris.Cell) {
			ghostCells[[2]int{x, y}] = c
		})
	}

	panel := r.panel(snap)
	lines := make([]string, 0, snap.Height+1)
	for y, row := range snap.Cells {
		var b strings.Builder
		b.WriteString("│")
		for x, c := range row {
			switch g, ok := ghostCells[[2]int{x, y}]; {
			case c != tetris.Empty:
				b.WriteString(r.cell(filled, c))
			case ok:
				b.WriteString(r.cell(ghost, g))
			default:
				b.WriteString(empty)
			}
		}
		b.WriteString("│")
		if y < len(panel) {
			b.WriteString("  ")
			b.WriteString(panel[y])
		}
		lines = append(lines, b.String())
	}
	lines = append(lines, "└"+strings.Repeat("──", snap.Width)+"┘")
	return strings.Join(lines, "\r\n")
}

func (r *Renderer) panel(snap session.Snapshot) []string {
	lines := []string{"NEXT"}

	next := tetris.NewPiece(snap.Next, 0, 0)
	for y := range 2 {
		var b strings.Builder
		if y < len(next.Shape) {
			for _, c := range next.Shape[y] {
				if c == tetris.Empty {
					b.WriteString("  ")
				} else {
					b.WriteString(r.cell(filled, c))
				}
			}
		}
		lines = append(lines, b.String())
	}

	status := ""
	switch {
	case snap.Over:
		status = r.out.String("GAME OVER  r to restart").Bold().String()
	case snap.Paused:
		status = r.out.String("PAUSED").Bold().String()
	}

	lines = append(lines,
		"",
		fmt.Sprintf("SCORE  %d", snap.Score),
		fmt.Sprintf("LINES  %d", snap.Lines),
		fmt.Sprintf("LEVEL  %d", snap.Level),
		fmt.Sprintf("TIME   %.0fs", snap.Elapsed),
		status,
		"",
	)
	return append(lines, ui.Controls...)
}

// RenderSystem redraws the screen when the game changes or the clock
// passes a whole second.
type RenderSystem struct {
	Session  *session.Session
	Renderer *Renderer
	Writer   io.Writer

	drawn   bool
	version uint64
	second  int
}

func (s *RenderSystem) Execute(*engine.UpdateFrame) {
	snap := s.Session.Snapshot()
	second := int(snap.Elapsed)
	if s.drawn && snap.Version == s.version && second == s.second {
		return
	}
	s.drawn = true
	s.version = snap.Version
	s.second = second

	// Home the cursor and overwrite the previous frame in place, clearing
	// what is left of longer lines.
	frame := strings.ReplaceAll(s.Renderer.Frame(snap), "\r\n", "\x1b[K\r\n")
	io.WriteString(s.Writer, "\x1b[H"+frame+"\x1b[J")
}
