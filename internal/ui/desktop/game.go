// Package desktop runs a session in an ebiten window.
package desktop

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/internal/debugui"
	debugui_ebiten "github.com/plus3/blockfall/internal/debugui/ebiten"
	"github.com/plus3/blockfall/internal/logging"
	"github.com/plus3/blockfall/internal/session"
	"github.com/plus3/blockfall/internal/ui"
	"github.com/plus3/blockfall/tetris"
)

const (
	title = "blockfall"
	// Extra window width for the ImGui debug windows.
	debugWidth = 380
	frameDelta = 1.0 / 60.0
)

type Options struct {
	CellSize int
	// Debug adds the Dear ImGui overlay.
	Debug  bool
	Logger *slog.Logger
}

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	session *session.Session
	layout  layout
	logger  *slog.Logger

	imguiBackend *debugui_ebiten.ImguiBackend
	inputState   *debugui.ImguiInputState
}

func New(s *session.Session, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	board := s.Game().Board()
	g := &Game{
		session: s,
		layout:  newLayout(board.Width(), board.Height(), opts.CellSize),
		logger:  logger,
	}

	if opts.Debug {
		w, h := g.layout.screenSize()
		g.imguiBackend = debugui_ebiten.NewImguiBackend(title, w+debugWidth, max(h, 660))

		resources := s.Scheduler().Resources()
		windows := engine.AddResource(resources, debugui.Windows{})
		windows.Add("performance", debugui.NewPerformanceWindow(s.Scheduler(), 120).Render)
		windows.Add("game", (&debugui.GameWindow{Session: s}).Render)
		g.inputState = engine.AddResource(resources, debugui.ImguiInputState{})
		s.Register(&debugui.ImguiSystem{})
	}
	return g
}

// Run opens the window and blocks until it is closed.
func (g *Game) Run() error {
	if g.imguiBackend == nil {
		w, h := g.layout.screenSize()
		ebiten.SetWindowSize(w, h)
		ebiten.SetWindowTitle(title)
	}

	g.logger.Info("desktop window opened", "debug", g.imguiBackend != nil)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

func (g *Game) Update() error {
	if quitRequested() {
		return ebiten.Termination
	}

	if g.inputState == nil || !g.inputState.WantCaptureKeyboard {
		if actions := readActions(); len(actions) > 0 {
			g.session.Input().Push(actions...)
		}
	}

	if g.imguiBackend != nil {
		g.imguiBackend.BeginFrame()
	}
	g.session.Step(frameDelta)
	if g.imguiBackend != nil {
		g.imguiBackend.EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.Background)
	snap := g.session.Snapshot()

	g.drawBoard(screen, snap)
	g.drawPanel(screen, snap)

	if g.imguiBackend != nil {
		g.imguiBackend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imguiBackend != nil {
		g.imguiBackend.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.layout.screenSize()
}

func (g *Game) drawCell(screen *ebiten.Image, x, y int, c color.Color) {
	size := float32(g.layout.cell)
	sx, sy := g.layout.cellOrigin(x, y)
	vector.DrawFilledRect(screen, sx+1, sy+1, size-2, size-2, c, false)
}

func (g *Game) drawBoard(screen *ebiten.Image, snap session.Snapshot) {
	size := float32(g.layout.cell)
	for y := range snap.Height {
		for x := range snap.Width {
			sx, sy := g.layout.cellOrigin(x, y)
			vector.StrokeRect(screen, sx, sy, size, size, 1, ui.Grid, false)
		}
	}

	if snap.ShowPiece {
		snap.Ghost.Cells(func(x, y int, c tetris.Cell) {
			if y >= 0 {
				g.drawCell(screen, x, y, ui.Ghost(c))
			}
		})
	}

	for y, row := range snap.Cells {
		for x, c := range row {
			if c != tetris.Empty {
				g.drawCell(screen, x, y, ui.Color(c))
			}
		}
	}
}

func (g *Game) drawPanel(screen *ebiten.Image, snap session.Snapshot) {
	px, py := g.layout.panelOrigin()

	ebitenutil.DebugPrintAt(screen, "NEXT", px, py)
	preview := tetris.NewPiece(snap.Next, 0, 0)
	size := float32(g.layout.cell)
	preview.Cells(func(x, y int, c tetris.Cell) {
		sx := float32(px) + float32(x)*size
		sy := float32(py+20) + float32(y)*size
		vector.DrawFilledRect(screen, sx+1, sy+1, size-2, size-2, ui.Color(c), false)
	})

	hud := []string{
		fmt.Sprintf("SCORE  %d", snap.Score),
		fmt.Sprintf("LINES  %d", snap.Lines),
		fmt.Sprintf("LEVEL  %d", snap.Level),
		fmt.Sprintf("TIME   %.0fs", snap.Elapsed),
		"",
	}
	hud = append(hud, ui.Controls...)
	ebitenutil.DebugPrintAt(screen, strings.Join(hud, "\n"), px, py+20+3*g.layout.cell)

	_, h := g.layout.screenSize()
	switch {
	case snap.Over:
		ebitenutil.DebugPrintAt(screen, "GAME OVER\npress r to restart", px, h-g.layout.margin-40)
	case snap.Paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", px, h-g.layout.margin-40)
	}
}
