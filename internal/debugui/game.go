package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/internal/session"
	"github.com/plus3/blockfall/tetris"
)

// GameWindow shows the session's counters and lets the gravity interval be
// tuned while playing.
type GameWindow struct {
	Session *session.Session
}

func (gw *GameWindow) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 320), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 320), imgui.CondOnce)
	if !imgui.BeginV("Game", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	snap := gw.Session.Snapshot()
	switch {
	case snap.Over:
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "GAME OVER")
	case snap.Paused:
		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "PAUSED")
	default:
		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "RUNNING")
	}

	imgui.Text(fmt.Sprintf("Score: %d", snap.Score))
	imgui.Text(fmt.Sprintf("Lines: %d | Level: %d", snap.Lines, snap.Level))
	imgui.Text(fmt.Sprintf("Pieces: %d", snap.Pieces))
	imgui.Text(fmt.Sprintf("Play Time: %.1fs", snap.Elapsed))
	imgui.Text(fmt.Sprintf("Piece: %s at (%d, %d) | Next: %s",
		snap.Current.Kind, snap.Current.X, snap.Current.Y, snap.Next))

	imgui.Separator()
	gravity := gw.Session.Gravity()
	ms := int32(gravity.Config.Interval / time.Millisecond)
	imgui.Text("Gravity (ms):")
	imgui.SameLine()
	imgui.SetNextItemWidth(150)
	if imgui.InputInt("##gravity", &ms) && ms > 0 {
		gravity.Config.Interval = time.Duration(ms) * time.Millisecond
	}
	imgui.Text(fmt.Sprintf("Drops: %d", gravity.Ticks))

	if imgui.Button("Pause") {
		gw.Session.Input().Push(session.ActionPause)
	}
	imgui.SameLine()
	if imgui.Button("Restart") {
		gw.Session.Input().Push(session.ActionRestart)
	}

	stats := gw.Session.Stats()
	if imgui.TreeNodeStr("Session") {
		imgui.Text(fmt.Sprintf("Games: %d", stats.Games))
		imgui.Text(fmt.Sprintf("Best Score: %d", stats.BestScore))
		imgui.Text(fmt.Sprintf("Lines Cleared: %d", stats.LinesCleared))
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Spawned Pieces") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SpawnTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Kind")
			imgui.TableSetupColumn("Count")
			imgui.TableHeadersRow()

			for _, kind := range tetris.Kinds {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(kind.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", stats.Spawned(kind)))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
