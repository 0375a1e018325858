package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/engine"
)

// FrameHistory is a ring of frame times in milliseconds.
type FrameHistory struct {
	samples []float32
	index   int
	filled  int
}

func NewFrameHistory(frames int) *FrameHistory {
	return &FrameHistory{samples: make([]float32, frames)}
}

func (h *FrameHistory) Push(ms float32) {
	h.samples[h.index] = ms
	h.index = (h.index + 1) % len(h.samples)
	h.filled = min(h.filled+1, len(h.samples))
}

// Average returns the mean of the recorded samples.
func (h *FrameHistory) Average() float32 {
	if h.filled == 0 {
		return 0
	}
	var total float32
	for _, ms := range h.samples[:h.filled] {
		total += ms
	}
	return total / float32(h.filled)
}

func (h *FrameHistory) Samples() []float32 {
	return h.samples
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}

// PerformanceWindow shows frame times, per-system timings and the
// scheduler's resources.
type PerformanceWindow struct {
	Scheduler *engine.Scheduler

	history *FrameHistory
	timer   *FrameTimer
}

func NewPerformanceWindow(scheduler *engine.Scheduler, historyFrames int) *PerformanceWindow {
	return &PerformanceWindow{
		Scheduler: scheduler,
		history:   NewFrameHistory(historyFrames),
		timer:     NewFrameTimer(),
	}
}

func (pw *PerformanceWindow) Render() {
	pw.history.Push(pw.timer.GetDeltaTime() * 1000.0)

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 300), imgui.CondOnce)
	if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := pw.Scheduler.GetStats()
	avg := pw.history.Average()
	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	samples := pw.history.Samples()
	imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Runs")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Max")
		imgui.TableHeadersRow()

		for _, sys := range stats.Systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(sys.Name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
			imgui.TableNextColumn()
			imgui.Text(sys.AvgDuration.String())
			imgui.TableNextColumn()
			imgui.Text(sys.MaxDuration.String())
		}

		imgui.EndTable()
	}

	if imgui.TreeNodeStr("Resources") {
		for _, name := range pw.Scheduler.Resources().TypeNames() {
			imgui.BulletText(name)
		}
		imgui.TreePop()
	}

	imgui.End()
}
