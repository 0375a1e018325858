// Package report renders the markdown summary of an autoplay simulation.
package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"text/template"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/tetris"
	"golang.org/x/term"
)

type Report struct {
	// Configuration
	Games      int
	Width      int
	Height     int
	Randomizer string
	Seed       uint64

	// Results
	Frames  int64
	Elapsed time.Duration
	Score   Stats
	Lines   Stats
	Pieces  Stats
	Kinds   []KindCount
	Systems []engine.SystemStats
}

type KindCount struct {
	Kind  tetris.Kind
	Count int
}

type Stats struct {
	Min     int
	Max     int
	Avg     float64
	Samples []int
}

func (s *Stats) Add(sample int) {
	s.Samples = append(s.Samples, sample)
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	total := 0
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = float64(total) / float64(len(s.Samples))
}

// Collector gathers finished games into a report. It is a session listener.
type Collector struct {
	Report *Report
}

func (c Collector) OnEvent(event any) {
	over, ok := event.(tetris.GameOver)
	if !ok {
		return
	}
	c.Report.Score.Add(over.Score)
	c.Report.Lines.Add(over.Lines)
	c.Report.Pieces.Add(over.Pieces)
}

// Finalize computes the summaries and records the scheduler statistics.
func (r *Report) Finalize(stats *engine.SchedulerStats) {
	r.Score.Finalize()
	r.Lines.Finalize()
	r.Pieces.Finalize()
	if stats != nil {
		r.Frames = stats.Frames
		r.Systems = stats.Systems
	}
}

const reportTemplate = `
# Blockfall Simulation Report

## Configuration
- **Games:** {{.Games}}
- **Board:** {{.Width}}x{{.Height}}
- **Randomizer:** {{.Randomizer}} (seed {{.Seed}})

## Results
- **Finished Games:** {{len .Score.Samples}}
- **Frames:** {{.Frames}}
- **Wall Time:** {{.Elapsed}}

| | Min | Avg | Max |
|---|---|---|---|
| Score | {{.Score.Min}} | {{printf "%.1f" .Score.Avg}} | {{.Score.Max}} |
| Lines | {{.Lines.Min}} | {{printf "%.1f" .Lines.Avg}} | {{.Lines.Max}} |
| Pieces | {{.Pieces.Min}} | {{printf "%.1f" .Pieces.Avg}} | {{.Pieces.Max}} |
{{if .Kinds}}
## Pieces Spawned
{{range .Kinds}}- **{{.Kind}}:** {{.Count}}
{{end}}{{end}}
## System Timings
| System | Runs | Avg | Min | Max |
|---|---|---|---|---|
{{range .Systems}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration | us}} | {{.MinDuration | us}} | {{.MaxDuration | us}} |
{{end}}`

var tmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"us": func(d time.Duration) string {
		return fmt.Sprintf("%.1fµs", float64(d)/float64(time.Microsecond))
	},
}).Parse(reportTemplate))

// Generate writes the report as markdown.
func (r *Report) Generate(w io.Writer) error {
	return tmpl.Execute(w, r)
}

// Render writes the report to w, styled with glamour when pretty is set.
func (r *Report) Render(w io.Writer, pretty bool) error {
	if !pretty {
		return r.Generate(w)
	}

	var buf bytes.Buffer
	if err := r.Generate(&buf); err != nil {
		return err
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return fmt.Errorf("report renderer: %w", err)
	}
	out, err := renderer.Render(buf.String())
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
