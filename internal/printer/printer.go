// Package printer formats command output: colored status lines, friendly
// errors and the high score table.
package printer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/plus3/blockfall/internal/scores"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan, color.Bold)
)

// Printer writes to a command's output and error streams.
type Printer struct {
	Out io.Writer
	Err io.Writer
}

func New(out, err io.Writer) *Printer {
	return &Printer{Out: out, Err: err}
}

// Stdio prints to the process's standard streams.
func Stdio() *Printer {
	return New(os.Stdout, os.Stderr)
}

// Success prints a message in green with a checkmark prefix.
func (p *Printer) Success(format string, a ...any) {
	green.Fprintf(p.Out, "✓ %s\n", fmt.Sprintf(format, a...))
}

func (p *Printer) Info(format string, a ...any) {
	fmt.Fprintf(p.Out, format+"\n", a...)
}

// Warning prints a message in yellow to the error stream.
func (p *Printer) Warning(format string, a ...any) {
	yellow.Fprintf(p.Err, "! %s\n", fmt.Sprintf(format, a...))
}

// Error prints a titled error with an explanation and suggestions to the
// error stream, and returns an error carrying only the title so cobra
// does not print it twice.
func (p *Printer) Error(title, explanation string, suggestions ...string) error {
	red.Fprintf(p.Err, "%s\n", title)
	if explanation != "" {
		fmt.Fprintf(p.Err, "\n%s\n", explanation)
	}

	switch len(suggestions) {
	case 0:
	case 1:
		fmt.Fprintf(p.Err, "\n%s\n", suggestions[0])
	default:
		fmt.Fprintf(p.Err, "\nEither:\n")
		for i, suggestion := range suggestions {
			fmt.Fprintf(p.Err, "  %d. %s\n", i+1, suggestion)
		}
	}

	return reportedError(title)
}

type reportedError string

func (e reportedError) Error() string { return string(e) }

// Reported reports whether err came from Error and was already printed.
func Reported(err error) bool {
	var reported reportedError
	return errors.As(err, &reported)
}

// Scores prints entries as a ranked table.
func (p *Printer) Scores(entries []scores.Entry) {
	if len(entries) == 0 {
		p.Info("No scores recorded yet.")
		return
	}

	cyan.Fprintln(p.Out, "High scores")
	tw := tabwriter.NewWriter(p.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tPLAYER\tSCORE\tLINES\tLEVEL\tTIME\tPLAYED")
	for i, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%s\t%s\n",
			i+1,
			e.Player,
			e.Score,
			e.Lines,
			e.Level,
			e.Duration.Round(time.Second),
			e.PlayedAt.Local().Format(time.DateTime),
		)
	}
	tw.Flush()
}
