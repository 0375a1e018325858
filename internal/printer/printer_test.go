package printer

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/plus3/blockfall/internal/scores"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrinter(t *testing.T) (*Printer, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	var out, errOut bytes.Buffer
	return New(&out, &errOut), &out, &errOut
}

func TestError(t *testing.T) {
	t.Run("returns error with title", func(t *testing.T) {
		p, _, stderr := newTestPrinter(t)
		err := p.Error("Test Error", "This is a test error")
		require.Error(t, err)
		require.Equal(t, "Test Error", err.Error())
		assert.Equal(t, "Test Error\n\nThis is a test error\n", stderr.String())
		assert.True(t, Reported(err))
		assert.True(t, Reported(fmt.Errorf("wrapped: %w", err)))
		assert.False(t, Reported(errors.New("Test Error")))
	})

	t.Run("single suggestion", func(t *testing.T) {
		p, _, stderr := newTestPrinter(t)
		err := p.Error("Test Error", "Explanation", "Try this fix")
		require.Equal(t, "Test Error", err.Error())
		assert.Contains(t, stderr.String(), "\nTry this fix\n")
		assert.NotContains(t, stderr.String(), "Either")
	})

	t.Run("multiple suggestions are numbered", func(t *testing.T) {
		p, _, stderr := newTestPrinter(t)
		err := p.Error("Test Error", "Explanation", "First option", "Second option")
		require.Equal(t, "Test Error", err.Error())
		assert.Contains(t, stderr.String(), "Either:\n  1. First option\n  2. Second option\n")
	})
}

func TestMessages(t *testing.T) {
	p, stdout, stderr := newTestPrinter(t)

	p.Success("saved %d scores", 3)
	p.Info("plain %s", "text")
	p.Warning("careful")

	assert.Equal(t, "✓ saved 3 scores\nplain text\n", stdout.String())
	assert.Equal(t, "! careful\n", stderr.String())
}

func TestScores(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		p, stdout, _ := newTestPrinter(t)
		p.Scores(nil)
		assert.Equal(t, "No scores recorded yet.\n", stdout.String())
	})

	t.Run("ranked table", func(t *testing.T) {
		p, stdout, _ := newTestPrinter(t)
		p.Scores([]scores.Entry{
			{Player: "ada", Score: 1200, Lines: 12, Level: 2, Duration: 95 * time.Second, PlayedAt: time.Now()},
			{Player: "bob", Score: 300, Lines: 3, Level: 1, Duration: 40 * time.Second, PlayedAt: time.Now()},
		})

		out := stdout.String()
		assert.Contains(t, out, "High scores\n")
		assert.Contains(t, out, "PLAYER")
		assert.Regexp(t, `1\s+ada\s+1200\s+12\s+2\s+1m35s`, out)
		assert.Regexp(t, `2\s+bob\s+300\s+3\s+1\s+40s`, out)
	})
}
