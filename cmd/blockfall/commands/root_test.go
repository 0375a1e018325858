package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/plus3/blockfall/internal/printer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes a fresh command tree and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

// TestRootCommand_ShowsHelpWhenNoSubcommand tests that the root command
// lists the subcommands instead of starting a game
func TestRootCommand_ShowsHelpWhenNoSubcommand(t *testing.T) {
	out, _, err := run(t)

	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	for _, name := range []string{"play", "term", "sim", "scores", "version"} {
		assert.Contains(t, out, name)
	}
}

func TestRootCommand_RejectsUnknownFlags(t *testing.T) {
	_, _, err := run(t, "--unknown-flag", "value")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag")
	assert.False(t, printer.Reported(err), "flag errors are printed by Execute")
}

func TestVersionCommand(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2026-10-18")
	t.Cleanup(func() { SetVersionInfo("dev", "none", "unknown") })

	out, _, err := run(t, "version")

	require.NoError(t, err)
	assert.Equal(t, "blockfall 1.2.3 (commit: abc123, built: 2026-10-18)\n", out)
}

func TestSimCommand(t *testing.T) {
	t.Run("reports finished games", func(t *testing.T) {
		out, _, err := run(t, "sim",
			"--games", "2",
			"--width", "6", "--height", "6",
			"--randomizer", "bag", "--seed", "1",
			"--plain", "--log-file", "-",
		)

		require.NoError(t, err)
		assert.Contains(t, out, "# Blockfall Simulation Report")
		assert.Contains(t, out, "- **Board:** 6x6")
		assert.Contains(t, out, "- **Randomizer:** bag (seed 1)")
		assert.Contains(t, out, "- **Finished Games:** 2")
		assert.Contains(t, out, "## Pieces Spawned")
		assert.Contains(t, out, "| AutoplaySystem |")
	})

	t.Run("rejects zero games", func(t *testing.T) {
		_, stderr, err := run(t, "sim", "--games", "0", "--log-file", "-")

		require.Error(t, err)
		assert.True(t, printer.Reported(err))
		assert.Contains(t, stderr, "Nothing to simulate")
	})

	t.Run("invalid settings", func(t *testing.T) {
		_, stderr, err := run(t, "sim", "--randomizer", "shuffled", "--log-file", "-")

		require.Error(t, err)
		assert.True(t, printer.Reported(err))
		assert.Contains(t, stderr, "Invalid configuration")
		assert.Contains(t, stderr, `unknown randomizer "shuffled"`)
	})
}

func TestConfigFileAndFlagPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockfall.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board:\n  width: 6\n  height: 6\nseed: 3\n"), 0o644))

	out, _, err := run(t, "sim", "--config", path, "--height", "7", "--games", "1", "--plain", "--log-file", "-")

	require.NoError(t, err)
	assert.Contains(t, out, "- **Board:** 6x7")
	assert.Contains(t, out, "(seed 3)")
}

func TestScoresCommand(t *testing.T) {
	t.Run("empty store", func(t *testing.T) {
		out, _, err := run(t, "scores", "--scores-backend", "memory", "--log-file", "-")

		require.NoError(t, err)
		assert.Equal(t, "No scores recorded yet.\n", out)
	})

	t.Run("lists recorded simulation games", func(t *testing.T) {
		db := filepath.Join(t.TempDir(), "scores.db")
		store := []string{"--scores-backend", "sqlite", "--scores-path", db, "--log-file", "-"}

		_, _, err := run(t, append([]string{"sim", "--record", "--player", "bot",
			"--games", "2", "--width", "6", "--height", "6", "--plain"}, store...)...)
		require.NoError(t, err)

		out, _, err := run(t, append([]string{"scores", "-n", "5"}, store...)...)
		require.NoError(t, err)
		assert.Contains(t, out, "High scores")
		assert.Regexp(t, `1\s+bot\s+\d+`, out)
		assert.Regexp(t, `2\s+bot\s+\d+`, out)
	})

	t.Run("rejects a bad limit", func(t *testing.T) {
		_, stderr, err := run(t, "scores", "--scores-backend", "memory", "--limit", "0", "--log-file", "-")

		require.Error(t, err)
		assert.Contains(t, stderr, "Invalid limit")
	})
}
