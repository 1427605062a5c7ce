package cmd

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/stem-volumes/internal/conf"
	"github.com/tphakala/stem-volumes/internal/logging"
)

// execute runs the root command with the given arguments, discarding output.
func execute(t *testing.T, settings *conf.Settings, args ...string) {
	t.Helper()
	rootCmd := RootCommand(settings)
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
}

// The --debug flag must raise the logger level after flag parsing; the config
// file value is applied earlier, at startup. Not parallel, the loggers are
// global state.
func TestDebugFlagEnablesDebugLogging(t *testing.T) {
	ctx := context.Background()

	logging.Init()
	settings := &conf.Settings{}
	execute(t, settings, "--on-error", "fail")
	assert.False(t, settings.Debug)
	assert.False(t, logging.HumanReadable().Enabled(ctx, slog.LevelDebug))

	logging.Init()
	settings = &conf.Settings{}
	execute(t, settings, "--debug", "--on-error", "fail")
	assert.True(t, settings.Debug)
	assert.True(t, logging.HumanReadable().Enabled(ctx, slog.LevelDebug))
}

func TestFlagsSyncIntoSettings(t *testing.T) {
	logging.Init()
	settings := &conf.Settings{}
	execute(t, settings, "--on-error", "skip", "--overwrite")

	assert.Equal(t, conf.OnErrorSkip, settings.Calculate.OnError)
	assert.True(t, settings.Output.Overwrite)
}

func TestInvalidOnErrorFlagRejected(t *testing.T) {
	logging.Init()
	settings := &conf.Settings{}
	rootCmd := RootCommand(settings)
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"--on-error", "explode"})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "calculate.onerror")
}
