package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weave/cmd/weave/commands"
	"go.trai.ch/weave/internal/app"
	"go.trai.ch/weave/internal/build"
)

type mockApp struct {
	settingsFunc func(ctx context.Context, dir string, opts app.SettingsOptions, out io.Writer) error
}

func (m *mockApp) Settings(ctx context.Context, dir string, opts app.SettingsOptions, out io.Writer) error {
	if m.settingsFunc != nil {
		return m.settingsFunc(ctx, dir, opts, out)
	}
	return nil
}

func TestCommands_Settings(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.SettingsOptions
		var capturedDir string

		mock := &mockApp{
			settingsFunc: func(_ context.Context, dir string, opts app.SettingsOptions, out io.Writer) error {
				capturedDir = dir
				capturedOpts = opts
				_, err := io.WriteString(out, "report")
				return err
			},
		}

		cli := commands.New(mock)
		out := new(bytes.Buffer)
		cli.SetOutput(out, new(bytes.Buffer))
		cli.SetArgs([]string{
			"settings", "../app",
			"--no-build-cache", "--offline",
			"-P", "env=ci", "--property", "region=eu",
			"--parallel", "2",
			"--format", "yaml",
			"--json",
			"--metrics-out", "weave.prom",
		})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "../app", capturedDir)
		assert.Equal(t, app.SettingsOptions{
			NoBuildCache: true,
			Offline:      true,
			Properties:   []string{"env=ci", "region=eu"},
			Parallel:     2,
			Format:       "yaml",
			JSONLogs:     true,
			MetricsOut:   "weave.prom",
		}, capturedOpts)
		assert.Equal(t, "report", out.String())
	})

	t.Run("defaults to the current directory", func(t *testing.T) {
		var capturedOpts app.SettingsOptions
		var capturedDir string

		mock := &mockApp{
			settingsFunc: func(_ context.Context, dir string, opts app.SettingsOptions, _ io.Writer) error {
				capturedDir = dir
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"settings"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, ".", capturedDir)
		assert.Equal(t, app.FormatText, capturedOpts.Format)
		assert.False(t, capturedOpts.NoBuildCache)
		assert.Zero(t, capturedOpts.Parallel)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mock := &mockApp{
			settingsFunc: func(_ context.Context, _ string, _ app.SettingsOptions, _ io.Writer) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"settings"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("accepts tree options before the command", func(t *testing.T) {
		var capturedOpts app.SettingsOptions

		mock := &mockApp{
			settingsFunc: func(_ context.Context, _ string, opts app.SettingsOptions, _ io.Writer) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"--offline", "-P", "flavor=eu", "settings"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, capturedOpts.Offline)
		assert.Equal(t, []string{"flavor=eu"}, capturedOpts.Properties)
	})

	t.Run("rejects more than one directory", func(t *testing.T) {
		mock := &mockApp{
			settingsFunc: func(_ context.Context, _ string, _ app.SettingsOptions, _ io.Writer) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"settings", "a", "b"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "weave version dev (commit: none, date: unknown)\n", buf.String())
}

func TestCommands_VersionFlag(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), build.Version)
}

func TestCommands_Help(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--help"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "weave.settings.yaml")
	assert.Contains(t, buf.String(), "--no-build-cache")
	assert.Contains(t, buf.String(), "-P, --property")
}
