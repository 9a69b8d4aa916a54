package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/Midhun-Kanadan/pdf-status/cmd/count-pdfs/commands"
	"github.com/Midhun-Kanadan/pdf-status/internal/app"
	"github.com/Midhun-Kanadan/pdf-status/internal/build"
	"github.com/Midhun-Kanadan/pdf-status/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockApp struct {
	countFunc func(ctx context.Context, opts app.CountOptions) (app.CountResult, error)
}

func (m *mockApp) Count(ctx context.Context, opts app.CountOptions) (app.CountResult, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx, opts)
	}
	return app.CountResult{}, nil
}

func TestCommands_Count(t *testing.T) {
	t.Run("uses defaults without flags", func(t *testing.T) {
		var captured app.CountOptions
		mock := &mockApp{
			countFunc: func(_ context.Context, opts app.CountOptions) (app.CountResult, error) {
				captured = opts
				return app.CountResult{}, nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs(nil)

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, domain.ConfigFileName, captured.ConfigPath)
		assert.False(t, captured.NoCache)
	})

	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.CountOptions
		mock := &mockApp{
			countFunc: func(_ context.Context, opts app.CountOptions) (app.CountResult, error) {
				captured = opts
				return app.CountResult{}, nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"-c", "corpus/pdfstatus.yaml", "--no-cache"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "corpus/pdfstatus.yaml", captured.ConfigPath)
		assert.True(t, captured.NoCache)
	})

	t.Run("returns error on count failure", func(t *testing.T) {
		mock := &mockApp{
			countFunc: func(_ context.Context, _ app.CountOptions) (app.CountResult, error) {
				return app.CountResult{}, errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs(nil)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		mock := &mockApp{
			countFunc: func(_ context.Context, _ app.CountOptions) (app.CountResult, error) {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"conf"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Version(t *testing.T) {
	t.Run("subcommand", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"version"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), "count-pdfs version "+build.Version)
	})

	t.Run("flag", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"--version"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), "count-pdfs version "+build.Version)
	})
}
