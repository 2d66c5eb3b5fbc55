package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GiveawayBot_Go/internal/config"
)

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2024-01-%02d_00-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, LogFilePermission))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, LogFilePermission))

	cleanupLogs(dir, 9)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Len(t, names, 10)
	assert.Contains(t, names, "notes.txt")
	assert.NotContains(t, names, "session_2024-01-01_00-00-00.log")
	assert.Contains(t, names, "session_2024-01-12_00-00-00.log")
}

func TestSetupLogger_WritesSessionFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := t.TempDir()
	f, err := SetupLogger(&config.Config{LogLevel: "info", LogFormat: "json", Environment: "test", LogDir: dir})
	require.NoError(t, err)
	require.NotNil(t, f)
	t.Cleanup(func() { _ = f.Close() })

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), LogMsgStartingGiveawayBot)
}

func TestSetupLogger_StdoutOnly(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	f, err := SetupLogger(&config.Config{LogLevel: "warn"})
	require.NoError(t, err)
	assert.Nil(t, f)
}

type recorder struct {
	calls *[]string
	name  string
	err   error
}

func (r recorder) record() error {
	*r.calls = append(*r.calls, r.name)
	return r.err
}

// stopper satisfies the pool and scheduler shape
type stopper struct{ recorder }

func (s stopper) Stop() { _ = s.record() }

// closer satisfies the bot shape
type closer struct{ recorder }

func (c closer) Stop() error { return c.record() }

// ctxStopper satisfies the HTTP server shape
type ctxStopper struct{ recorder }

func (c ctxStopper) Stop(context.Context) error { return c.record() }

// shutdowner satisfies the worker and service shape
type shutdowner struct{ recorder }

func (s shutdowner) Shutdown(context.Context) error { return s.record() }

func TestGracefulShutdown_Order(t *testing.T) {
	var calls []string
	GracefulShutdown(context.Background(), ShutdownComponents{
		Server:          ctxStopper{recorder{calls: &calls, name: "server"}},
		Bot:             closer{recorder{calls: &calls, name: "bot", err: assert.AnError}},
		Scheduler:       stopper{recorder{calls: &calls, name: "scheduler"}},
		GiveawayWorker:  shutdowner{recorder{calls: &calls, name: "worker", err: assert.AnError}},
		GiveawayService: shutdowner{recorder{calls: &calls, name: "service"}},
		WorkerPool:      stopper{recorder{calls: &calls, name: "pool"}},
	})

	assert.Equal(t, []string{"server", "bot", "scheduler", "worker", "service", "pool"}, calls)
}

func TestGracefulShutdown_SkipsNil(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}
