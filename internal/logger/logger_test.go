package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_DisabledDiscards(t *testing.T) {
	require.NoError(t, Init(Options{Enabled: false}))
	Info("nobody hears this")
	assert.Nil(t, logFile)
}

func TestInit_Writer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Options{Enabled: true, Writer: &buf, Level: slog.LevelDebug}))
	t.Cleanup(Close)

	Debug("saved", "bytes", 3)
	assert.Contains(t, buf.String(), "saved")
	assert.Contains(t, buf.String(), "bytes=3")
}

func TestInit_FileInLogDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(Options{Enabled: true, LogDir: dir}))
	t.Cleanup(Close)

	Info("opened", "path", "/tmp/x.bin")
	Debug("filtered out at info level")

	name := filepath.Join(dir, logPrefix+time.Now().Format("2006-01-02")+logSuffix)
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"opened"`)
	assert.NotContains(t, string(data), "filtered out")
}

func TestCleanOldLogs(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

	for _, name := range []string{
		"hexkit-2025-01-01.log", // old
		"hexkit-2025-06-29.log", // recent
		"hexkit-garbage.log",    // unparsable, kept
		"other-2020-01-01.log",  // not ours
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	cleanOldLogs(dir, now)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{
		"hexkit-2025-06-29.log",
		"hexkit-garbage.log",
		"other-2020-01-01.log",
	}, names)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}
