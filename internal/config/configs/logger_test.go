package configs

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerLevelValue(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"Warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info+2":  slog.LevelInfo + 2,
		"loud":    slog.LevelInfo,
	}
	for in, want := range cases {
		require.Equal(t, want, Logger{Level: in}.LevelValue(), "level %q", in)
	}
}

func TestLoggerHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	h := Logger{Level: "debug", Format: " Json "}.Handler(&buf)
	require.True(t, h.Enabled(context.Background(), slog.LevelDebug))

	slog.New(h).Debug("hello")
	require.True(t, strings.HasPrefix(buf.String(), "{"), buf.String())

	buf.Reset()
	h = Logger{Level: "error", Format: "yaml"}.Handler(&buf)
	require.False(t, h.Enabled(context.Background(), slog.LevelWarn))

	slog.New(h).Error("hello")
	require.Contains(t, buf.String(), "msg=hello")
}
