package ctxlog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/ctxlog"
)

func TestFromContext_Fallback(t *testing.T) {
	assert.Same(t, slog.Default(), ctxlog.FromContext(context.Background()))
}

func TestWithLogger_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := ctxlog.New("debug", "json", &buf)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	got := ctxlog.FromContext(ctx)
	require.Same(t, logger, got)
	got.Debug("hello", "k", 1)
	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), `"k":1`)
}

func TestNew_TextAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := ctxlog.New("warn", "text", &buf)
	logger.Info("dropped")
	logger.Warn("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "msg=kept")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"bogus": slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, ctxlog.ParseLevel(in), in)
	}
}
