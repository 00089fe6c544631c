package vecsum

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStructuredLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	v, err := New(4, WithLogger(logger))
	require.NoError(t, err)
	require.NoError(t, v.Close())

	_, err = New(math.MaxInt64, WithLogger(logger))
	require.Error(t, err)

	out := buf.String()
	require.Contains(t, out, "vector allocated")
	require.Contains(t, out, `"length":4`)
	require.Contains(t, out, `"bytes":`)
	require.Contains(t, out, "vector released")
	require.Contains(t, out, "vector allocation failed")
}

func TestLogger_Helpers(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, nil)).WithLength(3)

	logger.Info("hello")
	require.Contains(t, buf.String(), "length=3")

	// Defaults must not panic.
	NoopLogger().LogCreate(1, 8, false, nil)
	NewTextLogger(slog.LevelError).LogClose(1, 8, nil)
	NewJSONLogger(slog.LevelError).LogCreate(1, 8, true, nil)

	v, err := New(1, WithLogger(nil), WithMetricsCollector(nil))
	require.NoError(t, err)
	require.NoError(t, v.Close())
}
