package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func Test_Setup_JSON(t *testing.T) {
	restoreDefault(t)

	var buf bytes.Buffer
	l := Setup(&buf, Config{Level: "warn", Format: "json"})

	l.Info("dropped")
	slog.Warn("kept", slog.Int("page", 3))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec), buf.String())
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "WARN", rec["level"])
	assert.EqualValues(t, 3, rec["page"])
	assert.NotContains(t, rec, "source")
}

func Test_Setup_Debug(t *testing.T) {
	restoreDefault(t)

	var buf bytes.Buffer
	l := Setup(&buf, Config{Level: "error", Format: "text", Debug: true})

	l.Debug("scanning")
	assert.Contains(t, buf.String(), "msg=scanning")
	assert.Contains(t, buf.String(), "source=")
}

func Test_ParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLevel("chatty"))
}
