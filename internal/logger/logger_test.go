package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withGlobal(t *testing.T, buf *bytes.Buffer, level string) {
	t.Helper()
	prev := globalLogger
	globalLogger = newLogger(buf, "", level)
	t.Cleanup(func() { globalLogger = prev })
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	withGlobal(t, &buf, "info")
	ctx := context.Background()

	DebugLog(ctx, "hidden %d", 1)
	assert.Empty(t, buf.String(), "debug is below the info level")

	InfoLog(ctx, "running %s", "distinct-jobs")
	entry := lastEntry(t, &buf)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "running distinct-jobs", entry["message"])

	WarnLog(ctx, "absent")
	assert.Equal(t, "warn", lastEntry(t, &buf)["level"])
}

func TestDefaultLoggerIsInfoLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, defaultLogger().GetLevel())
}

func TestInvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	withGlobal(t, &buf, "chatty")

	DebugLog(context.Background(), "hidden")
	InfoLog(context.Background(), "shown")
	assert.Equal(t, "shown", lastEntry(t, &buf)["message"])
}

func TestErrorLogAttachesError(t *testing.T) {
	var buf bytes.Buffer
	withGlobal(t, &buf, "debug")

	ErrorLog(context.Background(), "query failed: %v", errors.New("boom"))
	entry := lastEntry(t, &buf)
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "query failed: boom", entry["message"])
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	withGlobal(t, &buf, "debug")

	ctx := WithLogger(context.Background(), map[string]interface{}{"query": "salary-stats"})
	DebugLog(ctx, "sql")
	assert.Equal(t, "salary-stats", lastEntry(t, &buf)["query"])
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queries.log")
	var buf bytes.Buffer
	l := newLogger(&buf, path, "info")
	l.Info().Msg("to both")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to both")
	assert.Contains(t, buf.String(), "to both")
}
