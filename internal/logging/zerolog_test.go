package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		m := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &m), line)
		out = append(out, m)
	}
	return out
}

func TestZerologLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "test", "debug", false)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", "two")
	log.Warn(ctx, "wrn", "c", true)
	log.Error(ctx, "err", "error", errors.New("boom"))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 4)

	tests := []struct {
		level string
		msg   string
		key   string
		val   any
	}{
		{"debug", "dbg", "a", float64(1)},
		{"info", "inf", "b", "two"},
		{"warn", "wrn", "c", true},
		{"error", "err", "error", "boom"},
	}

	for i, tc := range tests {
		assert.Equal(t, tc.level, lines[i]["level"])
		assert.Equal(t, tc.msg, lines[i]["message"])
		assert.Equal(t, tc.val, lines[i][tc.key])
		assert.Equal(t, "test", lines[i]["service"])
	}
}

func TestZerologLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "test", "warn", false)

	log.Info(context.Background(), "hidden")
	log.Warn(context.Background(), "shown")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "shown", lines[0]["message"])
}

func TestZerologLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "test", "loud", false)

	log.Debug(context.Background(), "hidden")
	log.Info(context.Background(), "shown")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
}

func TestZerologLogger_With(t *testing.T) {
	var buf bytes.Buffer
	base := New(&buf, "test", "info", false)

	child := base.With("module", "session", "identity", "a@x")
	child.Info(context.Background(), "hello", "k", "v")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "session", lines[0]["module"])
	assert.Equal(t, "a@x", lines[0]["identity"])
	assert.Equal(t, "v", lines[0]["k"])

	buf.Reset()
	base.Info(context.Background(), "parent")
	lines = decodeLines(t, &buf)
	require.Len(t, lines, 1)
	_, ok := lines[0]["module"]
	assert.False(t, ok, "child fields must not leak into the parent")
}

func TestNop(t *testing.T) {
	log := Nop()
	assert.NotPanics(t, func() {
		log.Info(context.Background(), "x", "a", 1)
		log.With("b", 2).Error(context.Background(), "y")
	})
}
