package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gimmisn/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_PrettyInfoAndWarn(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, false)

	log.Info("update_stats: start", "date", "2020-05-10")
	log.Warn("sleeping", "seconds", 12)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "update_stats: start date=2020-05-10", lines[0])
	assert.Equal(t, "! sleeping seconds=12", lines[1])
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, true)

	log.Info("relation done", "relation", "budafok")
	log.Error(zerr.New("boom"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "INFO", first["level"])
	assert.Equal(t, "relation done", first["msg"])
	assert.Equal(t, "budafok", first["relation"])

	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "ERROR", second["level"])
	assert.Equal(t, "boom", second["error"])
}

func TestLogger_ErrorNil(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, false)
	log.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_PrettyErrorChain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, false)

	err := zerr.Wrap(errors.New("connection refused"), "query failed")
	log.Error(err)

	assert.Equal(t, "✗ Error: query failed\n\n  Caused by:\n    → connection refused\n", buf.String())
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name:    "caused by",
			entries: []logger.ErrorEntry{{Message: "outer"}, {Message: "inner"}, {Message: "root"}},
			want:    "Error: outer\n\n  Caused by:\n    → inner\n    → root",
		},
		{
			name:    "metadata sorted",
			entries: []logger.ErrorEntry{{Message: "error", Metadata: map[string]any{"zebra": "z", "alpha": "a"}}},
			want:    "Error: error\n       alpha: a\n       zebra: z",
		},
		{
			name:    "multiline cause",
			entries: []logger.ErrorEntry{{Message: "main"}, {Message: "line1\nline2", Metadata: map[string]any{"k": 1}}},
			want:    "Error: main\n\n  Caused by:\n    → line1\n      line2\n      k: 1",
		},
		{
			name: "empty",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}

func TestCollectAndFormat(t *testing.T) {
	inner := zerr.With(zerr.New("database timeout"), "timeout_ms", 5000)
	outer := zerr.With(zerr.Wrap(inner, "failed to read mtime"), "key", "streets/budafok")

	got := logger.FormatErrorEntries(logger.CollectErrorEntries(outer))
	want := "Error: failed to read mtime\n" +
		"       key: streets/budafok\n\n" +
		"  Caused by:\n" +
		"    → database timeout\n" +
		"      timeout_ms: 5000"
	assert.Equal(t, want, got)
}
