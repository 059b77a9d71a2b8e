package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"", LevelInfo, false},
		{"INFO", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInitWriterFiltersAndCaptures(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(LevelInfo, &buf)
	t.Cleanup(func() { Log = nil; recent = nil })

	Debug("hidden")
	Info("opened", "path", "a.txt")
	Warn("bad line", "line", 3)
	Error("save failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "opened", rec["msg"])
	assert.Equal(t, "a.txt", rec["path"])

	warn, errs := Counts()
	assert.Equal(t, 1, warn)
	assert.Equal(t, 1, errs)

	entries := Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "bad line", entries[0].Message)
	assert.Equal(t, slog.LevelError, entries[1].Level)
	assert.Contains(t, entries[1].Format(), "ERROR save failed")
	assert.False(t, IsDebugEnabled())
}

func TestRingWrapsAround(t *testing.T) {
	r := newRing(3)
	for i := 0; i < 5; i++ {
		r.add(Entry{Level: slog.LevelWarn, Message: fmt.Sprint(i)})
	}

	got := r.snapshot()
	require.Len(t, got, 3)
	assert.Equal(t, "2", got[0].Message)
	assert.Equal(t, "4", got[2].Message)

	warn, _ := r.counts()
	assert.Equal(t, 5, warn)
}
