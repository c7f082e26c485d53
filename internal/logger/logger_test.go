package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"invalid level", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level, "text")
			assert.NotNil(t, log)
		})
	}
}

func TestLoggerLevels(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info", "text")

	log.Debug(ctx, "debug message")
	log.Info(ctx, "info message")
	log.Warn(ctx, "warn message")
	log.Error(ctx, "error message")
	log.Info(ctx, "formatted message: %s %d", "test", 123)

	out := buf.String()
	assert.NotContains(t, out, "debug message")
	assert.Contains(t, out, "info message")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error message")
	assert.Contains(t, out, "formatted message: test 123")
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		want        []string
		dropped     []string
	}{
		{"debug logs everything", "debug", []string{"debug-msg", "info-msg", "warn-msg", "error-msg"}, nil},
		{"info drops debug", "info", []string{"info-msg", "warn-msg", "error-msg"}, []string{"debug-msg"}},
		{"warn drops info", "warn", []string{"warn-msg", "error-msg"}, []string{"debug-msg", "info-msg"}},
		{"error only", "error", []string{"error-msg"}, []string{"debug-msg", "info-msg", "warn-msg"}},
		{"invalid level defaults to info", "bogus", []string{"info-msg", "warn-msg", "error-msg"}, []string{"debug-msg"}},
		{"empty level defaults to info", "", []string{"info-msg", "warn-msg", "error-msg"}, []string{"debug-msg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			var buf bytes.Buffer
			log := NewWithWriter(&buf, tt.configLevel, "text")

			log.Debug(ctx, "debug-msg")
			log.Info(ctx, "info-msg")
			log.Warn(ctx, "warn-msg")
			log.Error(ctx, "error-msg")

			out := buf.String()
			for _, msg := range tt.want {
				assert.Contains(t, out, msg)
			}
			for _, msg := range tt.dropped {
				assert.NotContains(t, out, msg)
			}
		})
	}
}

func TestWithKeepsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn", "text").With("run_id", "abc")

	log.Info(context.Background(), "info-msg")
	log.Warn(context.Background(), "warn-msg")

	assert.NotContains(t, buf.String(), "info-msg")
	assert.Contains(t, buf.String(), "warn-msg")
}

func TestWithAddsField(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info", "json").With("run_id", "abc")

	log.Info(context.Background(), "hello %s", "world")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "abc", entry["run_id"])
	assert.Equal(t, "hello world", entry["message"])
	assert.Equal(t, "info", entry["level"])
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Error(context.Background(), "dropped")
	assert.NotNil(t, log.With("k", "v"))
}
