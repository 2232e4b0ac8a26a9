package classcomplete

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  slog.Level
	}{
		{LevelDebug, slog.LevelDebug},
		{LevelInfo, slog.LevelInfo},
		{LevelWarn, slog.LevelWarn},
		{LevelError, slog.LevelError},
		{"DEBUG", slog.LevelDebug},
		{"verbose", slog.LevelWarn},
		{"", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.level))
		})
	}
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LevelInfo, Format: FormatJSON, Output: &buf})

	logger.Debug("hidden")
	logger.Info("stylesheet parsed", "path", "app.css")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "stylesheet parsed", record["msg"])
	assert.Equal(t, "app.css", record["path"])
}

func TestNewLogger_TextDefaultsToWarn(t *testing.T) {
	var buf bytes.Buffer
	config := DefaultLoggerConfig()
	config.Output = &buf
	logger := NewLogger(config)

	logger.Info("hidden")
	logger.Warn("stylesheet parsed partially")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "stylesheet parsed partially")
}
