//go:build unit
// +build unit

package logger

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/jack0rich/BigdataServer/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name          string
		settings      *config.LoggerSettings
		expectedError bool
	}{
		{
			name: "console logger",
			settings: &config.LoggerSettings{
				LogLevel: config.LogLevelInfo,
				LogType:  config.LogTypeConsole,
			},
			expectedError: false,
		},
		{
			name: "file logger",
			settings: &config.LoggerSettings{
				LogLevel:   config.LogLevelDebug,
				LogType:    config.LogTypeFile,
				FilePath:   filepath.Join(t.TempDir(), "gateway.log"),
				MaxSize:    5,
				MaxBackups: 2,
				MaxAge:     7,
			},
			expectedError: false,
		},
		{
			name: "invalid settings rejected",
			settings: &config.LoggerSettings{
				LogLevel: "verbose",
				LogType:  config.LogTypeConsole,
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := newLogger(tt.settings)

			if tt.expectedError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, log)
			log.Info("logger initialized")
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel(config.LogLevelDebug))
	assert.Equal(t, slog.LevelInfo, parseLevel(config.LogLevelInfo))
	assert.Equal(t, slog.LevelWarn, parseLevel(config.LogLevelWarning))
	assert.Equal(t, slog.LevelError, parseLevel(config.LogLevelError))
	assert.Equal(t, slog.LevelError, parseLevel(config.LogLevelCritical))
	assert.Equal(t, slog.LevelInfo, parseLevel("unknown"))
}

func TestFormatArgs(t *testing.T) {
	assert.Equal(t, "", formatArgs())
	assert.Equal(t, "dag trigger failed: timeout", formatArgs("dag trigger failed: ", "timeout"))
}
