package testutil

import (
	"testing"

	"github.com/jack0rich/BigdataServer/internal/pkg/config"
	"github.com/jack0rich/BigdataServer/internal/pkg/logger"
)

// SetupTestLogger returns a quiet console logger for tests.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	return logger.NewConsoleLogger(config.LogLevelError)
}
