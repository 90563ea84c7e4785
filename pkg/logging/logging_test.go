package logging

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggerLevels(t *testing.T) {
	tests := []struct {
		verbosity int
		level     zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{9, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		SetupLogger(tt.verbosity)
		assert.Equal(t, tt.level, zerolog.GlobalLevel(), "verbosity %d", tt.verbosity)
	}
}

func TestGetLogger(t *testing.T) {
	logger := GetLogger("workflow.stage")
	// The logger should be usable without panicking
	logger.Debug().Msg("test message")
}

func TestSetupLogFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "nested", "diststage.log")

	file, err := setupLogFile(logPath)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	assert.FileExists(t, logPath)
}
