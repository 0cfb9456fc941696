package logs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sing-config/sing-config/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want zapcore.Level
	}{
		{"trace", zap.DebugLevel},
		{"debug", zap.DebugLevel},
		{"INFO", zap.InfoLevel},
		{"warn", zap.WarnLevel},
		{"error", zap.ErrorLevel},
		{"", zap.InfoLevel},
		{"bogus", zap.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.name))
		})
	}
}

func TestSetupLoggerWritesFile(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.LogConfig{
		Level:      LogLevelDebug,
		EnableFile: true,
		Filename:   "test.log",
		LogDir:     dir,
		MaxSize:    1,
		JSONFormat: true,
	}

	logger, err := SetupLogger(cfg)
	require.NoError(t, err)

	logger.Debug("menu installed", zap.String("locale", "en"))
	_ = logger.Sync()

	data, err := os.ReadFile(filepath.Join(dir, "test.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"menu installed"`)
	assert.Contains(t, string(data), `"locale":"en"`)
}

func TestSetupLoggerRespectsLevel(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.LogConfig{
		Level:      LogLevelWarn,
		EnableFile: true,
		Filename:   "warn.log",
		LogDir:     dir,
	}

	logger, err := SetupLogger(cfg)
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept")
	_ = logger.Sync()

	data, err := os.ReadFile(filepath.Join(dir, "warn.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
	assert.Contains(t, string(data), "kept")
}

func TestSetupLoggerNoOutputs(t *testing.T) {
	_, err := SetupLogger(&config.LogConfig{Level: LogLevelInfo})
	require.Error(t, err)
}

func TestSetupLoggerDefaults(t *testing.T) {
	logger, err := SetupLogger(nil)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.InfoLevel))
	assert.False(t, logger.Core().Enabled(zap.DebugLevel))
}

func TestSetupCommandLogger(t *testing.T) {
	base := &config.LogConfig{Level: LogLevelDebug, EnableConsole: true}

	short, err := SetupCommandLogger(false, base, "")
	require.NoError(t, err)
	assert.False(t, short.Core().Enabled(zap.InfoLevel), "one-shot commands default to warn")

	long, err := SetupCommandLogger(true, base, "")
	require.NoError(t, err)
	assert.True(t, long.Core().Enabled(zap.DebugLevel), "long-running commands keep the configured level")

	explicit, err := SetupCommandLogger(false, base, LogLevelError)
	require.NoError(t, err)
	assert.False(t, explicit.Core().Enabled(zap.WarnLevel))

	assert.Equal(t, LogLevelDebug, base.Level, "base config is not mutated")
}
