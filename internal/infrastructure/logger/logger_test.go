package logger

import (
	"testing"

	"github.com/propdesk/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("creates logger for each format", func(t *testing.T) {
		for _, format := range []string{"json", "console"} {
			logger := New(config.LogConfig{Level: "info", Format: format, Output: "stdout"})
			require.NotNil(t, logger)
			logger.Info("test")
		}
	})

	t.Run("respects configured level", func(t *testing.T) {
		logger := New(config.LogConfig{Level: "error", Format: "json", Output: "stdout"})

		assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, logger.Core().Enabled(zapcore.ErrorLevel))
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		logger := New(config.LogConfig{Level: "verbose", Format: "json", Output: "stdout"})

		assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	})
}

func TestNewForEnvironment(t *testing.T) {
	t.Run("production disables debug", func(t *testing.T) {
		logger := NewForEnvironment("production")
		assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("development enables debug", func(t *testing.T) {
		logger := NewForEnvironment("development")
		assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	})
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"fatal":   zapcore.FatalLevel,
		"bogus":   zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
	}

	for input, want := range cases {
		assert.Equal(t, want, parseLevel(input), "level %q", input)
	}
}
