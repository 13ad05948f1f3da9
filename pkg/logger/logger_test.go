package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"

	"github.com/smartcampus/timetable/pkg/config"
)

func TestNew(t *testing.T) {
	t.Run("development console logger", func(t *testing.T) {
		// Arrange
		cfg := &config.Config{
			Env: config.EnvDevelopment,
			Log: config.LogConfig{Level: "debug", Format: "console"},
		}

		// Act
		log, err := New(cfg)

		// Assert
		assert.Nil(t, err)
		assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("production json logger", func(t *testing.T) {
		// Arrange
		cfg := &config.Config{
			Env: config.EnvProduction,
			Log: config.LogConfig{Level: "warn", Format: "json"},
		}

		// Act
		log, err := New(cfg)

		// Assert
		assert.Nil(t, err)
		assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("invalid level falls back to info", func(t *testing.T) {
		// Arrange
		cfg := &config.Config{
			Env: config.EnvDevelopment,
			Log: config.LogConfig{Level: "loud", Format: "console"},
		}

		// Act
		log, err := New(cfg)

		// Assert
		assert.Nil(t, err)
		assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	})
}
