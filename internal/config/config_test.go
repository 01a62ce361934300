package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/logger"
)

func TestLoggerConfig_LogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  logger.Level
	}{
		{"debug", logger.DebugLevel},
		{"info", logger.InfoLevel},
		{"warn", logger.WarnLevel},
		{"error", logger.ErrorLevel},
		{"", logger.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, LoggerConfig{Level: tt.level}.LogLevel())
		})
	}
}

func TestLoggerConfig_LogEngine(t *testing.T) {
	assert.Equal(t, logger.Engine("zap"), LoggerConfig{Engine: "zap"}.LogEngine())
}

func TestUsabilityConfig_Enabled(t *testing.T) {
	assert.False(t, UsabilityConfig{Participant: "anonymous"}.Enabled())
	assert.True(t, UsabilityConfig{CSVPath: "results/usability_raw.csv"}.Enabled())
}
