package jwtclaims

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	logger := NewZapLogger(zap.New(core).Sugar())

	logger.Debug("debug message", "code", "x")
	assert.Equal(t, 0, recorded.Len(), "Debug message should not be recorded at Info level")

	logger.Info("info message", "code", "token_expired")
	logger.Warn("warn message")
	logger.Error("error message", "code", "invalid_issuer")

	entries := recorded.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "info message", entries[0].Message)
	assert.Equal(t, "token_expired", entries[0].ContextMap()["code"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "invalid_issuer", entries[2].ContextMap()["code"])
}

func TestZerologLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(zerolog.New(&buf))

	logger.Debug("debug message", "code", "a")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message", "code", "missing_expiration")

	logOutput := buf.String()
	assert.Contains(t, logOutput, `"message":"debug message"`)
	assert.Contains(t, logOutput, `"message":"info message"`)
	assert.Contains(t, logOutput, `"level":"warn"`)
	assert.Contains(t, logOutput, `"code":"missing_expiration"`)
}

func TestLogrusLogger(t *testing.T) {
	var buf bytes.Buffer
	logrusLogger := logrus.New()
	logrusLogger.Out = &buf
	logrusLogger.Level = logrus.InfoLevel
	logrusLogger.Formatter = &logrus.JSONFormatter{}

	logger := NewLogrusLogger(logrusLogger)

	logger.Debug("debug message")
	assert.Empty(t, buf.String(), "Debug message should not be logged at Info level")

	logger.Info("info message", "code", "token_expired")
	logger.Warn("warn message")
	logger.Error("error message", "duration", 3)

	logOutput := buf.String()
	assert.Contains(t, logOutput, `"msg":"info message"`)
	assert.Contains(t, logOutput, `"code":"token_expired"`)
	assert.Contains(t, logOutput, `"level":"warning"`)
	assert.Contains(t, logOutput, `"duration":3`)
}

func TestLogrusFields(t *testing.T) {
	assert.Equal(t, logrus.Fields{}, logrusFields(nil))
	assert.Equal(t, logrus.Fields{"a": 1, "b": "two"}, logrusFields([]any{"a", 1, "b", "two"}))
	assert.Equal(t, logrus.Fields{"7": true, "!BADKEY": "dangling"}, logrusFields([]any{7, true, "dangling"}))
}
