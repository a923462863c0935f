package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kvstore/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("creates JSON logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		require.NotNil(t, log)

		log.Info("hello")
		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText))

		log.Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("level filters records", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))

		log.Info("dropped")
		assert.Empty(t, buf.String())
	})

	t.Run("static attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(logger.Component("cache")))

		log.Info("msg")
		assert.Equal(t, "cache", decode(t, buf)["component"])
	})

	t.Run("context value", func(t *testing.T) {
		type runKey struct{}
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("run_id", runKey{}))

		ctx := context.WithValue(context.Background(), runKey{}, "r-1")
		log.InfoContext(ctx, "msg")
		assert.Equal(t, "r-1", decode(t, buf)["run_id"])
	})

	t.Run("context value ignores empty name", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("", "k"))

		log.InfoContext(context.Background(), "msg")
		assert.Len(t, decode(t, buf), 3) // time, level, msg
	})
}

func TestWithEnvironment(t *testing.T) {
	t.Run("development", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("", "kvreplay"), logger.WithOutput(buf))

		log.Debug("msg")
		out := buf.String()
		assert.Contains(t, out, "level=DEBUG")
		assert.Contains(t, out, "service=kvreplay")
		assert.Contains(t, out, "env=development")
	})

	t.Run("production", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("prod", "kvstress"), logger.WithOutput(buf))

		log.Debug("dropped")
		assert.Empty(t, buf.String())

		log.Info("msg")
		entry := decode(t, buf)
		assert.Equal(t, "kvstress", entry["service"])
		assert.Equal(t, logger.EnvProduction, entry["env"])
	})

	t.Run("explicit level wins when applied later", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithEnvironment(logger.EnvStaging, "svc"),
			logger.WithLevel(slog.LevelDebug),
			logger.WithOutput(buf),
		)

		log.Debug("msg")
		assert.Equal(t, logger.EnvStaging, decode(t, buf)["env"])
	})
}

func TestLevelFromString(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logger.LevelFromString("debug"))
	assert.Equal(t, slog.LevelWarn, logger.LevelFromString("WARN"))
	assert.Equal(t, slog.LevelError, logger.LevelFromString(" error "))
	assert.Equal(t, slog.LevelInfo, logger.LevelFromString(""))
	assert.Equal(t, slog.LevelInfo, logger.LevelFromString("loud"))
}

func TestSetAsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := &bytes.Buffer{}
	logger.SetAsDefault(logger.New(logger.WithOutput(buf)))
	slog.Info("default")
	assert.Equal(t, "default", decode(t, buf)["msg"])
}

func TestWithFormatPanics(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}
