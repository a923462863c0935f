package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kvstore/pkg/cache"
	"github.com/dmitrymomot/kvstore/pkg/logger"
	"github.com/dmitrymomot/kvstore/pkg/workload"
)

func TestRun(t *testing.T) {
	log := logger.New(logger.WithOutput(io.Discard))
	stressCfg := workload.StressConfig{Workers: 2, OpsPerWorker: 500, Keys: 32, MaxValueSize: 16, Seed: 3}

	t.Run("sharded store passes", func(t *testing.T) {
		err := run(context.Background(), log, cache.Config{Capacity: 4096, Shards: 4}, stressCfg)
		require.NoError(t, err)
	})

	t.Run("logs per-worker summary", func(t *testing.T) {
		buf := &bytes.Buffer{}
		debug := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText), logger.WithLevel(slog.LevelDebug))

		require.NoError(t, run(context.Background(), debug, cache.Config{Capacity: 4096, Shards: 2}, stressCfg))
		out := buf.String()
		assert.Contains(t, out, "component=stress")
		assert.Contains(t, out, "worker=0")
		assert.Contains(t, out, "worker=1")
		assert.Contains(t, out, "msg=\"stress run passed\"")
	})

	t.Run("invalid shard count", func(t *testing.T) {
		err := run(context.Background(), log, cache.Config{Capacity: 4096, Shards: 0}, stressCfg)
		assert.ErrorIs(t, err, cache.ErrInvalidShardCount)
	})
}
