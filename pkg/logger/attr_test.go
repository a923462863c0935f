package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kvstore/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("store", logger.Bytes(9), logger.Capacity(10))
	require.Equal(t, "store", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "bytes", g[0].Key)
	assert.Equal(t, "capacity", g[1].Key)
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestStoreAttrs(t *testing.T) {
	for _, tc := range []struct {
		attr slog.Attr
		key  string
		want any
	}{
		{logger.Key([]byte("user:1")), "key", "user:1"},
		{logger.Bytes(42), "bytes", int64(42)},
		{logger.Capacity(1024), "capacity", int64(1024)},
		{logger.Op("put_if_absent"), "op", "put_if_absent"},
		{logger.Worker(3), "worker", int64(3)},
		{logger.Component("stress"), "component", "stress"},
		{logger.Duration(1500 * time.Millisecond), "duration", 1500 * time.Millisecond},
	} {
		assert.Equal(t, tc.key, tc.attr.Key)
		assert.Equal(t, tc.want, tc.attr.Value.Any())
	}
}
