// Command kvreplay replays a YAML workload against a single-threaded store
// and prints the outcome of every operation.
//
//	kvreplay testdata/eviction.yaml
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/dmitrymomot/kvstore/pkg/cache"
	"github.com/dmitrymomot/kvstore/pkg/config"
	"github.com/dmitrymomot/kvstore/pkg/logger"
	"github.com/dmitrymomot/kvstore/pkg/workload"
)

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL"`
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: kvreplay <workload.yaml>")
		os.Exit(2)
	}

	var app appConfig
	config.MustLoad(&app)

	opts := []logger.Option{logger.WithEnvironment(app.Env, "kvreplay")}
	if app.LogLevel != "" {
		opts = append(opts, logger.WithLevel(logger.LevelFromString(app.LogLevel)))
	}
	log := logger.New(opts...)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, log, os.Args[1]); err != nil {
		log.Error("replay failed", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger, path string) error {
	log = log.With(logger.Component("replay"))

	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	w, err := workload.Parse(ctx, content)
	if err != nil {
		return err
	}

	capacity := w.Capacity
	if capacity == 0 {
		var cfg cache.Config
		if err := config.Load(&cfg); err != nil {
			return err
		}
		capacity = cfg.Capacity
	}
	if capacity <= 0 {
		return cache.ErrInvalidCapacity
	}

	store := cache.NewSimpleLRU(capacity, cache.WithEvictCallback(func(key, value []byte) {
		log.DebugContext(ctx, "evicted", logger.Key(key), logger.Bytes(len(key)+len(value)))
	}))
	log.InfoContext(ctx, "replaying workload", slog.String("file", path), logger.Capacity(capacity), slog.Int("ops", len(w.Ops)))

	results, err := workload.Replay(ctx, store, w.Ops)
	for _, r := range results {
		log.DebugContext(ctx, "applied", logger.Op(string(r.Op.Kind)), logger.Key([]byte(r.Op.Key)),
			slog.Bool("ok", r.OK), logger.Error(r.Err))
		fmt.Println(r)
	}
	if err != nil {
		return err
	}

	fmt.Print("keys (most recent first):")
	for _, k := range store.Keys() {
		fmt.Printf(" %q", k)
	}
	fmt.Printf("\nused %d of %d bytes\n", store.Used(), store.Capacity())

	return store.Check()
}
