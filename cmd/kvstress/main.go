// Command kvstress runs random concurrent operations against the configured
// store and verifies its invariants afterwards.
//
// Store shape comes from CACHE_CAPACITY and CACHE_SHARDS, the run from
// STRESS_WORKERS, STRESS_OPS, STRESS_KEYS, STRESS_MAX_VALUE and STRESS_SEED.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/kvstore/pkg/cache"
	"github.com/dmitrymomot/kvstore/pkg/config"
	"github.com/dmitrymomot/kvstore/pkg/logger"
	"github.com/dmitrymomot/kvstore/pkg/workload"
)

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

type runIDKey struct{}

func main() {
	var (
		app       appConfig
		cacheCfg  cache.Config
		stressCfg workload.StressConfig
	)
	config.MustLoad(&app)
	config.MustLoad(&cacheCfg)
	config.MustLoad(&stressCfg)

	log := logger.New(
		logger.WithEnvironment(app.Env, "kvstress"),
		logger.WithLevel(logger.LevelFromString(app.LogLevel)),
		logger.WithContextValue("run_id", runIDKey{}),
	)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = context.WithValue(ctx, runIDKey{}, uuid.NewString())

	if err := run(ctx, log, cacheCfg, stressCfg); err != nil {
		log.ErrorContext(ctx, "stress run failed", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger, cacheCfg cache.Config, stressCfg workload.StressConfig) error {
	log = log.With(logger.Component("stress"))

	store, err := cache.NewFromConfig(cacheCfg)
	if err != nil {
		return err
	}
	log.InfoContext(ctx, "starting stress run",
		logger.Capacity(store.Capacity()),
		slog.Int("shards", store.Shards()),
		slog.Int("workers", stressCfg.Workers),
		slog.Int("ops_per_worker", stressCfg.OpsPerWorker),
	)

	start := time.Now()
	report, err := workload.Stress(ctx, store, stressCfg)
	if err != nil {
		return err
	}

	for i, wr := range report.Workers {
		log.DebugContext(ctx, "worker finished", logger.Worker(i),
			slog.Int("accepted", wr.Accepted),
			slog.Int("rejected", wr.Rejected),
		)
	}

	attrs := make([]slog.Attr, 0, len(workload.Kinds))
	for _, k := range workload.Kinds {
		attrs = append(attrs, logger.Group(string(k),
			slog.Int("accepted", report.Accepted[k]),
			slog.Int("rejected", report.Rejected[k]),
		))
	}
	log.LogAttrs(ctx, slog.LevelInfo, "stress run passed",
		append(attrs,
			slog.Int("total", report.Total()),
			slog.Int("entries", store.Len()),
			logger.Bytes(store.Used()),
			logger.Duration(time.Since(start)),
		)...,
	)
	return nil
}
