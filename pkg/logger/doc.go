// Package logger builds log/slog loggers for the kvstore tools.
//
// New applies functional options over production-safe defaults (JSON, info
// level, stderr) and wraps the handler with a ContextHandler that adds
// attributes pulled from the logging context on every call.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(os.Getenv("APP_ENV"), "kvstress"),
//		logger.WithLevel(logger.LevelFromString(os.Getenv("LOG_LEVEL"))),
//		logger.WithContextValue("run_id", runIDKey{}),
//	)
//	log.InfoContext(ctx, "store ready", logger.Capacity(store.Capacity()))
//
// # Attributes
//
// Helpers such as Key, Bytes, Op, Worker and Error keep attribute names
// consistent across tools. Error returns an empty attribute for a nil error,
// which slog drops.
package logger
