package logger

import (
	"log/slog"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Key records a store key under "key". Keys are logged as strings.
func Key(key []byte) slog.Attr {
	return slog.String("key", string(key))
}

// Bytes records a byte count under "bytes".
func Bytes(n int) slog.Attr {
	return slog.Int("bytes", n)
}

// Capacity records a store capacity in bytes under "capacity".
func Capacity(n int) slog.Attr {
	return slog.Int("capacity", n)
}

// Op records the store operation name under "op".
func Op(name string) slog.Attr {
	return slog.String("op", name)
}

// Worker records a worker index under "worker".
func Worker(id int) slog.Attr {
	return slog.Int("worker", id)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
