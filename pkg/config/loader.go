package config

import (
	"errors"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cached holds the outcome of parsing one configuration type.
type cached struct {
	once  sync.Once
	value any
	err   error
}

var (
	registry sync.Map // reflect.Type -> *cached

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v according to its `env` tags.
// The default .env file is read once before the first parse if it exists.
// Each configuration type is parsed only once per process; later calls
// receive a copy of the cached value.
//
// Example:
//
//	var cfg cache.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvLoaded.Do(func() {
		// A missing .env file is fine
		_ = godotenv.Load()
	})

	entry, _ := registry.LoadOrStore(reflect.TypeFor[T](), &cached{})
	c := entry.(*cached)
	c.once.Do(func() {
		var parsed T
		if err := env.Parse(&parsed); err != nil {
			c.err = errors.Join(ErrParsingConfig, err)
			return
		}
		c.value = parsed
	})
	if c.err != nil {
		return c.err
	}

	*v = c.value.(T)
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(err)
	}
}

// LoadEnv reads the given .env files into the process environment without
// overriding variables that are already set. Call it before Load.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// ResetCache forgets every parsed configuration. Intended for tests.
func ResetCache() {
	registry.Range(func(key, _ any) bool {
		registry.Delete(key)
		return true
	})
}
