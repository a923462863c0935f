// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - the default .env file in the working directory is read once, if present;
//   - extra .env files can be read explicitly with LoadEnv;
//   - any struct annotated with `env` tags is parsed with Load;
//   - each configuration type is parsed once and cached for the process.
//
// # Usage
//
//	type StressConfig struct {
//		Workers int `env:"STRESS_WORKERS" envDefault:"8"`
//	}
//
//	var cfg StressConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// MustLoad panics instead of returning an error, for configuration a tool
// cannot start without. ResetCache clears parsed values between tests.
//
// # Error Handling
//
//   - ErrParsingConfig: env vars could not be parsed into the struct
//   - ErrLoadingEnvFile: a file passed to LoadEnv could not be read
//   - ErrNilPointer: nil pointer passed to Load
package config
