// Package config provides a type-safe, generic and cached way to load
// application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11` to
// deliver a small API that:
//
//   - Falls back to the default `.env` file in the current working directory.
//   - Parses the environment into any Go struct using field tags.
//   - Caches each successfully loaded configuration type so it is only parsed
//     once for the lifetime of the process.
//   - Exposes MustLoad for configuration the process cannot start without.
//
// # Usage
//
// Describe the configuration as a struct with `env` tags, then load it:
//
//	type PGConfig struct {
//	    ConnectionString string `env:"PG_CONN_URL,required"`
//	    MaxOpenConns     int    `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
//	}
//
//	var cfg PGConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// Subsequent calls to `config.Load(&cfg)` are served from the in-memory cache
// without re-parsing.
//
// # Error Handling
//
// The package defines sentinel errors comparable with `errors.Is`:
//
//   - `ErrParsingConfig` – failed to parse env vars into the struct.
//   - `ErrNilPointer`    – nil pointer passed to `Load`/`MustLoad`.
package config
