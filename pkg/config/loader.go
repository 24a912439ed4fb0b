package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu     sync.RWMutex
	loaded = make(map[string]any)

	defaultEnvLoaded sync.Once
)

// Load populates the provided configuration struct from environment
// variables. The first call in the process also loads the default .env file,
// if one exists. Each configuration type is parsed at most once; subsequent
// calls for the same type are served from the cache, so independent
// components can load their own config without re-reading the environment.
//
// Example:
//
//	type ServiceConfig struct {
//		Addr       string `env:"HTTP_ADDR" envDefault:":8080"`
//		NamePolicy string `env:"NAME_POLICY" envDefault:"latin-thai"`
//	}
//
//	var cfg ServiceConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional; ignore a missing one.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	typeName := typeNameOf[T]()

	mu.RLock()
	cached, ok := loaded[typeName]
	mu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	// Another goroutine may have parsed the type while we waited for the lock.
	if cached, ok := loaded[typeName]; ok {
		*v = cached.(T)
		return nil
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	// Store a copy so later mutations by the caller do not leak into the cache.
	loaded[typeName] = *v
	return nil
}

// MustLoad works like Load but panics if configuration loading fails. Use it
// for configuration the application cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// typeNameOf returns a string identifier for the generic type T.
func typeNameOf[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		// Handle interface types
		return fmt.Sprintf("%T", *new(T))
	}
	return t.String()
}
