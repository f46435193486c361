// Package store provides the single key storage backends the week is
// persisted to.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by Read when nothing is stored under the key yet.
var ErrNotFound = errors.New("store: key not found")

// Backend is a whole-value key/value store. Writes replace the stored value.
type Backend interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	Erase(key string) error
}

// Watcher is implemented by backends that can report changes made by other
// processes.
type Watcher interface {
	Watch(ctx context.Context, key string) (<-chan Event, error)
}

const (
	BackendDisk   = "disk"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Open builds the backend selected by cfg. A nil cfg loads the configuration
// from file and environment.
func Open(cfg *Config) (Backend, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	if err := validKey(cfg.Key); err != nil {
		return nil, err
	}

	switch strings.ToLower(cfg.Backend) {
	case "", BackendDisk:
		return NewDisk(cfg.Path)
	case BackendMemory:
		return NewMemory(), nil
	case BackendRedis:
		return NewRedis(cfg.Redis)
	default:
		return nil, fmt.Errorf("store: unknown backend %q", cfg.Backend)
	}
}

func validKey(key string) error {
	switch {
	case strings.TrimSpace(key) == "":
		return errors.New("store: storage key required")
	case strings.ContainsAny(key, `/\`), key == ".", key == "..":
		return fmt.Errorf("store: invalid storage key %q", key)
	}
	return nil
}
