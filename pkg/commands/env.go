package commands

import (
	"io"

	"go.uber.org/zap"

	"tableflip.dev/weekly/pkg/app"
	"tableflip.dev/weekly/pkg/logging"
	"tableflip.dev/weekly/pkg/store"
)

// env is what every verb needs: the configuration, a logger and the loaded
// task store.
type env struct {
	cfg     *store.Config
	log     *zap.Logger
	backend store.Backend
	store   *app.Store
}

// openEnv loads the configuration and opens the task store. quiet drops logs
// unless a log file is configured, for verbs that own the terminal.
func openEnv(quiet bool) (*env, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}

	log := zap.NewNop()
	if !quiet || cfg.LogFile != "" {
		if log, err = logging.New(cfg.LogLevel, cfg.LogFile); err != nil {
			return nil, err
		}
	}

	backend, err := store.Open(cfg)
	if err != nil {
		_ = log.Sync()
		return nil, err
	}
	s := app.Open(backend, app.WithLogger(log), app.WithKey(cfg.Key))

	return &env{cfg: cfg, log: log, backend: backend, store: s}, nil
}

// watcher is the backend's change feed, nil if it has none.
func (e *env) watcher() store.Watcher {
	if w, ok := e.backend.(store.Watcher); ok {
		return w
	}
	return nil
}

func (e *env) close() {
	if c, ok := e.backend.(io.Closer); ok {
		if err := c.Close(); err != nil {
			e.log.Warn("error closing store", zap.Error(err))
		}
	}
	_ = e.log.Sync()
}
