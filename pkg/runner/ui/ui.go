package ui

import (
	"context"

	"go.uber.org/zap"

	"tableflip.dev/weekly/pkg/app"
	"tableflip.dev/weekly/pkg/router"
	"tableflip.dev/weekly/pkg/store"
	"tableflip.dev/weekly/pkg/tui"
)

type UI struct {
	Store   *app.Store
	Watcher store.Watcher
	Key     string
	Log     *zap.Logger
}

func (d *UI) Do(ctx context.Context) error {
	rt := router.New(d.Store, router.WithLogger(d.Log))
	return tui.Run(ctx, tui.Options{
		Store:   d.Store,
		Router:  rt,
		Watcher: d.Watcher,
		Key:     d.Key,
		Logger:  d.Log,
	})
}
