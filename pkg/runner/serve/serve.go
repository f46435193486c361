// Package serve runs the board as a local web page.
package serve

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tableflip.dev/weekly/pkg/app"
	"tableflip.dev/weekly/pkg/logging"
	"tableflip.dev/weekly/pkg/render"
	"tableflip.dev/weekly/pkg/router"
	"tableflip.dev/weekly/pkg/server"
	"tableflip.dev/weekly/pkg/store"
)

type Serve struct {
	Addr string
	// Demo seeds sample tasks into an empty week.
	Demo  bool
	Store *app.Store
	// Watcher reloads the store when the stored week changes on disk.
	Watcher store.Watcher
	Log     *zap.Logger

	CORSOrigins []string
	EventRate   float64
	EventBurst  int
}

// Do serves until ctx is cancelled.
func (s *Serve) Do(ctx context.Context) error {
	log := logging.OrNop(s.Log)
	if s.Demo {
		s.Store.SeedDemo()
	}
	if !log.Core().Enabled(zap.DebugLevel) {
		gin.SetMode(gin.ReleaseMode)
	}

	rr, err := render.New("")
	if err != nil {
		return err
	}
	rt := router.New(s.Store, router.WithLogger(log))
	srv, err := server.New(s.Store, rt, rr, log,
		server.WithCORS(s.CORSOrigins...),
		server.WithEventRate(s.EventRate, s.EventBurst),
	)
	if err != nil {
		return err
	}

	if s.Watcher != nil {
		if err := s.Store.Follow(ctx, s.Watcher); err != nil {
			log.Warn("not watching for external changes", zap.Error(err))
		}
	}

	return srv.Run(ctx, s.Addr)
}
