// Package server serves the board over HTTP.
//
// The page is rendered on the server; a small script forwards DOM events to
// POST /events, where the router applies them, and swaps in the re-rendered
// task lists it gets back.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tableflip.dev/weekly/pkg/app"
	"tableflip.dev/weekly/pkg/logging"
	"tableflip.dev/weekly/pkg/render"
	"tableflip.dev/weekly/pkg/router"
)

//go:embed static
var staticFS embed.FS

const shutdownTimeout = 5 * time.Second

type Server struct {
	store    *app.Store
	router   *router.Router
	renderer *render.Renderer
	log      *zap.Logger
	engine   *gin.Engine

	origins    []string
	eventRate  float64
	eventBurst int
	limiter    *limiterStore
}

// Option configures a Server.
type Option func(*Server)

// WithCORS lets pages served from origins call the JSON endpoints.
func WithCORS(origins ...string) Option {
	return func(s *Server) { s.origins = origins }
}

// WithEventRate limits POST /events per client address. Only events that
// start an action are counted; the rest of a drag is free once its dragstart
// got through. A rate of zero or less means no limit.
func WithEventRate(perSecond float64, burst int) Option {
	return func(s *Server) {
		s.eventRate = perSecond
		s.eventBurst = burst
	}
}

// New wires the HTTP routes. The router should be built on the same store.
func New(store *app.Store, rt *router.Router, rr *render.Renderer, log *zap.Logger, opts ...Option) (*Server, error) {
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("server: static assets: %w", err)
	}
	s := &Server{
		store:    store,
		router:   rt,
		renderer: rr,
		log:      logging.OrNop(log),
	}
	for _, o := range opts {
		o(s)
	}

	r := gin.New()
	r.Use(recovery(s.log))
	r.Use(accessLog(s.log))
	if len(s.origins) > 0 {
		r.Use(allowOrigins(s.origins))
	}

	if s.eventRate > 0 {
		s.limiter = newLimiterStore(s.eventRate, s.eventBurst)
	}

	r.GET("/", s.page)
	r.GET("/days/:day", s.day)
	r.POST("/events", s.events)
	r.GET("/api/week", s.week)
	r.GET("/healthz", s.healthz)
	r.StaticFS("/static", http.FS(static))

	s.engine = r
	return s, nil
}

// Handler exposes the gin engine.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("starting server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("server: listen on %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("server is shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	s.log.Info("server stopped")
	return nil
}
