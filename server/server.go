package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/pathviz/cache"
	"github.com/katalvlaran/pathviz/ctxlog"
	"github.com/katalvlaran/pathviz/search"
)

const (
	runIDKey    = "run_id"
	runIDHeader = "X-Run-ID"

	shutdownTimeout = 5 * time.Second
)

// Controller registers a group of routes.
type Controller interface {
	Register(route *gin.RouterGroup)
}

// Config holds the dependencies of a Server.
type Config struct {
	Store       cache.Store   // result cache; nil disables caching
	MaxCells    int           // largest accepted grid; zero means unlimited
	StreamDelay time.Duration // default per-step delay of the stream endpoint
	Logger      *slog.Logger  // nil uses slog.Default()
}

// Server is the HTTP front end.
type Server struct {
	engine *gin.Engine
	logger *slog.Logger
}

// New builds the router. gin's mode is taken from the process (gin.SetMode).
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Store == nil {
		cfg.Store = noStore{}
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(logger))

	health := &healthController{store: cfg.Store}
	health.Register(engine.Group(""))

	v1 := engine.Group("/v1")
	controllers := []Controller{
		&searchController{
			store:       cfg.Store,
			maxCells:    cfg.MaxCells,
			streamDelay: cfg.StreamDelay,
		},
	}
	for _, c := range controllers {
		c.Register(v1)
	}

	return &Server{engine: engine, logger: logger}
}

// Handler returns the router as an http.Handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening.", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("HTTP server shutting down.")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	}
}

// requestLogger assigns a run id, stores a request-scoped logger in the
// request context, and logs each request once it completes.
func requestLogger(base *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		logger := base.With(runIDKey, id)
		c.Set(runIDKey, id)
		c.Header(runIDHeader, id)
		c.Request = c.Request.WithContext(ctxlog.WithLogger(c.Request.Context(), logger))

		began := time.Now()
		c.Next()

		logger.Info("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(began))
	}
}

// noStore is the Store used when caching is disabled.
type noStore struct{}

func (noStore) Get(context.Context, string) (*search.Result, bool, error) { return nil, false, nil }
func (noStore) Put(context.Context, string, *search.Result) error         { return nil }
