// Package web serves the chartlab browser UI: the quantum chemistry demos
// and the NBA data explorer.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/chartlab/internal/nba"
	"github.com/louisbranch/chartlab/internal/platform/timeouts"
	"github.com/louisbranch/chartlab/internal/random"
	"github.com/louisbranch/chartlab/internal/services/web/app"
	module "github.com/louisbranch/chartlab/internal/services/web/module"
	"github.com/louisbranch/chartlab/internal/services/web/modules"
	"github.com/louisbranch/chartlab/internal/services/web/platform/httpx"
	"github.com/louisbranch/chartlab/internal/services/web/platform/i18nhttp"
	"github.com/louisbranch/chartlab/internal/services/web/platform/observability"
	"github.com/louisbranch/chartlab/internal/services/web/routepath"
	"github.com/louisbranch/chartlab/internal/services/web/static"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr  string
	Dataset   *nba.Dataset
	Title     string
	GitHubURL string
	// NewSeed defaults to random.NewSeed.
	NewSeed module.NewSeed
	// Logger receives the request log; nil uses the standard logger.
	Logger *log.Logger
}

// Server hosts the chartlab HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler composes every module behind the shared middleware.
func NewHandler(cfg Config) (http.Handler, error) {
	newSeed := cfg.NewSeed
	if newSeed == nil {
		newSeed = random.NewSeed
	}
	deps := module.Dependencies{
		Title:     strings.TrimSpace(cfg.Title),
		GitHubURL: strings.TrimSpace(cfg.GitHubURL),
		Dataset:   cfg.Dataset,
		NewSeed:   newSeed,
	}

	root := http.NewServeMux()
	root.HandleFunc(http.MethodGet+" "+routepath.Health, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	root.Handle(http.MethodGet+" "+routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServerFS(static.FS)))
	if err := app.Compose(root, modules.Default(deps)); err != nil {
		return nil, fmt.Errorf("compose web modules: %w", err)
	}

	return httpx.Chain(root,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestLogger(cfg.Logger),
		i18nhttp.Middleware(),
	), nil
}

// NewServer builds the HTTP server.
func NewServer(cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, err
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close stops the server immediately.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	if err := s.httpServer.Close(); err != nil {
		log.Printf("close http server: %v", err)
	}
}
