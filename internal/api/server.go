// Package api serves quizzes over HTTP/JSON.
package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/abhisek/mathdrill/internal/config"
	"github.com/abhisek/mathdrill/internal/explain"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/store"
)

// Options configures a Server.
type Options struct {
	Engine    *problemgen.Engine
	EventRepo store.EventRepo // optional
	Explainer *explain.Service
	Practice  config.Practice

	AllowedOrigins []string
	SessionTTL     time.Duration
}

// Server holds the HTTP handlers and the live quiz registry.
type Server struct {
	engine    *problemgen.Engine
	repo      store.EventRepo
	explainer *explain.Service
	practice  config.Practice
	origins   []string
	sessions  *registry
}

// New creates a Server. A nil Engine gets a randomly seeded one.
func New(opts Options) *Server {
	if opts.Engine == nil {
		opts.Engine = problemgen.New(nil)
	}
	if opts.Explainer == nil {
		opts.Explainer = explain.NewService(nil, explain.DefaultConfig())
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 12 * time.Hour
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}
	return &Server{
		engine:    opts.Engine,
		repo:      opts.EventRepo,
		explainer: opts.Explainer,
		practice:  opts.Practice,
		origins:   opts.AllowedOrigins,
		sessions:  newRegistry(opts.SessionTTL),
	}
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/questions", s.generateQuestions)
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.createSession)
			r.Route("/{sessionID}", func(r chi.Router) {
				r.Get("/", s.getSession)
				r.Post("/answer", s.answer)
				r.Get("/summary", s.summary)
			})
		})
	})
	return r
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("mathdrill API listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
