// Package server sets up the HTTP server, router, and all route definitions.
//
// This package is the "wiring" layer — the composition root:
//
//	config → repository.Store (sqlite or postgres)
//	       → AdviceService / ConfessionService
//	       → AdviceHandler / ConfessionHandler / HealthHandler
//	       → chi routes + middleware
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/handlers"

	"github.com/sakif/confession-wall/internal/config"
	"github.com/sakif/confession-wall/internal/handler"
	"github.com/sakif/confession-wall/internal/middleware"
	"github.com/sakif/confession-wall/internal/repository"
	pgRepo "github.com/sakif/confession-wall/internal/repository/postgres"
	sqliteRepo "github.com/sakif/confession-wall/internal/repository/sqlite"
	"github.com/sakif/confession-wall/internal/service"
)

// Server represents the HTTP server and all its dependencies.
// The Server owns the store and closes it on shutdown.
type Server struct {
	handler http.Handler
	config  config.Config
	logger  *slog.Logger
	store   repository.Store
}

// OpenStore opens the backend selected by cfg.DBDriver.
func OpenStore(cfg config.Config, logger *slog.Logger) (repository.Store, error) {
	if cfg.DBDriver == config.DriverPostgres {
		db, err := pgRepo.New(cfg.DatabaseURL, logger)
		if err != nil {
			return nil, err
		}
		return db, nil
	}

	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	return db, nil
}

// New wires a Server around an already-open store.
func New(cfg config.Config, store repository.Store, logger *slog.Logger) *Server {
	s := &Server{
		config: cfg,
		logger: logger,
		store:  store,
	}
	s.handler = s.routes()
	return s
}

// Handler returns the fully wrapped HTTP handler (router + middleware).
func (s *Server) Handler() http.Handler {
	return s.handler
}

// routes configures all middleware and route handlers.
//
// ROUTE STRUCTURE:
// GET    /healthz                 → store ping
// GET    /api/advice              → list advice
// POST   /api/advice              → create advice
// GET    /api/advice/{id}         → single advice
// GET    /api/confessions         → list confessions
// POST   /api/confessions         → create confession
// POST   /api/confessions/likes   → add a like (?id=N)
// GET    /api/confessions/{id}    → single confession
//
// MIDDLEWARE ORDER MATTERS:
// 1. RequestID — tags the request (read by Logger)
// 2. RealIP — extracts real client IP from proxy headers
// 3. Logger — logs each request with timing info
// 4. Recoverer — catches panics and returns 500 instead of crashing
// CORS wraps the whole router so preflight OPTIONS requests never reach it.
func (s *Server) routes() http.Handler {
	opts := service.Options{
		MaxContentLength: s.config.MaxContentLength,
		StrictLikes:      s.config.StrictLikes,
	}

	adviceHandler := handler.NewAdviceHandler(service.NewAdviceService(s.store, opts, s.logger), s.logger)
	confessionHandler := handler.NewConfessionHandler(service.NewConfessionService(s.store, opts, s.logger), s.logger)
	healthHandler := handler.NewHealthHandler(s.store, s.logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)

	// Set before r.Route: mounted subrouters inherit these only if the
	// parent already has them.
	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/healthz", healthHandler.HandleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/advice", adviceHandler.HandleList)
		r.Post("/advice", adviceHandler.HandleCreate)
		r.Get("/advice/{id}", adviceHandler.HandleGet)

		r.Get("/confessions", confessionHandler.HandleList)
		r.Post("/confessions", confessionHandler.HandleCreate)
		r.Post("/confessions/likes", confessionHandler.HandleLike)
		// Without this, chi falls back to GET /confessions/{id} with id "likes".
		r.Get("/confessions/likes", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Allow", http.MethodPost)
			handler.MethodNotAllowed(w, r)
		})
		r.Get("/confessions/{id}", confessionHandler.HandleGet)
	})

	// The frontend sends credentials: 'include', so origins must be listed
	// explicitly (a wildcard is rejected by browsers for credentialed requests).
	cors := handlers.CORS(
		handlers.AllowedOrigins(s.config.CORSOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", middleware.RequestIDHeader}),
		handlers.ExposedHeaders([]string{middleware.RequestIDHeader}),
		handlers.AllowCredentials(),
		handlers.MaxAge(300),
	)

	return cors(r)
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully: stop accepting connections, wait up to 30s for in-flight
// requests, close the store.
func (s *Server) Start() error {
	defer func() {
		if err := s.store.Close(); err != nil {
			s.logger.Error("closing store", slog.String("error", err.Error()))
		}
	}()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("url", fmt.Sprintf("http://localhost:%d", s.config.Port)),
			slog.String("driver", s.config.DBDriver),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
