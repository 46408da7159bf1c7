// Package web provides the server-rendered catalog UI.
package web

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/bookhavenapp/bookhaven-web/internal/ratelimit"
	"github.com/bookhavenapp/bookhaven-web/internal/service"
)

// Form posts per client IP. Generous for a human clicking through forms,
// tight enough to stop a runaway script from hammering the library API.
const (
	mutationRPS   = 5
	mutationBurst = 10
)

// Server holds dependencies for the UI handlers.
type Server struct {
	catalog *service.CatalogService
	router  *chi.Mux
	limiter *ratelimit.PerKey
	logger  *slog.Logger
}

// NewServer creates the UI server with all routes configured.
func NewServer(catalog *service.CatalogService, logger *slog.Logger) *Server {
	s := &Server{
		catalog: catalog,
		router:  chi.NewRouter(),
		limiter: ratelimit.New(mutationRPS, mutationBurst),
		logger:  logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "HEAD"},
		MaxAge:         300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check.
	s.router.Get("/health", s.handleHealthCheck)

	// Pages.
	s.router.Get("/", s.handleHome)
	s.router.Get("/authors", s.handleAuthorList)
	s.router.Get("/books", s.handleBookList)
	s.router.Get("/books/{id}", s.handleBookDetails)

	// Mutations. Plain form posts, so deletes are POSTs too.
	mutations := s.router.With(s.throttleMutations)
	mutations.Post("/authors", s.handleCreateAuthor)
	mutations.Post("/authors/{id}", s.handleUpdateAuthor)
	mutations.Post("/authors/{id}/delete", s.handleDeleteAuthor)
	mutations.Post("/books", s.handleCreateBook)
	mutations.Post("/books/{id}", s.handleUpdateBook)
	mutations.Post("/books/{id}/delete", s.handleDeleteBook)
	mutations.Post("/books/{id}/read-url", s.handleUpdateReadURL)
	mutations.Post("/books/{id}/reviews", s.handleCreateReview)
	mutations.Post("/reviews/{id}", s.handleUpdateReview)
	mutations.Post("/reviews/{id}/delete", s.handleDeleteReview)
}

// throttleMutations rate limits form posts by client IP. RealIP runs
// earlier in the stack, so RemoteAddr is already the real client.
func (s *Server) throttleMutations(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow(clientKey(r)) {
			s.logger.Warn("Rate limit exceeded", "ip", clientKey(r), "path", r.URL.Path)
			http.Error(w, "Too many requests. Please try again later.", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientKey strips the port from RemoteAddr.
func clientKey(r *http.Request) string {
	addr := r.RemoteAddr
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			return addr[:i]
		}
	}
	return addr
}

// handleHealthCheck returns server health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
