// Package api provides the HTTP API for the Hueforge front end.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/hueforge/hueforge/internal/service"
)

// Version is reported in the OpenAPI document.
const Version = "1.0.0"

// Options configures the HTTP layer.
type Options struct {
	// AllowedOrigins lists the browser origins allowed by CORS.
	AllowedOrigins []string
	// SuggestionsPerMinute is the per-client budget for POST /suggestions.
	SuggestionsPerMinute int
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	services       *service.Services
	router         *chi.Mux
	api            huma.API
	suggestLimiter *RateLimiter
	logger         *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(services *service.Services, opts Options, logger *slog.Logger) *Server {
	if opts.SuggestionsPerMinute <= 0 {
		opts.SuggestionsPerMinute = 10
	}

	s := &Server{
		services:       services,
		router:         chi.NewRouter(),
		suggestLimiter: NewRateLimiter(opts.SuggestionsPerMinute, time.Minute, opts.SuggestionsPerMinute),
		logger:         logger,
	}

	s.setupMiddleware(opts)

	humaConfig := huma.DefaultConfig("Hueforge API", Version)
	humaConfig.Transformers = append(humaConfig.Transformers, EnvelopeTransformer)
	s.api = humachi.New(s.router, humaConfig)
	RegisterErrorHandler()

	s.registerRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// API exposes the huma API, used by tests and the OpenAPI dump.
func (s *Server) API() huma.API {
	return s.api
}

// Shutdown stops background work owned by the server.
func (s *Server) Shutdown() error {
	s.suggestLimiter.Stop()
	return nil
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware(opts Options) {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.requestLogger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))
	s.router.Use(OnlyFor(http.MethodPost, suggestionsPath, RateLimitMiddleware(s.suggestLimiter, s.logger)))
}

// registerRoutes wires every API group. Groups mirror the views of the web
// front end.
func (s *Server) registerRoutes() {
	s.registerHealthRoutes()
	s.registerColorRoutes()
	s.registerEditorRoutes()
	s.registerGradientRoutes()
	s.registerPaletteRoutes()
	s.registerThemeRoutes()
	s.registerSuggestionRoutes()
}

// requestLogger logs one line per request at debug level.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
