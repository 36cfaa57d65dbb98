package httpserver

import (
	"log"
	"net/http"

	"revu/internal/approval"
	"revu/internal/team"
)

// HTTPServer represents the HTTP API server
type HTTPServer struct {
	mux     *http.ServeMux
	tokens  []string
	version string

	store    *approval.Store
	engine   *approval.Engine
	collab   *approval.Collab
	registry *team.Registry
}

// NewHTTPServer creates a new HTTP server instance
func NewHTTPServer(tokens []string, version string, store *approval.Store, engine *approval.Engine, collab *approval.Collab, registry *team.Registry) *HTTPServer {
	s := &HTTPServer{
		mux:      http.NewServeMux(),
		tokens:   tokens,
		version:  version,
		store:    store,
		engine:   engine,
		collab:   collab,
		registry: registry,
	}

	// Register routes
	s.registerRoutes()

	return s
}

// registerRoutes sets up all HTTP routes with middleware
func (s *HTTPServer) registerRoutes() {
	// Health check (no auth required)
	s.mux.HandleFunc("/health", loggingMiddleware(s.handleHealth))

	// Authenticated endpoints
	s.mux.HandleFunc("/workflows", loggingMiddleware(s.authMiddleware(s.handleListWorkflows)))
	s.mux.HandleFunc("/workflows/", loggingMiddleware(s.authMiddleware(jsonContentTypeMiddleware(s.routeWorkflow))))
	s.mux.HandleFunc("/stats", loggingMiddleware(s.authMiddleware(s.handleStats)))
	s.mux.HandleFunc("/members", loggingMiddleware(s.authMiddleware(s.handleListMembers)))
	s.mux.HandleFunc("/reload", loggingMiddleware(s.authMiddleware(s.handleReload)))
}

// ListenAndServe starts the HTTP server on the given address
func (s *HTTPServer) ListenAndServe(addr string) error {
	log.Printf("[HTTP] Starting server on %s", addr)
	log.Printf("[HTTP] Registered %d valid tokens", len(s.tokens))
	return http.ListenAndServe(addr, s.mux)
}
