package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// handleHealth handles GET /health
func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	respondJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: s.version,
	})
}

// handleStats handles GET /stats
func (s *HTTPServer) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	stats := s.store.Stats()
	respondJSON(w, http.StatusOK, StatsResponse{
		Stats: stats,
		Total: stats.Total(),
		AsOf:  time.Now().UTC(),
	})
}

// handleListMembers handles GET /members
func (s *HTTPServer) handleListMembers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	members := s.registry.Members()
	list := make([]MemberResponse, 0, len(members))
	for _, m := range members {
		list = append(list, MemberResponse{
			ID:    m.ID,
			Name:  m.Name,
			Email: m.Email,
			Role:  string(m.Role),
		})
	}

	respondJSON(w, http.StatusOK, MemberListResponse{Members: list})
}

// handleReload handles POST /reload, refetching the working set from the
// dashboard backend.
func (s *HTTPServer) handleReload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	if err := s.store.Load(ctx, s.store.Scope()); err != nil {
		respondError(w, http.StatusBadGateway, fmt.Sprintf("failed to reload workflows: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, ReloadResponse{Workflows: len(s.store.Workflows())})
}
