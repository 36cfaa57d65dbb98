package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"revu/internal/approval"
	"revu/internal/team"
)

// handleListWorkflows handles GET /workflows with optional status, q, and
// priority query filters.
func (s *HTTPServer) handleListWorkflows(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	status := approval.Status(r.URL.Query().Get("status"))
	if status == "" {
		status = approval.StatusAll
	}
	if status != approval.StatusAll && !approval.ValidStatus(status) {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("unknown status %q", status))
		return
	}

	workflows := approval.FilterWorkflows(
		s.store.Workflows(),
		status,
		r.URL.Query().Get("q"),
		approval.Priority(r.URL.Query().Get("priority")),
	)
	if r.URL.Query().Get("sort") == "priority" {
		workflows = approval.SortByPriority(workflows)
	}

	respondJSON(w, http.StatusOK, WorkflowListResponse{Workflows: workflows, Total: len(workflows)})
}

// routeWorkflow dispatches /workflows/{id} and its sub-resources:
//
//	GET  /workflows/{id}
//	POST /workflows/{id}/approve
//	POST /workflows/{id}/reject
//	POST /workflows/{id}/request-changes
//	GET  /workflows/{id}/comments
//	POST /workflows/{id}/comments
//	GET  /workflows/{id}/activity
func (s *HTTPServer) routeWorkflow(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) < 2 || parts[1] == "" {
		respondError(w, http.StatusBadRequest, "workflow id is required")
		return
	}
	id := parts[1]

	switch {
	case len(parts) == 2:
		s.handleGetWorkflow(w, r, id)
	case len(parts) == 3 && parts[2] == "approve":
		s.handleTransition(w, r, id, approval.ActionApproved)
	case len(parts) == 3 && parts[2] == "reject":
		s.handleTransition(w, r, id, approval.ActionRejected)
	case len(parts) == 3 && parts[2] == "request-changes":
		s.handleTransition(w, r, id, approval.ActionChangesRequested)
	case len(parts) == 3 && parts[2] == "comments":
		s.handleComments(w, r, id)
	case len(parts) == 3 && parts[2] == "activity":
		s.handleActivity(w, r, id)
	default:
		respondError(w, http.StatusNotFound, "unknown workflow resource")
	}
}

// handleGetWorkflow handles GET /workflows/{id}
func (s *HTTPServer) handleGetWorkflow(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	wf, err := s.store.Get(id)
	if err != nil {
		respondApprovalError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, wf)
}

// handleTransition handles the approve, reject, and request-changes actions.
func (s *HTTPServer) handleTransition(w http.ResponseWriter, r *http.Request, id string, action approval.ActivityAction) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %v", err))
		return
	}

	actor, ok := s.resolveActor(w, req.Actor)
	if !ok {
		return
	}

	var err error
	switch action {
	case approval.ActionApproved:
		err = s.engine.Approve(r.Context(), id, actor, req.Comment)
	case approval.ActionRejected:
		err = s.engine.Reject(r.Context(), id, actor, req.Comment)
	case approval.ActionChangesRequested:
		err = s.engine.RequestChanges(r.Context(), id, actor, req.Comment)
	}
	if err != nil {
		respondApprovalError(w, err)
		return
	}

	wf, err := s.store.Get(id)
	if err != nil {
		respondApprovalError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, TransitionResponse{Workflow: wf})
}

// handleComments handles GET and POST /workflows/{id}/comments
func (s *HTTPServer) handleComments(w http.ResponseWriter, r *http.Request, id string) {
	switch r.Method {
	case http.MethodGet:
		comments, err := s.collab.Comments(r.Context(), id)
		if err != nil {
			respondApprovalError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, CommentListResponse{Comments: comments})

	case http.MethodPost:
		r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
		var req CommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %v", err))
			return
		}
		if req.Actor == "" {
			respondError(w, http.StatusBadRequest, "field 'actor' is required")
			return
		}
		actor := s.registry.Resolve(req.Actor)
		if err := s.collab.AddComment(r.Context(), id, actor, req.Content); err != nil {
			respondApprovalError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, map[string]string{"status": "created"})

	default:
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleActivity handles GET /workflows/{id}/activity
func (s *HTTPServer) handleActivity(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	activities, err := s.collab.Activities(id)
	if err != nil {
		respondApprovalError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ActivityListResponse{Activities: activities})
}

// resolveActor validates and resolves the acting reviewer for a transition.
// Transitions need review permission; commenting does not.
func (s *HTTPServer) resolveActor(w http.ResponseWriter, actorID string) (team.Member, bool) {
	if actorID == "" {
		respondError(w, http.StatusBadRequest, "field 'actor' is required")
		return team.Member{}, false
	}
	actor := s.registry.Resolve(actorID)
	if !actor.Role.CanReview() {
		respondError(w, http.StatusForbidden, fmt.Sprintf("member %q may not review content", actorID))
		return team.Member{}, false
	}
	return actor, true
}

// respondApprovalError maps domain errors onto HTTP status codes.
func respondApprovalError(w http.ResponseWriter, err error) {
	var validationErr *approval.ValidationError
	var remoteErr *approval.RemoteError
	var fetchErr *approval.FetchError

	switch {
	case errors.Is(err, approval.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, approval.ErrInvalidTransition):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, approval.ErrStaleStore):
		respondError(w, http.StatusConflict, err.Error())
	case errors.As(err, &validationErr):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &remoteErr), errors.As(err, &fetchErr):
		respondError(w, http.StatusBadGateway, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}
