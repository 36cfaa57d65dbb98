package httpserver

import (
	"time"

	"revu/internal/approval"
)

// WorkflowListResponse represents the workflows list response
type WorkflowListResponse struct {
	Workflows []approval.Workflow `json:"workflows"`
	Total     int                 `json:"total"`
}

// TransitionRequest carries the acting reviewer and an optional note for
// approve/reject/request-changes calls
type TransitionRequest struct {
	Actor   string `json:"actor"`             // reviewer member ID
	Comment string `json:"comment,omitempty"` // optional for approve, required for reject and request-changes
}

// TransitionResponse returns the workflow after a successful transition
type TransitionResponse struct {
	Workflow approval.Workflow `json:"workflow"`
}

// CommentRequest represents a new internal comment
type CommentRequest struct {
	Actor   string `json:"actor"`
	Content string `json:"content"`
}

// CommentListResponse represents a workflow's comment thread
type CommentListResponse struct {
	Comments []approval.Comment `json:"comments"`
}

// ActivityListResponse represents a workflow's audit trail
type ActivityListResponse struct {
	Activities []approval.Activity `json:"activities"`
}

// StatsResponse represents the aggregate stats response
type StatsResponse struct {
	Stats approval.Stats `json:"stats"`
	Total int            `json:"total"`
	AsOf  time.Time      `json:"asOf"`
}
