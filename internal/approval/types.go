package approval

import (
	"time"

	"revu/internal/team"
)

// Status represents the review state of a workflow.
type Status string

const (
	StatusPending          Status = "pending"
	StatusApproved         Status = "approved"
	StatusRejected         Status = "rejected"
	StatusChangesRequested Status = "changes_requested"
)

// ValidStatus reports whether s is one of the four review states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusChangesRequested:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are accepted from s.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Priority represents the urgency of a review. Informational only; it never
// affects which transitions are legal.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// priorityRank returns a sort rank for a priority level (lower = more urgent).
func priorityRank(p Priority) int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	case PriorityLow:
		return 3
	default:
		return 2 // normal or empty
	}
}

// Scope narrows the working set to one organization, optionally to a company
// and product context within it.
type Scope struct {
	OrgID     string `json:"orgId"`
	CompanyID string `json:"companyId,omitempty"`
	ProductID string `json:"productId,omitempty"`
}

// Workflow tracks one content item's journey through review.
type Workflow struct {
	ID      string `json:"id"`
	PostID  string `json:"postId"`
	Content string `json:"content"` // denormalized snapshot for display

	Status   Status   `json:"status"`
	Priority Priority `json:"priority,omitempty"`

	SubmittedBy team.Member `json:"submittedBy"`
	SubmittedAt time.Time   `json:"submittedAt"`

	// ReviewedBy and ReviewedAt are both present or both absent.
	ReviewedBy *team.Member `json:"reviewedBy,omitempty"`
	ReviewedAt *time.Time   `json:"reviewedAt,omitempty"`

	DueDate *time.Time `json:"dueDate,omitempty"`
}

// Overdue reports whether the workflow's due date has passed while it is
// still awaiting review.
func (w *Workflow) Overdue(now time.Time) bool {
	return w.DueDate != nil && w.DueDate.Before(now) && w.Status == StatusPending
}

// CommentType labels a comment's intent. Comments are informational
// annotations; an "approval" or "rejection" comment never changes status.
type CommentType string

const (
	CommentPlain     CommentType = "comment"
	CommentFeedback  CommentType = "feedback"
	CommentApproval  CommentType = "approval"
	CommentRejection CommentType = "rejection"
)

// Comment is one entry in a workflow's append-only comment thread.
type Comment struct {
	ID         string      `json:"id"`
	WorkflowID string      `json:"workflowId"`
	Author     team.Member `json:"author"`
	Content    string      `json:"content"`
	Type       CommentType `json:"type"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  *time.Time  `json:"updatedAt,omitempty"`
}

// ActivityAction identifies what happened in an activity entry.
type ActivityAction string

const (
	ActionSubmitted        ActivityAction = "submitted"
	ActionApproved         ActivityAction = "approved"
	ActionRejected         ActivityAction = "rejected"
	ActionChangesRequested ActivityAction = "changes_requested"
	ActionCommented        ActivityAction = "commented"
	ActionUpdated          ActivityAction = "updated"
)

// Activity is one entry in a workflow's append-only audit trail. Replaying a
// workflow's trail in order reconstructs its current status.
type Activity struct {
	ID         string         `json:"id"`
	WorkflowID string         `json:"workflowId"`
	Actor      team.Member    `json:"actor"`
	Action     ActivityAction `json:"action"`
	Timestamp  time.Time      `json:"timestamp"`

	PrevStatus Status `json:"prevStatus,omitempty"`
	NewStatus  Status `json:"newStatus,omitempty"`
	Comment    string `json:"comment,omitempty"`
}

// Stats is derived from the working set, never stored.
type Stats struct {
	Pending          int     `json:"pending"`
	Approved         int     `json:"approved"`
	Rejected         int     `json:"rejected"`
	ChangesRequested int     `json:"changesRequested"`
	Overdue          int     `json:"overdue"`
	AvgReviewHours   float64 `json:"avgReviewHours"`

	// accumulators behind AvgReviewHours, kept so the engine can adjust
	// stats incrementally without a full recompute
	reviewedCount int
	reviewedHours float64
}

// Total returns the number of workflows the stats cover.
func (s Stats) Total() int {
	return s.Pending + s.Approved + s.Rejected + s.ChangesRequested
}
