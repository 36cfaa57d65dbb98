package remoteapi

import (
	"time"

	"revu/internal/approval"
	"revu/internal/team"
)

// Wire shapes for the dashboard backend API.

type workflowListResponse struct {
	Workflows []wireWorkflow `json:"workflows"`
}

type wireWorkflow struct {
	ID          string      `json:"id"`
	PostID      string      `json:"postId"`
	Content     string      `json:"content"`
	Status      string      `json:"status"`
	Priority    string      `json:"priority,omitempty"`
	SubmittedBy wireMember  `json:"submittedBy"`
	SubmittedAt time.Time   `json:"submittedAt"`
	ReviewedBy  *wireMember `json:"reviewedBy,omitempty"`
	ReviewedAt  *time.Time  `json:"reviewedAt,omitempty"`
	DueDate     *time.Time  `json:"dueDate,omitempty"`
}

func (w wireWorkflow) toWorkflow() approval.Workflow {
	out := approval.Workflow{
		ID:          w.ID,
		PostID:      w.PostID,
		Content:     w.Content,
		Status:      approval.Status(w.Status),
		Priority:    approval.Priority(w.Priority),
		SubmittedBy: w.SubmittedBy.toMember(),
		SubmittedAt: w.SubmittedAt,
		DueDate:     w.DueDate,
	}
	if !approval.ValidStatus(out.Status) {
		out.Status = approval.StatusPending
	}
	// reviewedBy and reviewedAt travel as a pair; drop half-set review data.
	if w.ReviewedBy != nil && w.ReviewedAt != nil {
		m := w.ReviewedBy.toMember()
		out.ReviewedBy = &m
		out.ReviewedAt = w.ReviewedAt
	}
	return out
}

type wireMember struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

func (m wireMember) toMember() team.Member {
	return team.Member{
		ID:    m.ID,
		Name:  m.Name,
		Email: m.Email,
		Role:  team.ParseRole(m.Role),
	}
}

type memberListResponse struct {
	Members []wireMember `json:"members"`
}

type commentListResponse struct {
	Comments []approval.RawComment `json:"comments"`
}

type approveRequest struct {
	Comment string `json:"comment,omitempty"`
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

type createCommentRequest struct {
	Text     string `json:"text"`
	Internal bool   `json:"internal"`
}

type errorResponse struct {
	Error string `json:"error"`
}
