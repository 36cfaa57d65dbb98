package approval

import (
	"context"
	"log"
	"strings"
	"time"

	"revu/internal/team"
)

// Collab manages the comment thread and activity timeline per workflow,
// independent of the engine's authority over status. Comments labeled
// "approval" or "rejection" are advisory annotations only; they never drive
// a transition.
type Collab struct {
	store    *Store
	remote   Remote
	registry *team.Registry
	nowFn    func() time.Time
}

// NewCollab creates the collaboration subsystem over a store and registry.
func NewCollab(store *Store, remote Remote, registry *team.Registry) *Collab {
	return &Collab{store: store, remote: remote, registry: registry, nowFn: time.Now}
}

// Comments fetches the internal (team-only) comment thread for a workflow,
// oldest first. On remote failure callers fall back to an empty list for
// display; the returned FetchError lets the UI distinguish "loading failed"
// from "no comments yet".
func (c *Collab) Comments(ctx context.Context, workflowID string) ([]Comment, error) {
	w, err := c.store.Get(workflowID)
	if err != nil {
		return nil, err
	}

	raw, err := c.remote.GetComments(ctx, w.PostID, true)
	if err != nil {
		log.Printf("[collab] comment fetch failed for workflow %s: %v", workflowID, err)
		return nil, &FetchError{Op: "comments", Err: err}
	}

	comments := make([]Comment, 0, len(raw))
	for _, rc := range raw {
		comments = append(comments, c.mapComment(workflowID, rc))
	}
	return comments, nil
}

// mapComment turns a raw remote comment into a Comment, resolving the author
// through the registry and falling back to the wire profile fields.
func (c *Collab) mapComment(workflowID string, rc RawComment) Comment {
	author, ok := c.registry.Lookup(rc.AuthorID)
	if !ok {
		author = team.Member{ID: rc.AuthorID, Name: rc.AuthorName, Email: rc.AuthorEmail}
	}

	return Comment{
		ID:         rc.ID,
		WorkflowID: workflowID,
		Author:     author,
		Content:    rc.Text,
		Type:       parseCommentType(rc.Kind),
		CreatedAt:  rc.CreatedAt,
		UpdatedAt:  rc.UpdatedAt,
	}
}

func parseCommentType(kind string) CommentType {
	switch kind {
	case string(CommentFeedback):
		return CommentFeedback
	case string(CommentApproval):
		return CommentApproval
	case string(CommentRejection):
		return CommentRejection
	default:
		return CommentPlain
	}
}

// AddComment appends a comment to the workflow's thread. Empty or
// whitespace-only content is rejected before the remote call. The comment is
// not appended optimistically; callers re-fetch to see it, avoiding ordering
// drift between optimistic and server-confirmed state.
func (c *Collab) AddComment(ctx context.Context, workflowID string, actor team.Member, content string) error {
	if strings.TrimSpace(content) == "" {
		return &ValidationError{Field: "comment", Reason: "comment content is required"}
	}

	w, err := c.store.Get(workflowID)
	if err != nil {
		return err
	}

	if err := c.remote.CreateComment(ctx, w.PostID, content, true); err != nil {
		log.Printf("[collab] comment create failed for workflow %s: %v", workflowID, err)
		return &RemoteError{Op: "comment", WorkflowID: workflowID, Err: err}
	}

	return c.store.recordComment(workflowID, actor, content, c.nowFn())
}

// Activities returns the ordered audit trail for a workflow, oldest first,
// suitable for direct chronological rendering.
func (c *Collab) Activities(workflowID string) ([]Activity, error) {
	return c.store.Activities(workflowID)
}
