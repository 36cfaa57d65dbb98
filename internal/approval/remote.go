package approval

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Remote is the persistence boundary the engine orchestrates over. The
// dashboard backend owns durability and cross-session truth; this process
// owns only the in-memory working set.
type Remote interface {
	// GetWorkflows fetches all approval workflows for the given scope.
	GetWorkflows(ctx context.Context, scope Scope) ([]Workflow, error)

	// ApprovePost marks the underlying post approved. comment may be empty.
	ApprovePost(ctx context.Context, postID, comment string) error

	// RejectPost marks the underlying post rejected with a reason.
	RejectPost(ctx context.Context, postID, reason string) error

	// GetComments fetches comments for a post, optionally restricted to
	// internal (team-only) visibility.
	GetComments(ctx context.Context, postID string, internalOnly bool) ([]RawComment, error)

	// CreateComment appends a comment to a post.
	CreateComment(ctx context.Context, postID, text string, internalOnly bool) error
}

// RawComment is the wire shape the remote boundary returns for comments,
// before mapping into a Comment.
type RawComment struct {
	ID          string     `json:"id"`
	PostID      string     `json:"postId"`
	AuthorID    string     `json:"authorId"`
	AuthorName  string     `json:"authorName,omitempty"`
	AuthorEmail string     `json:"authorEmail,omitempty"`
	Text        string     `json:"text"`
	Kind        string     `json:"kind,omitempty"`
	Internal    bool       `json:"internal"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// ErrNotFound indicates the workflow ID is not in the working set.
var ErrNotFound = errors.New("workflow not found")

// ErrInvalidTransition indicates a status change that is not in the legal
// transition table. Rejected before any remote call or local mutation.
var ErrInvalidTransition = errors.New("invalid transition")

// ErrStaleStore indicates the working set was reloaded while a transition's
// remote call was in flight, so its local completion was discarded.
var ErrStaleStore = errors.New("working set reloaded during transition")

// FetchError wraps a failed remote read. Callers recover locally: the store
// keeps its prior contents, comment views fall back to an empty list.
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// RemoteError wraps a rejected remote mutation. Local state is never touched
// when one is returned.
type RemoteError struct {
	Op         string
	WorkflowID string
	Err        error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote %s for workflow %s: %v", e.Op, e.WorkflowID, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// ValidationError indicates bad input (empty reason, feedback, or comment
// body) rejected before any remote call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
