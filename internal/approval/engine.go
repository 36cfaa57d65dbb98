package approval

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"revu/internal/team"
)

// transitions is the legal state/event table. Any pair not listed here is
// rejected before a remote call or local mutation happens. Rejecting from
// changes_requested is legal: content that came back with requested changes
// can still ultimately be rejected.
var transitions = map[Status]map[ActivityAction]Status{
	StatusPending: {
		ActionApproved:         StatusApproved,
		ActionRejected:         StatusRejected,
		ActionChangesRequested: StatusChangesRequested,
	},
	StatusChangesRequested: {
		ActionApproved: StatusApproved,
		ActionRejected: StatusRejected,
	},
}

// TransitionEvent describes a committed transition, handed to hooks.
type TransitionEvent struct {
	Workflow Workflow
	Action   ActivityAction
	Actor    team.Member
	Note     string
}

// TransitionHook observes committed transitions (notifications, logging).
// Hooks run after local state has been updated and must not block for long.
type TransitionHook func(TransitionEvent)

// Engine is the sole authority for changing a workflow's status. Every
// transition calls the remote boundary first and mutates local state only
// on success, so the store and the boundary never diverge on failure.
type Engine struct {
	store  *Store
	remote Remote
	nowFn  func() time.Time
	hooks  []TransitionHook
}

// NewEngine creates a transition engine over the store and its remote.
func NewEngine(store *Store, remote Remote) *Engine {
	return &Engine{store: store, remote: remote, nowFn: time.Now}
}

// OnTransition registers a hook called after each committed transition.
func (e *Engine) OnTransition(h TransitionHook) {
	e.hooks = append(e.hooks, h)
}

// Approve transitions a workflow to approved. comment may be empty.
func (e *Engine) Approve(ctx context.Context, id string, actor team.Member, comment string) error {
	return e.transition(ctx, id, actor, ActionApproved, comment)
}

// Reject transitions a workflow to rejected. A non-empty reason is required.
func (e *Engine) Reject(ctx context.Context, id string, actor team.Member, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return &ValidationError{Field: "reason", Reason: "a rejection reason is required"}
	}
	return e.transition(ctx, id, actor, ActionRejected, reason)
}

// RequestChanges transitions a workflow to changes_requested. Non-empty
// feedback is required and is recorded for the submitter.
func (e *Engine) RequestChanges(ctx context.Context, id string, actor team.Member, feedback string) error {
	if strings.TrimSpace(feedback) == "" {
		return &ValidationError{Field: "feedback", Reason: "feedback is required when requesting changes"}
	}
	return e.transition(ctx, id, actor, ActionChangesRequested, feedback)
}

// transition validates the state change, calls the remote boundary, and only
// then commits the local mutation. Order matters: validation, remote call,
// local commit.
func (e *Engine) transition(ctx context.Context, id string, actor team.Member, action ActivityAction, note string) error {
	w, gen, err := e.store.snapshot(id)
	if err != nil {
		return err
	}

	to, ok := transitions[w.Status][action]
	if !ok {
		return fmt.Errorf("workflow %s: %s from status %s: %w", id, action, w.Status, ErrInvalidTransition)
	}

	if err := e.callRemote(ctx, &w, action, note); err != nil {
		log.Printf("[engine] %s failed for workflow %s: %v", action, id, err)
		return err
	}

	updated, err := e.store.applyTransition(id, gen, to, actor, e.nowFn(), note)
	if err != nil {
		// The remote accepted the change but the working set was reloaded
		// underneath us; the reload already reflects remote truth.
		log.Printf("[engine] discarded stale %s completion for workflow %s: %v", action, id, err)
		return err
	}

	log.Printf("[engine] workflow %s: %s -> %s by %s", id, w.Status, to, actor.DisplayName())
	for _, h := range e.hooks {
		h(TransitionEvent{Workflow: updated, Action: action, Actor: actor, Note: note})
	}
	return nil
}

// callRemote performs the boundary call matching the action. Requesting
// changes has no dedicated endpoint; the feedback is recorded as an internal
// comment on the post, which is what reviewers see on the dashboard.
func (e *Engine) callRemote(ctx context.Context, w *Workflow, action ActivityAction, note string) error {
	var err error
	switch action {
	case ActionApproved:
		err = e.remote.ApprovePost(ctx, w.PostID, note)
	case ActionRejected:
		err = e.remote.RejectPost(ctx, w.PostID, note)
	case ActionChangesRequested:
		err = e.remote.CreateComment(ctx, w.PostID, note, true)
	default:
		return fmt.Errorf("workflow %s: %s: %w", w.ID, action, ErrInvalidTransition)
	}
	if err != nil {
		return &RemoteError{Op: string(action), WorkflowID: w.ID, Err: err}
	}
	return nil
}
