package approval

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"sync"
	"time"

	"revu/internal/team"
)

// StatusAll is the pseudo-status accepted by GetByStatus to return every
// workflow regardless of state.
const StatusAll Status = "all"

// Store holds the working set of approval workflows for one active scope.
// It is the only mutable shared structure; all mutation goes through the
// engine, which serializes writes through the store's lock so a
// multi-threaded host (the HTTP server) stays safe.
type Store struct {
	remote Remote
	nowFn  func() time.Time

	mu         sync.Mutex
	scope      Scope
	order      []*Workflow
	byID       map[string]*Workflow
	activities map[string][]Activity
	stats      Stats
	statsAt    time.Time
	gen        uint64
}

// NewStore creates an empty store backed by the given remote boundary.
func NewStore(remote Remote) *Store {
	return &Store{
		remote:     remote,
		nowFn:      time.Now,
		byID:       make(map[string]*Workflow),
		activities: make(map[string][]Activity),
	}
}

// Load fetches all workflows for the scope and replaces the working set.
// On failure the prior contents are preserved unchanged and a FetchError is
// returned; callers keep rendering the last known (possibly empty) list.
func (st *Store) Load(ctx context.Context, scope Scope) error {
	workflows, err := st.remote.GetWorkflows(ctx, scope)
	if err != nil {
		log.Printf("[store] load failed for org=%s: %v", scope.OrgID, err)
		return &FetchError{Op: "workflows", Err: err}
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	st.scope = scope
	st.order = st.order[:0]
	st.byID = make(map[string]*Workflow, len(workflows))
	st.activities = make(map[string][]Activity, len(workflows))

	for i := range workflows {
		w := workflows[i]
		st.order = append(st.order, &w)
		st.byID[w.ID] = &w
		st.activities[w.ID] = seedTrail(&w)
	}

	now := st.nowFn()
	st.stats = ComputeStats(st.order, now)
	st.statsAt = now
	st.gen++
	log.Printf("[store] loaded %d workflows for org=%s", len(st.order), scope.OrgID)
	return nil
}

// seedTrail reconstructs the minimal audit trail for a workflow fetched from
// the remote boundary: the submission, plus the recorded review when the item
// is past pending. Replaying the trail in order yields the current status.
func seedTrail(w *Workflow) []Activity {
	trail := []Activity{{
		ID:         newEntryID(),
		WorkflowID: w.ID,
		Actor:      w.SubmittedBy,
		Action:     ActionSubmitted,
		Timestamp:  w.SubmittedAt,
		NewStatus:  StatusPending,
	}}

	if w.Status != StatusPending && w.ReviewedBy != nil && w.ReviewedAt != nil {
		trail = append(trail, Activity{
			ID:         newEntryID(),
			WorkflowID: w.ID,
			Actor:      *w.ReviewedBy,
			Action:     actionForStatus(w.Status),
			Timestamp:  *w.ReviewedAt,
			PrevStatus: StatusPending,
			NewStatus:  w.Status,
		})
	}
	return trail
}

func actionForStatus(s Status) ActivityAction {
	switch s {
	case StatusApproved:
		return ActionApproved
	case StatusRejected:
		return ActionRejected
	case StatusChangesRequested:
		return ActionChangesRequested
	default:
		return ActionUpdated
	}
}

// Scope returns the scope of the current working set.
func (st *Store) Scope() Scope {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.scope
}

// Get returns the workflow with the given ID.
func (st *Store) Get(id string) (Workflow, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	w, ok := st.byID[id]
	if !ok {
		return Workflow{}, fmt.Errorf("workflow %q: %w", id, ErrNotFound)
	}
	return *w, nil
}

// Workflows returns the full working set in fetch order.
func (st *Store) Workflows() []Workflow {
	st.mu.Lock()
	defer st.mu.Unlock()

	out := make([]Workflow, 0, len(st.order))
	for _, w := range st.order {
		out = append(out, *w)
	}
	return out
}

// GetByStatus returns workflows matching the status, preserving fetch order.
// StatusAll returns everything.
func (st *Store) GetByStatus(status Status) []Workflow {
	st.mu.Lock()
	defer st.mu.Unlock()

	out := make([]Workflow, 0, len(st.order))
	for _, w := range st.order {
		if status == StatusAll || w.Status == status {
			out = append(out, *w)
		}
	}
	return out
}

// Stats returns the current derived statistics.
func (st *Store) Stats() Stats {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.stats
}

// Activities returns the audit trail for a workflow, oldest first.
func (st *Store) Activities(id string) ([]Activity, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.byID[id]; !ok {
		return nil, fmt.Errorf("workflow %q: %w", id, ErrNotFound)
	}
	trail := st.activities[id]
	out := make([]Activity, len(trail))
	copy(out, trail)
	return out, nil
}

// snapshot returns a copy of the workflow plus the store generation it was
// read at, so a transition can detect a reload that happened while its
// remote call was in flight.
func (st *Store) snapshot(id string) (Workflow, uint64, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	w, ok := st.byID[id]
	if !ok {
		return Workflow{}, 0, fmt.Errorf("workflow %q: %w", id, ErrNotFound)
	}
	return *w, st.gen, nil
}

// applyTransition commits a transition that already succeeded remotely:
// status, reviewer fields, incremental stats, and the activity entry mutate
// together under the lock. gen gates stale completions from before a reload.
func (st *Store) applyTransition(id string, gen uint64, to Status, reviewer team.Member, at time.Time, note string) (Workflow, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if gen != st.gen {
		return Workflow{}, fmt.Errorf("workflow %q: %w", id, ErrStaleStore)
	}

	w, ok := st.byID[id]
	if !ok {
		return Workflow{}, fmt.Errorf("workflow %q: %w", id, ErrNotFound)
	}

	var prevHours *float64
	if w.ReviewedAt != nil {
		h := w.ReviewedAt.Sub(w.SubmittedAt).Hours()
		prevHours = &h
	}

	from := w.Status
	// The Overdue bucket was counted at statsAt; a due date that passed
	// since then was never counted and must not be decremented.
	wasOverdue := w.Overdue(st.statsAt)

	w.Status = to
	w.ReviewedBy = &reviewer
	reviewedAt := at
	w.ReviewedAt = &reviewedAt

	st.stats.applyTransition(from, to, wasOverdue, prevHours, at.Sub(w.SubmittedAt).Hours())

	st.activities[id] = append(st.activities[id], Activity{
		ID:         newEntryID(),
		WorkflowID: id,
		Actor:      reviewer,
		Action:     actionForStatus(to),
		Timestamp:  at,
		PrevStatus: from,
		NewStatus:  to,
		Comment:    note,
	})

	return *w, nil
}

// recordComment appends a commented activity entry for a workflow.
func (st *Store) recordComment(id string, actor team.Member, text string, at time.Time) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.byID[id]; !ok {
		return fmt.Errorf("workflow %q: %w", id, ErrNotFound)
	}

	st.activities[id] = append(st.activities[id], Activity{
		ID:         newEntryID(),
		WorkflowID: id,
		Actor:      actor,
		Action:     ActionCommented,
		Timestamp:  at,
		Comment:    text,
	})
	return nil
}

// newEntryID creates a random ID for activity entries.
func newEntryID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}
