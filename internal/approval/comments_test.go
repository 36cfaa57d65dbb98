package approval

import (
	"context"
	"errors"
	"testing"
	"time"

	"revu/internal/team"
)

func newTestCollab(t *testing.T, remote *fakeRemote, members ...team.Member) (*Collab, *Store) {
	t.Helper()
	_, store := newTestEngine(t, remote)
	collab := NewCollab(store, remote, team.NewRegistry(members))
	collab.nowFn = store.nowFn
	return collab, store
}

func TestAddCommentRejectsEmptyContent(t *testing.T) {
	remote := &fakeRemote{workflows: []Workflow{testWorkflow("wf1")}}
	collab, store := newTestCollab(t, remote)

	for _, content := range []string{"", "   ", "\t\n"} {
		err := collab.AddComment(context.Background(), "wf1", reviewer, content)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("AddComment(%q) error = %v, want ValidationError", content, err)
		}
	}

	if remote.commentCalls != 0 {
		t.Errorf("remote called %d times for invalid comments, want 0", remote.commentCalls)
	}
	if trail, _ := store.Activities("wf1"); len(trail) != 1 {
		t.Errorf("trail length = %d, want 1 (submission only)", len(trail))
	}
}

func TestAddCommentRecordsActivity(t *testing.T) {
	remote := &fakeRemote{workflows: []Workflow{testWorkflow("wf1")}}
	collab, store := newTestCollab(t, remote)

	if err := collab.AddComment(context.Background(), "wf1", reviewer, "please double-check the CTA"); err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}

	trail, _ := store.Activities("wf1")
	if len(trail) != 2 {
		t.Fatalf("trail length = %d, want 2", len(trail))
	}
	last := trail[len(trail)-1]
	if last.Action != ActionCommented || last.Comment != "please double-check the CTA" {
		t.Errorf("last activity = %+v", last)
	}

	// Comments never change workflow status.
	if w, _ := store.Get("wf1"); w.Status != StatusPending {
		t.Errorf("status = %s, want pending", w.Status)
	}
}

func TestAddCommentRemoteFailure(t *testing.T) {
	remote := &fakeRemote{
		workflows:  []Workflow{testWorkflow("wf1")},
		commentErr: errors.New("503"),
	}
	collab, store := newTestCollab(t, remote)

	err := collab.AddComment(context.Background(), "wf1", reviewer, "hello")
	var rerr *RemoteError
	if !errors.As(err, &rerr) {
		t.Fatalf("error = %v, want RemoteError", err)
	}
	if trail, _ := store.Activities("wf1"); len(trail) != 1 {
		t.Errorf("activity recorded despite remote failure")
	}
}

func TestCommentsMapping(t *testing.T) {
	created := testT0.Add(30 * time.Minute)
	known := team.Member{ID: "u1", Name: "Dana Reyes", Email: "dana@acme.io", Role: team.RoleAdmin}

	remote := &fakeRemote{
		workflows: []Workflow{testWorkflow("wf1")},
		comments: map[string][]RawComment{
			"post-wf1": {
				{ID: "c1", PostID: "post-wf1", AuthorID: "u1", Text: "on brand", Kind: "approval", CreatedAt: created},
				{ID: "c2", PostID: "post-wf1", AuthorID: "u2", AuthorEmail: "jordan.kim@acme.io", Text: "typo in line 2", CreatedAt: created.Add(time.Minute)},
			},
		},
	}
	collab, _ := newTestCollab(t, remote, known)

	comments, err := collab.Comments(context.Background(), "wf1")
	if err != nil {
		t.Fatalf("Comments failed: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("got %d comments, want 2", len(comments))
	}

	// Known author resolved through the registry.
	if comments[0].Author.Name != "Dana Reyes" || comments[0].Type != CommentApproval {
		t.Errorf("comments[0] = %+v", comments[0])
	}

	// Unknown author falls back to the wire profile; display name derives
	// from the email local-part.
	if got := comments[1].Author.DisplayName(); got != "jordan.kim" {
		t.Errorf("comments[1] display name = %q, want jordan.kim", got)
	}
	if comments[1].Type != CommentPlain {
		t.Errorf("comments[1] type = %s, want comment", comments[1].Type)
	}
	if comments[1].WorkflowID != "wf1" {
		t.Errorf("comments[1] workflowId = %s, want wf1", comments[1].WorkflowID)
	}
}

func TestCommentsFetchFailure(t *testing.T) {
	remote := &fakeRemote{workflows: []Workflow{testWorkflow("wf1")}}
	collab, _ := newTestCollab(t, remote)

	remote.fetchErr = errors.New("network down")
	_, err := collab.Comments(context.Background(), "wf1")

	var ferr *FetchError
	if !errors.As(err, &ferr) {
		t.Fatalf("error = %v, want FetchError", err)
	}
}

func TestCommentsUnknownWorkflow(t *testing.T) {
	remote := &fakeRemote{workflows: []Workflow{testWorkflow("wf1")}}
	collab, _ := newTestCollab(t, remote)

	if _, err := collab.Comments(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestActivitiesChronological(t *testing.T) {
	remote := &fakeRemote{workflows: []Workflow{testWorkflow("wf1")}}
	collab, store := newTestCollab(t, remote)
	engine := NewEngine(store, remote)
	engine.nowFn = store.nowFn

	ctx := context.Background()
	if err := collab.AddComment(ctx, "wf1", reviewer, "first pass notes"); err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	if err := engine.Approve(ctx, "wf1", reviewer, "approved with notes"); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}

	trail, err := collab.Activities("wf1")
	if err != nil {
		t.Fatalf("Activities failed: %v", err)
	}

	wantActions := []ActivityAction{ActionSubmitted, ActionCommented, ActionApproved}
	if len(trail) != len(wantActions) {
		t.Fatalf("trail length = %d, want %d", len(trail), len(wantActions))
	}
	for i, a := range trail {
		if a.Action != wantActions[i] {
			t.Errorf("trail[%d].Action = %s, want %s", i, a.Action, wantActions[i])
		}
	}
}
