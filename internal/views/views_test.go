package views

import (
	"testing"
	"time"

	"revu/internal/approval"
	"revu/internal/team"
)

func overrideViewsDir(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	orig := viewsDirFunc
	viewsDirFunc = func() string { return dir }
	t.Cleanup(func() { viewsDirFunc = orig })
}

func TestListIncludesBuiltins(t *testing.T) {
	overrideViewsDir(t)

	views, err := List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	found := false
	for _, v := range views {
		if v.Name == "needs-review" {
			found = true
			if !v.BuiltIn {
				t.Error("needs-review should be marked built-in")
			}
			if v.Status != approval.StatusPending {
				t.Errorf("needs-review status = %s", v.Status)
			}
		}
	}
	if !found {
		t.Error("built-in needs-review missing from List")
	}
}

func TestSaveGetDelete(t *testing.T) {
	overrideViewsDir(t)

	v := &View{
		Name:     "my-queue",
		Status:   approval.StatusPending,
		Query:    "launch",
		Priority: approval.PriorityHigh,
	}
	if err := Save(v); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Get("my-queue")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Query != "launch" || got.Priority != approval.PriorityHigh || got.BuiltIn {
		t.Errorf("Get = %+v", got)
	}

	if err := Delete("my-queue"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := Get("my-queue"); err == nil {
		t.Error("Get after Delete should fail")
	}
}

func TestSaveRequiresName(t *testing.T) {
	overrideViewsDir(t)
	if err := Save(&View{}); err == nil {
		t.Error("Save without a name should fail")
	}
}

func TestViewApply(t *testing.T) {
	overrideViewsDir(t)

	t0 := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
	ws := []approval.Workflow{
		{ID: "w1", Content: "Launch teaser", Status: approval.StatusPending, Priority: approval.PriorityNormal, SubmittedAt: t0, SubmittedBy: team.Member{ID: "u1"}},
		{ID: "w2", Content: "Launch banner", Status: approval.StatusPending, Priority: approval.PriorityUrgent, SubmittedAt: t0, SubmittedBy: team.Member{ID: "u1"}},
		{ID: "w3", Content: "Old post", Status: approval.StatusApproved, SubmittedAt: t0, SubmittedBy: team.Member{ID: "u1"}},
	}

	v := &View{Status: approval.StatusPending, Query: "launch", SortUrgent: true}
	got := v.Apply(ws)
	if len(got) != 2 || got[0].ID != "w2" || got[1].ID != "w1" {
		t.Errorf("Apply = %v", got)
	}
}
