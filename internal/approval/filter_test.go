package approval

import (
	"testing"
	"time"

	"revu/internal/team"
)

func filterFixture() []Workflow {
	w1 := testWorkflow("w1")
	w1.Content = "Spring sale announcement"
	w1.Priority = PriorityUrgent

	w2 := testWorkflow("w2")
	w2.Content = "Behind the scenes reel"
	w2.Status = StatusApproved
	w2.Priority = PriorityLow

	w3 := testWorkflow("w3")
	w3.Content = "Product launch teaser"
	w3.SubmittedBy = team.Member{ID: "u9", Email: "casey.lin@acme.io"}

	w4 := testWorkflow("w4")
	w4.Content = "SPRING giveaway rules"
	w4.Status = StatusChangesRequested
	w4.Priority = PriorityHigh

	return []Workflow{w1, w2, w3, w4}
}

func TestFilterByStatusTab(t *testing.T) {
	ws := filterFixture()

	got := FilterWorkflows(ws, StatusPending, "", "")
	if len(got) != 2 || got[0].ID != "w1" || got[1].ID != "w3" {
		t.Errorf("pending tab = %v", ids(got))
	}

	if got := FilterWorkflows(ws, StatusAll, "", ""); len(got) != 4 {
		t.Errorf("all tab = %d items, want 4", len(got))
	}
	if got := FilterWorkflows(ws, "", "", ""); len(got) != 4 {
		t.Errorf("empty tab = %d items, want 4", len(got))
	}
}

func TestFilterSearchCaseInsensitive(t *testing.T) {
	ws := filterFixture()

	got := FilterWorkflows(ws, StatusAll, "spring", "")
	if len(got) != 2 || got[0].ID != "w1" || got[1].ID != "w4" {
		t.Errorf("search 'spring' = %v", ids(got))
	}

	// Matches the submitter's display name, derived from the email
	// local-part when no name is set.
	got = FilterWorkflows(ws, StatusAll, "CASEY", "")
	if len(got) != 1 || got[0].ID != "w3" {
		t.Errorf("search 'CASEY' = %v", ids(got))
	}

	if got := FilterWorkflows(ws, StatusAll, "nonexistent", ""); len(got) != 0 {
		t.Errorf("search miss = %v", ids(got))
	}
}

func TestFilterByPriority(t *testing.T) {
	ws := filterFixture()

	got := FilterWorkflows(ws, StatusAll, "", PriorityUrgent)
	if len(got) != 1 || got[0].ID != "w1" {
		t.Errorf("urgent filter = %v", ids(got))
	}
}

func TestFilterCombined(t *testing.T) {
	ws := filterFixture()

	got := FilterWorkflows(ws, StatusChangesRequested, "spring", PriorityHigh)
	if len(got) != 1 || got[0].ID != "w4" {
		t.Errorf("combined filter = %v", ids(got))
	}

	// Deterministic: re-running yields the same result.
	again := FilterWorkflows(ws, StatusChangesRequested, "spring", PriorityHigh)
	if len(again) != len(got) || again[0].ID != got[0].ID {
		t.Errorf("filter not deterministic: %v vs %v", ids(got), ids(again))
	}
}

func TestSortByPriority(t *testing.T) {
	ws := filterFixture()
	ws[2].SubmittedAt = testT0.Add(-time.Hour) // w3, normal priority, oldest

	sorted := SortByPriority(ws)
	want := []string{"w1", "w4", "w3", "w2"} // urgent, high, normal(oldest first), low
	for i, w := range sorted {
		if w.ID != want[i] {
			t.Fatalf("sorted = %v, want %v", ids(sorted), want)
		}
	}

	// Original slice untouched.
	if ws[0].ID != "w1" || ws[1].ID != "w2" {
		t.Error("SortByPriority mutated its input")
	}
}

func ids(ws []Workflow) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.ID
	}
	return out
}
