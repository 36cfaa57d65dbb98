package tui

import (
	"testing"

	"revu/internal/approval"
)

func TestNextPriorityFilterCycles(t *testing.T) {
	order := []approval.Priority{
		"",
		approval.PriorityUrgent,
		approval.PriorityHigh,
		approval.PriorityNormal,
		approval.PriorityLow,
	}
	for i, p := range order {
		want := order[(i+1)%len(order)]
		if got := nextPriorityFilter(p); got != want {
			t.Errorf("nextPriorityFilter(%q) = %q, want %q", p, got, want)
		}
	}
}

func TestTabLabels(t *testing.T) {
	for _, tab := range tabs {
		if tabLabel(tab) == "" {
			t.Errorf("tab %q has no label", tab)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("hello", 10); got != "hello" {
		t.Errorf("truncate short = %q", got)
	}
	if got := truncate("hello world", 8); got != "hello..." {
		t.Errorf("truncate long = %q", got)
	}
}
