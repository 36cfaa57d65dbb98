package ui

import (
	"fmt"
	"strings"
	"time"

	"revu/internal/approval"
)

func ShowHeader(title string) {
	fmt.Printf(" %s\n", strings.Repeat("─", len(title)+2))
	fmt.Printf(" %s\n", title)
	fmt.Printf(" %s\n", strings.Repeat("─", len(title)+2))
}

func ShowSuccess(format string, args ...interface{}) {
	fmt.Printf(" ✓ %s\n", fmt.Sprintf(format, args...))
}

func ShowError(msg string, err error) {
	if err != nil {
		fmt.Printf(" ✗ %s: %v\n", msg, err)
	} else {
		fmt.Printf(" ✗ %s\n", msg)
	}
}

func ShowWarning(format string, args ...interface{}) {
	fmt.Printf(" ! %s\n", fmt.Sprintf(format, args...))
}

func ShowInfo(format string, args ...interface{}) {
	fmt.Printf(" ℹ %s\n", fmt.Sprintf(format, args...))
}

// StatusIcon returns a one-character marker for a review status.
func StatusIcon(s approval.Status) string {
	switch s {
	case approval.StatusPending:
		return "○"
	case approval.StatusApproved:
		return "✓"
	case approval.StatusRejected:
		return "✗"
	case approval.StatusChangesRequested:
		return "↺"
	default:
		return "?"
	}
}

// ShowWorkflowRow prints one workflow as a list row.
func ShowWorkflowRow(w approval.Workflow, now time.Time) {
	line := fmt.Sprintf("  %s %-10s %s", StatusIcon(w.Status), w.ID, Truncate(w.Content, 60))
	if w.Priority != "" && w.Priority != approval.PriorityNormal {
		line += fmt.Sprintf(" [%s]", w.Priority)
	}
	if w.Overdue(now) {
		line += " (overdue)"
	}
	fmt.Println(line)
	fmt.Printf("      by %s on %s\n", w.SubmittedBy.DisplayName(), w.SubmittedAt.Format("2006-01-02 15:04"))
}

// Truncate shortens s for single-line display.
func Truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
