package commands

import (
	"fmt"
	"time"

	"revu/internal/approval"
	"revu/internal/output"
	"revu/internal/ui"
	"revu/internal/views"
)

// RunReviewList displays the workflow queue, filtered and optionally shaped
// by a saved view preset.
func RunReviewList(status, query, priority, viewName string, urgentFirst bool) {
	ctx, cancel := commandContext()
	defer cancel()

	deps, err := buildDeps(ctx)
	if err != nil {
		output.PrintError(err)
		return
	}

	var workflows []approval.Workflow
	if viewName != "" {
		v, err := views.Get(viewName)
		if err != nil {
			output.PrintError(err)
			return
		}
		workflows = v.Apply(deps.Store.Workflows())
	} else {
		tab := approval.Status(status)
		if tab == "" {
			tab = approval.StatusAll
		}
		if tab != approval.StatusAll && !approval.ValidStatus(tab) {
			output.PrintError(fmt.Errorf("unknown status %q", status))
			return
		}
		workflows = approval.FilterWorkflows(deps.Store.Workflows(), tab, query, approval.Priority(priority))
		if urgentFirst {
			workflows = approval.SortByPriority(workflows)
		}
	}

	output.Print(workflows, func() {
		if len(workflows) == 0 {
			fmt.Println("No workflows match.")
			return
		}
		now := time.Now()
		fmt.Println()
		for _, w := range workflows {
			ui.ShowWorkflowRow(w, now)
		}
		fmt.Printf("\n  %d workflow(s)\n", len(workflows))
	})
}

// RunReviewShow displays one workflow with its comment thread and trail.
func RunReviewShow(id string) {
	ctx, cancel := commandContext()
	defer cancel()

	deps, err := buildDeps(ctx)
	if err != nil {
		output.PrintError(err)
		return
	}

	w, err := deps.Store.Get(id)
	if err != nil {
		output.PrintError(err)
		return
	}
	comments, err := deps.Collab.Comments(ctx, id)
	if err != nil {
		ui.ShowWarning("comments unavailable: %v", err)
	}
	activities, _ := deps.Collab.Activities(id)

	type detail struct {
		Workflow   approval.Workflow   `json:"workflow"`
		Comments   []approval.Comment  `json:"comments"`
		Activities []approval.Activity `json:"activities"`
	}

	output.Print(detail{Workflow: w, Comments: comments, Activities: activities}, func() {
		ui.ShowHeader("Workflow " + w.ID)
		fmt.Printf("  Status:    %s %s\n", ui.StatusIcon(w.Status), w.Status)
		if w.Priority != "" {
			fmt.Printf("  Priority:  %s\n", w.Priority)
		}
		fmt.Printf("  Content:   %s\n", w.Content)
		fmt.Printf("  Submitted: %s by %s\n", w.SubmittedAt.Format("2006-01-02 15:04"), w.SubmittedBy.DisplayName())
		if w.ReviewedBy != nil && w.ReviewedAt != nil {
			fmt.Printf("  Reviewed:  %s by %s\n", w.ReviewedAt.Format("2006-01-02 15:04"), w.ReviewedBy.DisplayName())
		}
		if w.DueDate != nil {
			overdue := ""
			if w.Overdue(time.Now()) {
				overdue = " (overdue)"
			}
			fmt.Printf("  Due:       %s%s\n", w.DueDate.Format("2006-01-02 15:04"), overdue)
		}

		fmt.Println("\n  Comments:")
		if len(comments) == 0 {
			fmt.Println("    none")
		}
		for _, c := range comments {
			fmt.Printf("    [%s] %s (%s): %s\n", c.Type, c.Author.DisplayName(), c.CreatedAt.Format("Jan 2 15:04"), c.Content)
		}

		fmt.Println("\n  Activity:")
		for _, a := range activities {
			line := fmt.Sprintf("    %s  %s %s", a.Timestamp.Format("Jan 2 15:04"), a.Actor.DisplayName(), a.Action)
			if a.Comment != "" {
				line += ": " + ui.Truncate(a.Comment, 60)
			}
			fmt.Println(line)
		}
		fmt.Println()
	})
}

// RunReviewApprove approves a workflow.
func RunReviewApprove(id, comment string) {
	runTransition(id, approval.ActionApproved, comment)
}

// RunReviewReject rejects a workflow.
func RunReviewReject(id, reason string) {
	runTransition(id, approval.ActionRejected, reason)
}

// RunReviewRequestChanges sends a workflow back with feedback.
func RunReviewRequestChanges(id, feedback string) {
	runTransition(id, approval.ActionChangesRequested, feedback)
}

func runTransition(id string, action approval.ActivityAction, note string) {
	ctx, cancel := commandContext()
	defer cancel()

	deps, err := buildDeps(ctx)
	if err != nil {
		output.PrintError(err)
		return
	}

	switch action {
	case approval.ActionApproved:
		err = deps.Engine.Approve(ctx, id, deps.Actor, note)
	case approval.ActionRejected:
		err = deps.Engine.Reject(ctx, id, deps.Actor, note)
	case approval.ActionChangesRequested:
		err = deps.Engine.RequestChanges(ctx, id, deps.Actor, note)
	}
	if err != nil {
		output.PrintError(err)
		return
	}

	w, err := deps.Store.Get(id)
	if err != nil {
		output.PrintError(err)
		return
	}

	output.Print(w, func() {
		ui.ShowSuccess("Workflow %s is now %s", w.ID, w.Status)
	})
}

// RunReviewComment adds an internal comment to a workflow.
func RunReviewComment(id, text string) {
	ctx, cancel := commandContext()
	defer cancel()

	deps, err := buildDeps(ctx)
	if err != nil {
		output.PrintError(err)
		return
	}

	if err := deps.Collab.AddComment(ctx, id, deps.Actor, text); err != nil {
		output.PrintError(err)
		return
	}

	output.Print(map[string]string{"workflowId": id, "status": "created"}, func() {
		ui.ShowSuccess("Comment added to workflow %s", id)
	})
}

// RunReviewActivity shows a workflow's audit trail.
func RunReviewActivity(id string) {
	ctx, cancel := commandContext()
	defer cancel()

	deps, err := buildDeps(ctx)
	if err != nil {
		output.PrintError(err)
		return
	}

	activities, err := deps.Collab.Activities(id)
	if err != nil {
		output.PrintError(err)
		return
	}

	output.Print(activities, func() {
		ui.ShowHeader("Activity for " + id)
		for _, a := range activities {
			line := fmt.Sprintf("  %s  %s %s", a.Timestamp.Format("2006-01-02 15:04"), a.Actor.DisplayName(), a.Action)
			if a.PrevStatus != "" && a.NewStatus != "" && a.PrevStatus != a.NewStatus {
				line += fmt.Sprintf(" (%s -> %s)", a.PrevStatus, a.NewStatus)
			}
			fmt.Println(line)
			if a.Comment != "" {
				fmt.Printf("      %s\n", ui.Truncate(a.Comment, 70))
			}
		}
		fmt.Println()
	})
}

// RunReviewStats shows the aggregate stats for the current scope.
func RunReviewStats() {
	ctx, cancel := commandContext()
	defer cancel()

	deps, err := buildDeps(ctx)
	if err != nil {
		output.PrintError(err)
		return
	}

	stats := deps.Store.Stats()
	output.Print(stats, func() {
		ui.ShowHeader("Review stats")
		fmt.Printf("  Pending:           %d\n", stats.Pending)
		fmt.Printf("  Approved:          %d\n", stats.Approved)
		fmt.Printf("  Rejected:          %d\n", stats.Rejected)
		fmt.Printf("  Changes requested: %d\n", stats.ChangesRequested)
		fmt.Printf("  Overdue:           %d\n", stats.Overdue)
		fmt.Printf("  Total:             %d\n", stats.Total())
		fmt.Printf("  Avg review time:   %.1fh\n", stats.AvgReviewHours)
		fmt.Println()
	})
}
