package commands

import (
	"github.com/spf13/cobra"
)

// ReviewCmd is the parent command for working the approval queue.
var ReviewCmd = &cobra.Command{
	Use:     "review",
	Aliases: []string{"rv"},
	Short:   "Work the content approval queue",
	Long:    "List, inspect, approve, reject, and discuss content approval workflows",
}

var reviewListCmd = &cobra.Command{
	Use:   "list",
	Short: "List approval workflows",
	Run: func(cmd *cobra.Command, args []string) {
		status, _ := cmd.Flags().GetString("status")
		query, _ := cmd.Flags().GetString("query")
		priority, _ := cmd.Flags().GetString("priority")
		view, _ := cmd.Flags().GetString("view")
		urgentFirst, _ := cmd.Flags().GetBool("urgent-first")
		RunReviewList(status, query, priority, view, urgentFirst)
	},
}

var reviewShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one workflow with comments and activity",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		RunReviewShow(args[0])
	},
}

var reviewApproveCmd = &cobra.Command{
	Use:   "approve <id>",
	Short: "Approve a workflow",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		comment, _ := cmd.Flags().GetString("comment")
		RunReviewApprove(args[0], comment)
	},
}

var reviewRejectCmd = &cobra.Command{
	Use:   "reject <id>",
	Short: "Reject a workflow (a reason is required)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		reason, _ := cmd.Flags().GetString("reason")
		RunReviewReject(args[0], reason)
	},
}

var reviewRequestChangesCmd = &cobra.Command{
	Use:     "request-changes <id>",
	Aliases: []string{"rc"},
	Short:   "Send a workflow back with feedback",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		feedback, _ := cmd.Flags().GetString("feedback")
		RunReviewRequestChanges(args[0], feedback)
	},
}

var reviewCommentCmd = &cobra.Command{
	Use:   "comment <id> <text>",
	Short: "Add an internal comment to a workflow",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		RunReviewComment(args[0], args[1])
	},
}

var reviewActivityCmd = &cobra.Command{
	Use:   "activity <id>",
	Short: "Show a workflow's audit trail",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		RunReviewActivity(args[0])
	},
}

var reviewStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate review stats",
	Run: func(cmd *cobra.Command, args []string) {
		RunReviewStats()
	},
}

func init() {
	reviewListCmd.Flags().StringP("status", "s", "", "Filter by status (pending, approved, rejected, changes_requested, all)")
	reviewListCmd.Flags().StringP("query", "q", "", "Search content and submitter names")
	reviewListCmd.Flags().StringP("priority", "p", "", "Filter by priority (urgent, high, normal, low)")
	reviewListCmd.Flags().String("view", "", "Apply a saved view preset")
	reviewListCmd.Flags().BoolP("urgent-first", "u", false, "Sort most urgent first")

	reviewApproveCmd.Flags().StringP("comment", "c", "", "Optional approval comment")
	reviewRejectCmd.Flags().StringP("reason", "r", "", "Rejection reason (required)")
	reviewRequestChangesCmd.Flags().StringP("feedback", "f", "", "Feedback for the submitter (required)")

	ReviewCmd.AddCommand(reviewListCmd)
	ReviewCmd.AddCommand(reviewShowCmd)
	ReviewCmd.AddCommand(reviewApproveCmd)
	ReviewCmd.AddCommand(reviewRejectCmd)
	ReviewCmd.AddCommand(reviewRequestChangesCmd)
	ReviewCmd.AddCommand(reviewCommentCmd)
	ReviewCmd.AddCommand(reviewActivityCmd)
	ReviewCmd.AddCommand(reviewStatsCmd)
}
