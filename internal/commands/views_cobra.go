package commands

import (
	"github.com/spf13/cobra"
)

// ViewsCmd is the parent command for saved filter presets.
var ViewsCmd = &cobra.Command{
	Use:     "views",
	Aliases: []string{"v"},
	Short:   "Manage saved filter views",
	Long:    "Create, list, and delete reusable filter presets for the review queue",
}

var viewsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all views",
	Run: func(cmd *cobra.Command, args []string) {
		RunViewsList()
	},
}

var viewsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a view's definition",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		RunViewsShow(args[0])
	},
}

var viewsSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save a view preset",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		status, _ := cmd.Flags().GetString("status")
		query, _ := cmd.Flags().GetString("query")
		priority, _ := cmd.Flags().GetString("priority")
		desc, _ := cmd.Flags().GetString("description")
		urgentFirst, _ := cmd.Flags().GetBool("urgent-first")
		RunViewsSave(args[0], desc, status, query, priority, urgentFirst)
	},
}

var viewsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a view",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		RunViewsDelete(args[0])
	},
}

func init() {
	viewsSaveCmd.Flags().StringP("status", "s", "", "Status filter the view applies")
	viewsSaveCmd.Flags().StringP("query", "q", "", "Search query the view applies")
	viewsSaveCmd.Flags().StringP("priority", "p", "", "Priority filter the view applies")
	viewsSaveCmd.Flags().StringP("description", "d", "", "View description")
	viewsSaveCmd.Flags().BoolP("urgent-first", "u", false, "Sort most urgent first")

	ViewsCmd.AddCommand(viewsListCmd)
	ViewsCmd.AddCommand(viewsShowCmd)
	ViewsCmd.AddCommand(viewsSaveCmd)
	ViewsCmd.AddCommand(viewsDeleteCmd)
}
