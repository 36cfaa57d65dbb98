package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"revu/internal/commands"
	"revu/internal/output"
)

var jsonFlag bool

var rootCmd = &cobra.Command{
	Use:   "revu",
	Short: "A CLI tool to review content approval workflows",
	Long:  "A terminal client for the content dashboard's approval queue: list, approve, reject, and discuss submissions from the command line, a TUI, an HTTP API, or MCP",
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Output in JSON format")

	rootCmd.AddCommand(commands.ReviewCmd)
	rootCmd.AddCommand(commands.ViewsCmd)
	rootCmd.AddCommand(commands.ServeCmd)
	rootCmd.AddCommand(commands.McpCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
	rootCmd.AddCommand(commands.CompletionCmd)

	rootCmd.Run = func(cmd *cobra.Command, args []string) {
		output.JSONMode = jsonFlag

		// If --json flag, output the queue in JSON
		if jsonFlag {
			commands.RunReviewList("", "", "", "", false)
			return
		}

		// If stdin is a TTY, launch the interactive dashboard
		if term.IsTerminal(int(os.Stdin.Fd())) {
			commands.RunTUI()
			return
		}

		// Non-TTY fallback: plain queue listing
		commands.RunReviewList("", "", "", "", false)
	}
}

func main() {
	// Propagate --json flag before execution
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		output.JSONMode = jsonFlag
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
