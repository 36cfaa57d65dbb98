package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// ServeCmd starts the HTTP API daemon.
var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API daemon",
	Long:  "Serve the review queue over an authenticated HTTP API and run the overdue monitor",
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")
		RunServe(addr)
	},
}

// McpCmd starts the stdio MCP server.
var McpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server mode",
	Long:  "Expose the review queue as MCP tools over stdio for agent integrations",
	Run: func(cmd *cobra.Command, args []string) {
		RunMCP()
	},
}

// ConfigCmd is the parent command for configuration.
var ConfigCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"c"},
	Short:   "Manage configuration",
	Long:    "Configure the dashboard connection, reviewer identity, and daemon settings",
}

// ConfigSetCmd sets one configuration value.
var ConfigSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return configKeys, cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		RunConfigSet(args[0], args[1])
	},
}

// ConfigGetCmd shows the current configuration.
var ConfigGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		RunConfigGet()
	},
}

// VersionCmd shows build information.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show revu version",
	Run: func(cmd *cobra.Command, args []string) {
		RunVersion()
	},
}

// CompletionCmd generates shell completion scripts
var CompletionCmd = &cobra.Command{
	Use:       "completion [bash|zsh|fish|powershell]",
	Short:     "Generate shell completion script",
	Hidden:    true,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletionV2(os.Stdout, true)
		case "zsh":
			return cmd.Root().GenZshCompletion(os.Stdout)
		case "fish":
			return cmd.Root().GenFishCompletion(os.Stdout, true)
		case "powershell":
			return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
		}
		return fmt.Errorf("unsupported shell: %s", args[0])
	},
}

func init() {
	ServeCmd.Flags().StringP("addr", "a", "", "Listen address (default from config)")

	ConfigCmd.AddCommand(ConfigSetCmd)
	ConfigCmd.AddCommand(ConfigGetCmd)
}
