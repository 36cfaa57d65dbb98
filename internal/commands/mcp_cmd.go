package commands

import (
	"context"
	"log"
	"os"

	mcpserver "revu/internal/mcp"
	"revu/internal/ui"
)

// RunMCP starts the stdio MCP server. All logging goes to stderr so the
// JSON-RPC stream on stdout stays clean.
func RunMCP() {
	log.SetOutput(os.Stderr)

	deps, err := buildDeps(context.Background())
	if err != nil {
		ui.ShowError("Failed to start MCP server", err)
		os.Exit(1)
	}

	err = mcpserver.RunServer(Version, mcpserver.Deps{
		Store:    deps.Store,
		Engine:   deps.Engine,
		Collab:   deps.Collab,
		Registry: deps.Registry,
		Actor:    deps.Actor,
	})
	if err != nil {
		log.Printf("[mcp] server error: %v", err)
		os.Exit(1)
	}
}
