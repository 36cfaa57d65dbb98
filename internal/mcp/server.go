package mcpserver

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"revu/internal/approval"
	"revu/internal/team"
)

// Deps carries the review backend the MCP tools operate on. Actor is the
// reviewer identity every mutation is attributed to, taken from local config.
type Deps struct {
	Store    *approval.Store
	Engine   *approval.Engine
	Collab   *approval.Collab
	Registry *team.Registry
	Actor    team.Member
}

// RunServer starts the MCP server over stdio transport.
func RunServer(version string, deps Deps) error {
	server := mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    "revu",
			Version: version,
		},
		nil,
	)

	registerWorkflowTools(server, &deps)

	return server.Run(context.Background(), &mcpsdk.StdioTransport{})
}
