package commands

import (
	"github.com/spf13/cobra"

	"github.com/oaskit/oaspath/internal/mcpserver"
)

func newMCPCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run the MCP server over stdio",
		Long: `Run a Model Context Protocol server over stdin/stdout exposing the
pathitem_format, pathitem_build and pathitem_methods tools.

Defaults are read from OASPATH_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return mcpserver.Run(cmd.Context())
		},
	}
}
