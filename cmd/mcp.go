package cmd

import (
	"github.com/huangsam/techdebt/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Tech Debt MCP server",
	Long:  `Launch an MCP server that allows AI agents to classify tech debt via standard tools.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		// Tools pass their own input_path, so no positional argument is used.
		return sharedSetup(rootCtx, cmd, nil)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
