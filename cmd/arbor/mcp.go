package main

import (
	"log"
	"os"

	"github.com/aretw0/arbor/internal/cli"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp <file>",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes the document as an MCP Server, so agents can read and edit the tree
through tools (get_tree, find_node, add_branch, remove_branch, set_result, save, ...).

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")
		watch, _ := cmd.Flags().GetBool("watch")

		// Ensure logs don't corrupt JSON-RPC on Stdout
		log.SetOutput(os.Stderr)
		cmd.SetOut(os.Stderr)

		return withApp(cmd, func(app *cli.App) error {
			return app.ServeMCP(cmd.Context(), cli.MCPOptions{
				Path:      args[0],
				Transport: transport,
				Port:      port,
				Watch:     watch,
			})
		})
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8080, "Port to listen on (only for SSE)")
	mcpCmd.Flags().BoolP("watch", "w", false, "Reload the document when the file changes")
}
