package main

import (
	"github.com/aretw0/arbor/internal/cli"
	"github.com/aretw0/arbor/internal/presentation/graph"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph <file>",
	Short: "Export the tree as a diagram",
	Long:  `Prints the tree as a Mermaid flowchart or a Graphviz DOT graph.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		highlight, _ := cmd.Flags().GetString("highlight")
		current, _ := cmd.Flags().GetString("current")
		return withApp(cmd, func(app *cli.App) error {
			return app.Graph(args[0], graph.Format(format), highlight, current)
		})
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("format", string(graph.FormatMermaid), "Output format: 'mermaid' or 'dot'")
	graphCmd.Flags().String("highlight", "", "Highlight the nodes matching this query expression")
	graphCmd.Flags().String("current", "", "Mark the node with this ID as the one being worked on")
}
