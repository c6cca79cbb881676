package main

import (
	"github.com/aretw0/arbor/internal/cli"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <file> [node-id]",
	Short: "Print the tree outline, or the detail of one node",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, _ := cmd.Flags().GetBool("ids")
		opts := cli.ShowOptions{ShowIDs: ids}
		if len(args) == 2 {
			opts.NodeID = args[1]
		}
		return withApp(cmd, func(app *cli.App) error {
			return app.Show(args[0], opts)
		})
	},
}

var nodeCmd = &cobra.Command{
	Use:   "node <file> <node-id>",
	Short: "Print a single node (and its subtree) as JSON",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(app *cli.App) error {
			return app.PrintNode(args[0], args[1])
		})
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(nodeCmd)

	showCmd.Flags().Bool("ids", false, "Show node IDs in the outline")
}
