package main

import (
	"github.com/aretw0/arbor/internal/cli"
	"github.com/spf13/cobra"
)

var addBranchCmd = &cobra.Command{
	Use:   "add-branch <file> <parent-id>",
	Short: "Append a new child to a node",
	Long: `Appends a child labelled "New Branch" (or "New Branch 2", ...) to the node.
A leaf that gains a branch loses its result and becomes a question.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(app *cli.App) error {
			return app.AddBranch(args[0], args[1])
		})
	},
}

var removeBranchCmd = &cobra.Command{
	Use:   "remove-branch <file> <parent-id> <label>",
	Short: "Remove the children of a node that carry a label",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		return withApp(cmd, func(app *cli.App) error {
			return app.RemoveBranch(cmd.Context(), args[0], args[1], args[2], yes)
		})
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <file> <node-id>",
	Short: "Remove a node and its subtree",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		return withApp(cmd, func(app *cli.App) error {
			return app.RemoveNode(cmd.Context(), args[0], args[1], yes)
		})
	},
}

func init() {
	rootCmd.AddCommand(addBranchCmd)
	rootCmd.AddCommand(removeBranchCmd)
	rootCmd.AddCommand(removeCmd)

	removeBranchCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	removeCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}
