package main

import (
	"github.com/aretw0/arbor/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check the tree for consistency",
	Long: `Crawls the tree and reports duplicate or empty IDs, nodes that are both a
question and a result, and repeated branch labels. Warnings do not fail validation.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		strict, _ := cmd.Flags().GetBool("strict")
		return withApp(cmd, func(app *cli.App) error {
			return app.Validate(args[0], strict)
		})
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("strict", false, "Also require the root to be identified by node-root")
}
