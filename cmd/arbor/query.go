package main

import (
	"github.com/aretw0/arbor/internal/cli"
	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:   "query <file> [expression]",
	Short: "List the nodes matching an expression",
	Long: `Evaluates a boolean expression against every node, e.g.

  arbor query colors.json 'leaf && depth == 2'
  arbor query colors.json 'path startsWith "Red"'

Available fields: id, label, question, result, note, tag, leaf, depth, branches, path.
Without an expression every node is listed.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		expr := ""
		if len(args) == 2 {
			expr = args[1]
		}
		return withApp(cmd, func(app *cli.App) error {
			return app.Query(args[0], expr, asJSON)
		})
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().Bool("json", false, "Print matches as a JSON array")
}
