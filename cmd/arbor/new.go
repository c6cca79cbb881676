package main

import (
	"github.com/aretw0/arbor/internal/cli"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new <file>",
	Short: "Create an empty decision tree",
	Long:  `Writes a new document holding only a root node, labelled with the defaultRootLabel preference.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		return withApp(cmd, func(app *cli.App) error {
			return app.Create(args[0], false, force)
		})
	},
}

var sampleCmd = &cobra.Command{
	Use:   "sample <file>",
	Short: "Write the colour questionnaire sample tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		return withApp(cmd, func(app *cli.App) error {
			return app.Create(args[0], true, force)
		})
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(sampleCmd)

	newCmd.Flags().BoolP("force", "f", false, "Overwrite an existing file")
	sampleCmd.Flags().BoolP("force", "f", false, "Overwrite an existing file")
}
