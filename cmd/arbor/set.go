package main

import (
	"errors"

	"github.com/aretw0/arbor/internal/cli"
	"github.com/aretw0/arbor/pkg/session"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <file> <node-id>",
	Short: "Change the text fields of a node",
	Long: `Changes the fields given as flags and leaves the others as they are.
An empty value clears an optional field. Setting a result drops the node's branches.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var p session.Patch
		flags := cmd.Flags()
		for name, dst := range map[string]**string{
			"label":    &p.Label,
			"question": &p.Question,
			"result":   &p.Result,
			"note":     &p.Note,
			"tag":      &p.Tag,
		} {
			if flags.Changed(name) {
				v, _ := flags.GetString(name)
				*dst = &v
			}
		}
		p.ClearResult, _ = flags.GetBool("clear-result")

		if p == (session.Patch{}) {
			return errors.New("nothing to change: pass at least one of --label, --question, --result, --note, --tag or --clear-result")
		}
		return withApp(cmd, func(app *cli.App) error {
			return app.Set(args[0], args[1], p)
		})
	},
}

func init() {
	rootCmd.AddCommand(setCmd)

	setCmd.Flags().String("label", "", "Answer text shown by the parent")
	setCmd.Flags().String("question", "", "Prompt shown at this node")
	setCmd.Flags().String("result", "", "Make the node a leaf with this result")
	setCmd.Flags().String("note", "", "Free-form note")
	setCmd.Flags().String("tag", "", "Free-form tag")
	setCmd.Flags().Bool("clear-result", false, "Remove the result of a leaf")
}
