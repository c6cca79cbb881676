package main

import (
	"fmt"

	"github.com/aretw0/arbor/internal/cli"
	"github.com/aretw0/arbor/pkg/codec"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Convert the document to JSON or YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		f := codec.Format(format)
		switch {
		case format == "" && output != "":
			f = codec.FormatFor(output)
		case format == "":
			f = codec.FormatJSON
		case f != codec.FormatJSON && f != codec.FormatYAML:
			return fmt.Errorf("unknown format %q (want json or yaml)", format)
		}

		return withApp(cmd, func(app *cli.App) error {
			return app.Export(args[0], f, output)
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().String("format", "", "Output format: 'json' or 'yaml' (default: from --output, else json)")
	exportCmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")
}
