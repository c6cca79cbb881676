package main

import (
	"github.com/aretw0/arbor/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve <file>",
	Short: "Start the HTTP editing server",
	Long: `Loads the document and exposes it as a JSON API over HTTP, with Server-Sent
Events on /events and Prometheus metrics on /metrics. Edits stay in memory until
POST /save.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		watch, _ := cmd.Flags().GetBool("watch")
		quiet, _ := cmd.Flags().GetBool("quiet")
		return withApp(cmd, func(app *cli.App) error {
			return app.Serve(cmd.Context(), cli.ServeOptions{
				Path:  args[0],
				Port:  port,
				Watch: watch,
				Quiet: quiet,
			})
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().BoolP("watch", "w", false, "Reload the document when the file changes")
	serveCmd.Flags().BoolP("quiet", "q", false, "Do not print the banner")
}
