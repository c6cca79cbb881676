package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/arbor/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "arbor",
	Short: "Arbor edits decision trees stored as JSON documents",
	Long: `Arbor builds and maintains decision trees: questions whose answers lead to
further questions or to a final result. A tree lives in a single JSON (or YAML)
document that every command reads and writes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, cancel := cli.NotifyContext(context.Background())
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Write debug logs to stderr")
	rootCmd.PersistentFlags().String("prefs", cli.PrefsFile, "Preference backend: 'file' or 'redis'")
	rootCmd.PersistentFlags().String("prefs-file", "", "Settings file for the 'file' backend (default: user config dir)")
	rootCmd.PersistentFlags().String("redis-addr", "localhost:6379", "Redis address for the 'redis' backend")
	rootCmd.PersistentFlags().String("redis-password", "", "Redis password")
	rootCmd.PersistentFlags().Int("redis-db", 0, "Redis database number")
}

// newApp builds the command environment from the persistent flags.
// Callers must Close the returned App.
func newApp(cmd *cobra.Command) (*cli.App, error) {
	flags := cmd.Flags()
	debug, _ := flags.GetBool("debug")
	prefs, _ := flags.GetString("prefs")
	prefsFile, _ := flags.GetString("prefs-file")
	redisAddr, _ := flags.GetString("redis-addr")
	redisPassword, _ := flags.GetString("redis-password")
	redisDB, _ := flags.GetInt("redis-db")

	return cli.NewApp(cmd.Context(), cli.Options{
		Debug:         debug,
		Prefs:         prefs,
		PrefsPath:     prefsFile,
		RedisAddr:     redisAddr,
		RedisPassword: redisPassword,
		RedisDB:       redisDB,
		Out:           cmd.OutOrStdout(),
	})
}

// withApp runs fn with a fresh App and closes it afterwards.
func withApp(cmd *cobra.Command, fn func(app *cli.App) error) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()
	return fn(app)
}
