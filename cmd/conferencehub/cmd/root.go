package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// globalFlags are available to every subcommand and override the environment.
type globalFlags struct {
	logLevel string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	serve := newServeCmd(flags)

	root := &cobra.Command{
		Use:   "conferencehub",
		Short: "Conference Hub - REST backend for conferences and talks",
		Long: `Conference Hub serves a JSON API for conferences, their talks,
and the speakers and participants attached to each talk.

Configuration is read from the environment (and a .env file outside production).`,
		SilenceUsage: true,
		// Run the serve command by default if no subcommand is specified
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve.RunE(cmd, args)
		},
	}
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level (debug, info, warn, error) (default: LOG_LEVEL or info)")
	// serve's flags must also parse when serve runs as the default command
	root.Flags().AddFlagSet(serve.Flags())

	root.AddCommand(serve)
	root.AddCommand(newMigrateCmd(flags))
	root.AddCommand(newVersionCmd())
	return root
}

// Execute builds the command tree and runs it. Called by main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
