package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "dm",
		Short:         "Dispatch Match CLI (dm): match clients against an executor",
		Long:          "dm (Dispatch Match CLI) fetches a pool of client requests and a single executor, filters out clients whose demands the executor cannot satisfy, ranks the rest by distance or reward, and prints a report.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := zerolog.WarnLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			zerolog.SetGlobalLevel(level)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newReportCmd(app),
		newClientsCmd(app),
		newExecutorCmd(app),
	)

	return rootCmd
}
