package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newExecutorCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "executor",
		Short: "Show the executor's position and possibilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			executor, err := app.executorSource.FetchExecutor(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(executor)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "position\t%g,%g\n", executor.Position.X, executor.Position.Y)
			for _, possibility := range executor.Possibilities {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "possibility\t%s\n", possibility)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
