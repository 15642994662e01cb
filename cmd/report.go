package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veltraco/dispatch-match-cli/internal/application"
)

func newReportCmd(app *app) *cobra.Command {
	var sortBy string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Match clients against the executor and print the report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, app, application.SortBy(sortBy), asJSON)
		},
	}

	cmd.Flags().StringVar(&sortBy, "sort-by", string(application.SortByDistance), "Ranking key: distance or reward")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func runReport(cmd *cobra.Command, app *app, sortBy application.SortBy, asJSON bool) error {
	if asJSON {
		report, err := app.service.Report(cmd.Context(), sortBy)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	var report string
	err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Matching clients...", func(ctx context.Context) error {
		var genErr error
		report, genErr = app.service.GenerateReport(ctx, sortBy)
		return genErr
	})
	if err != nil {
		if errors.Is(err, application.ErrUnsupportedSortKey) {
			return err
		}

		// The text contract is a single string either way: on failure stdout
		// carries the error message itself, so cobra must not print it again.
		cmd.SilenceErrors = true
		if _, writeErr := fmt.Fprintln(cmd.OutOrStdout(), err.Error()); writeErr != nil {
			return writeErr
		}
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), report)
	return err
}
