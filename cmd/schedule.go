package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newScheduleCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show the weekly schedule of registered sections",
		RunE: func(cmd *cobra.Command, _ []string) error {
			view, err := app.registration.Schedule(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(view)
			}

			rendered, err := app.scheduleRenderer(view)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the schedule as JSON")

	return cmd
}
