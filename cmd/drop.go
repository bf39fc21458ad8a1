package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/course-reg-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newDropCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "drop <section-id>",
		Short: "Drop a registered section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.registration.Drop(cmd.Context(), domain.SectionID(strings.ToUpper(args[0])))
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			if !result.Success {
				return fmt.Errorf("drop rejected: %s", result.Code)
			}

			return nil
		},
	}
}
