package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/course-reg-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newCompleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <course-code>",
		Short: "Mark a course as completed (prerequisite-satisfied)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := domain.CourseCode(strings.ToUpper(args[0]))

			if err := app.registration.MarkComplete(cmd.Context(), code); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s marked as completed\n", code)
			return nil
		},
	}
}
