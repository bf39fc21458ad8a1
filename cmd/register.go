package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/course-reg-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newRegisterCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "register <section-id>",
		Short: "Register for a section, e.g. reg register SOEN2351-01",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sectionID := strings.ToUpper(args[0])
			courseCode, _, ok := strings.Cut(sectionID, "-")
			if !ok {
				return fmt.Errorf("section id %q must look like COURSE-SECTION, e.g. SOEN2351-01", args[0])
			}

			result, err := app.registration.Register(cmd.Context(), domain.CourseCode(courseCode), domain.SectionID(sectionID))
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			if !result.Success {
				return fmt.Errorf("registration rejected: %s", result.Code)
			}

			return nil
		},
	}
}
