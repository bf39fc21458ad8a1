package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/course-reg-cli/internal/application"
	"github.com/bnema/course-reg-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the course catalog",
	}

	cmd.AddCommand(
		newCatalogListCmd(app),
		newCatalogShowCmd(app),
	)

	return cmd
}

func newCatalogListCmd(app *app) *cobra.Command {
	var department string
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog courses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			courses, err := app.registration.ListCourses(cmd.Context(), application.CourseFilter{
				Department: department,
				Query:      query,
			})
			if err != nil {
				return err
			}

			for _, course := range courses {
				labInfo := ""
				if course.HasLab {
					labInfo = " (has lab)"
				}
				prereqInfo := ""
				if len(course.Prerequisites) > 0 {
					prereqInfo = " | prereq: " + joinCourseCodes(course.Prerequisites)
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s%s\t%d credits%s\n",
					course.Code, course.Title, labInfo, course.Credits, prereqInfo)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&department, "department", "", "filter by department prefix, e.g. SOEN")
	cmd.Flags().StringVar(&query, "search", "", "match course code or title")

	return cmd
}

func newCatalogShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <course-code>",
		Short: "Show a course with its sections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			course, err := app.catalog.FindCourse(cmd.Context(), domain.CourseCode(strings.ToUpper(args[0])))
			if err != nil {
				return fmt.Errorf("find course: %w", err)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s - %s (%d credits)\n", course.Code, course.Title, course.Credits)
			if len(course.Prerequisites) > 0 {
				_, _ = fmt.Fprintf(out, "prerequisites: %s\n", joinCourseCodes(course.Prerequisites))
			}

			for _, section := range course.Sections {
				_, _ = fmt.Fprintf(out, "  %s\t%s\t%s\t%s\t%s\n",
					section.ID, section.Kind, section.Meeting.String(), section.Room, section.Instructor)
			}

			return nil
		},
	}
}

func joinCourseCodes(codes []domain.CourseCode) string {
	parts := make([]string, 0, len(codes))
	for _, code := range codes {
		parts = append(parts, string(code))
	}

	return strings.Join(parts, ", ")
}
