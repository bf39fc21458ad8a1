package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/bnema/course-reg-cli/internal/adapters/render/schedule"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *app) *cobra.Command {
	var confirm bool

	cmd := &cobra.Command{
		Use:   "plan <credit-hours>",
		Short: "Auto-select a conflict-free section set for a credit target",
		Long:  "plan proposes a conflict-free, prerequisite-satisfying set of sections that fits the requested credit hours. Nothing is registered until the plan is confirmed, either interactively or with --confirm.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var targetCredits int
			if _, err := fmt.Sscanf(args[0], "%d", &targetCredits); err != nil {
				return fmt.Errorf("credit hours must be a number, got %q", args[0])
			}

			plan, err := app.planner.PlanByCredits(cmd.Context(), targetCredits)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !plan.Success {
				_, _ = fmt.Fprintln(out, plan.Message)
				return fmt.Errorf("planning failed: %s", plan.Code)
			}

			_, _ = fmt.Fprintln(out, schedule.RenderPlan(plan))

			if !confirm {
				if !promptYes(cmd, "Register all of these sections? [y/N] ") {
					_, _ = fmt.Fprintln(out, "Plan discarded. Nothing was registered.")
					return nil
				}
			}

			result, err := app.planner.Commit(cmd.Context(), plan.Selected)
			if err != nil {
				return err
			}

			for _, outcome := range result.Results {
				_, _ = fmt.Fprintln(out, outcome.Message)
			}
			_, _ = fmt.Fprintf(out, "registered %d section(s), %d failed\n", result.Registered, result.Failed)

			return nil
		},
	}

	cmd.Flags().BoolVar(&confirm, "confirm", false, "register the plan without prompting")

	return cmd
}

func promptYes(cmd *cobra.Command, prompt string) bool {
	_, _ = fmt.Fprint(cmd.OutOrStdout(), prompt)

	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
