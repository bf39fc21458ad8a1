package cmd

import (
	"fmt"

	"github.com/bnema/course-reg-cli/internal/adapters/assistant"
	"github.com/spf13/cobra"
)

func newChatCmd(app *app) *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the registration assistant",
		Long:  "chat opens an interactive assistant session. With --message a single message is answered on stdout instead; registrations that need confirmation are not committed in that mode.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if message != "" {
				reply, err := app.responder.Respond(cmd.Context(), message)
				if err != nil {
					return err
				}

				_, _ = fmt.Fprintln(cmd.OutOrStdout(), reply.Text)
				if reply.Pending {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "(confirmation required: run reg register or reg plan to commit)")
					app.responder.Cancel()
				}
				return nil
			}

			return assistant.RunChat(cmd.Context(), app.responder)
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "answer a single message and exit")

	return cmd
}
