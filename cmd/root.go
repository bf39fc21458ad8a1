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
		Use:           "reg",
		Short:         "Course registration CLI (reg): browse the catalog, register sections, plan a schedule",
		Long:          "reg helps you browse the course catalog, register for lecture and lab sections with prerequisite, conflict and credit checking, auto-plan a schedule by credit hours, and chat with a registration assistant from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.Disabled)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging on stderr")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newCatalogCmd(app),
		newRegisterCmd(app),
		newDropCmd(app),
		newPlanCmd(app),
		newScheduleCmd(app),
		newCompleteCmd(app),
		newChatCmd(app),
	)

	return rootCmd
}
