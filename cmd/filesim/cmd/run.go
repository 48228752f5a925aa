package cmd

import "github.com/spf13/cobra"

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run a scenario sequence",
		Long: `Run the built-in sequence of example invocations, or the scenarios in the
file given with --scenarios. Every scenario goes through validation, the
simulated read/write steps and the cleanup stage.`,
		Args: cobra.NoArgs,
		RunE: a.runScenarios,
	}
}
