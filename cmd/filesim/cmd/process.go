package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/psantana5/filesim/internal/scenario"
	"github.com/psantana5/filesim/internal/simulator"
)

func newProcessCmd(a *app) *cobra.Command {
	var (
		fileName string
		dataText string
		dataJSON string
	)

	processCmd := &cobra.Command{
		Use:   "process",
		Short: "Process a single file request",
		Long: `Process one request. Leave out --name to simulate an absent file name.
Use --data-json to pass a non-text payload such as 42, true or null.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var name *string
			if cmd.Flags().Changed("name") {
				name = &fileName
			}

			var data any
			switch {
			case cmd.Flags().Changed("data-json"):
				if err := json.Unmarshal([]byte(dataJSON), &data); err != nil {
					return fmt.Errorf("invalid --data-json value: %w", err)
				}
			case cmd.Flags().Changed("data"):
				data = dataText
			}

			out := cmd.OutOrStdout()
			sim := a.newSimulator(out)
			outcome := sim.Process(cmd.Context(), simulator.Request{Name: name, Data: data})

			return a.finish(out, []scenario.Result{{
				Index:    1,
				Scenario: scenario.Scenario{Title: "process", Name: name, Data: data},
				Outcome:  outcome,
			}})
		},
	}

	processCmd.Flags().StringVar(&fileName, "name", "", "file name (absent when omitted)")
	processCmd.Flags().StringVar(&dataText, "data", "", "file data as text")
	processCmd.Flags().StringVar(&dataJSON, "data-json", "", "file data as a JSON value")
	processCmd.MarkFlagsMutuallyExclusive("data", "data-json")

	return processCmd
}
