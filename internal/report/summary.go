package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/psantana5/filesim/internal/outfmt"
	"github.com/psantana5/filesim/internal/scenario"
)

// WriteSummary renders scenario results in the requested format.
func WriteSummary(w io.Writer, results []scenario.Result, format string) error {
	switch format {
	case outfmt.None:
		return nil

	case outfmt.JSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)

	case outfmt.YAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(results); err != nil {
			return err
		}
		return encoder.Close()

	case outfmt.Table:
		table := tablewriter.NewWriter(w)
		table.Header("#", "Scenario", "File", "Status", "Error", "Handle", "Expected")

		for _, r := range results {
			o := r.Outcome
			errKind := "-"
			if o.ErrorKind != "" {
				errKind = o.ErrorKind
			}
			handle := "never acquired"
			if o.Handle != nil {
				handle = string(o.Handle.Status)
			}
			table.Append([]string{
				fmt.Sprintf("%d", r.Index),
				r.Scenario.Title,
				o.Name,
				string(o.Status),
				errKind,
				handle,
				expectation(r),
			})
		}

		return table.Render()

	default:
		return fmt.Errorf("unknown summary format %q", format)
	}
}

func expectation(r scenario.Result) string {
	switch {
	case r.Scenario.Expect == "":
		return "-"
	case r.Mismatch != "":
		return "MISMATCH: " + r.Mismatch
	default:
		return "ok"
	}
}
