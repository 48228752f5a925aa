package scenario

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/psantana5/filesim/internal/simulator"
)

// Processor runs one request. *simulator.Simulator satisfies it.
type Processor interface {
	Process(ctx context.Context, req simulator.Request) *simulator.Outcome
}

// Result pairs a scenario with the outcome it produced.
type Result struct {
	Index    int                `json:"index" yaml:"index"`
	Scenario Scenario           `json:"scenario" yaml:"scenario"`
	Outcome  *simulator.Outcome `json:"outcome" yaml:"outcome"`
	Mismatch string             `json:"mismatch,omitempty" yaml:"mismatch,omitempty"`
}

const ruleWidth = 50

// Run prints a banner and runs every scenario in order, each framed by a
// header and a separator on w.
func Run(ctx context.Context, p Processor, scenarios []Scenario, w io.Writer) []Result {
	fmt.Fprintln(w, strings.Repeat("=", ruleWidth))
	fmt.Fprintln(w, "TESTING FILE PROCESSING SYSTEM")
	fmt.Fprintln(w, strings.Repeat("=", ruleWidth))
	fmt.Fprintln(w)

	results := make([]Result, 0, len(scenarios))
	for i, sc := range scenarios {
		fmt.Fprintf(w, "TEST %d: %s\n", i+1, sc.Title)

		out := p.Process(ctx, sc.Request())
		res := Result{Index: i + 1, Scenario: sc, Outcome: out}
		if err := sc.Check(out); err != nil {
			res.Mismatch = err.Error()
		}
		results = append(results, res)

		fmt.Fprintln(w, strings.Repeat("─", ruleWidth))
		fmt.Fprintln(w)
	}
	return results
}

// Mismatches returns the results whose outcome differed from the expectation.
func Mismatches(results []Result) []Result {
	var bad []Result
	for _, r := range results {
		if r.Mismatch != "" {
			bad = append(bad, r)
		}
	}
	return bad
}
