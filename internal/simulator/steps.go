package simulator

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/psantana5/filesim/internal/logging"
)

// Step is one simulated operation on an open handle.
type Step interface {
	Name() string
	Run(ctx context.Context, log *logging.Logger, h *ResourceHandle, data string) error
}

// StepFunc adapts a function to the Step interface.
type StepFunc struct {
	StepName string
	Fn       func(ctx context.Context, log *logging.Logger, h *ResourceHandle, data string) error
}

func (s StepFunc) Name() string { return s.StepName }

func (s StepFunc) Run(ctx context.Context, log *logging.Logger, h *ResourceHandle, data string) error {
	return s.Fn(ctx, log, h, data)
}

// ReadStep simulates reading the file contents.
var ReadStep Step = StepFunc{
	StepName: "read",
	Fn: func(_ context.Context, log *logging.Logger, _ *ResourceHandle, data string) error {
		log.Info(fmt.Sprintf("Reading file data... (%d characters)", utf8.RuneCountInString(data)))
		return nil
	},
}

// WriteStep simulates writing the processed data.
var WriteStep Step = StepFunc{
	StepName: "write",
	Fn: func(_ context.Context, log *logging.Logger, _ *ResourceHandle, _ string) error {
		log.Info("Writing processed data to virtual library...")
		return nil
	},
}

// DefaultSteps is the read-then-write sequence.
func DefaultSteps() []Step {
	return []Step{ReadStep, WriteStep}
}
