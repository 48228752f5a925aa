package simulator

import (
	"strings"
	"time"
)

// Request is the input of one Process call. A nil Name is absent; Data may hold any value.
type Request struct {
	Name *string
	Data any
}

// Name returns a pointer to s, for building requests with a present name.
func Name(s string) *string {
	return &s
}

// displayName is the name as it appears in notices and outcomes.
func (r Request) displayName() string {
	if r.Name == nil {
		return "<absent>"
	}
	return *r.Name
}

// validate runs the checks in order and returns the first failure, or the data as text.
func (r Request) validate() (string, *ProcessingError) {
	if r.Name == nil || strings.TrimSpace(*r.Name) == "" {
		return "", newValidationError(KindMissingName, ErrMissingName)
	}

	text, ok := r.Data.(string)
	if !ok {
		return "", newValidationError(KindInvalidType, ErrInvalidType)
	}

	if strings.TrimSpace(text) == "" {
		return "", newValidationError(KindEmptyData, ErrEmptyData)
	}

	return text, nil
}

// OutcomeStatus is the final result of a Process call
type OutcomeStatus string

const (
	StatusSucceeded OutcomeStatus = "succeeded"
	StatusFailed    OutcomeStatus = "failed"
)

// Outcome records what one Process call did. It is filled in once and not
// touched after Process returns.
type Outcome struct {
	CallID string        `json:"call_id" yaml:"call_id"`
	Name   string        `json:"name" yaml:"name"`
	Status OutcomeStatus `json:"status" yaml:"status"`

	ErrorKind    string           `json:"error_kind,omitempty" yaml:"error_kind,omitempty"`
	ErrorMessage string           `json:"error_message,omitempty" yaml:"error_message,omitempty"`
	Err          *ProcessingError `json:"-" yaml:"-"`

	HandleAcquired bool            `json:"handle_acquired" yaml:"handle_acquired"`
	Handle         *ResourceHandle `json:"handle,omitempty" yaml:"handle,omitempty"`
	CleanupRuns    int             `json:"cleanup_runs" yaml:"cleanup_runs"`

	StartTime time.Time     `json:"start_time" yaml:"start_time"`
	EndTime   time.Time     `json:"end_time" yaml:"end_time"`
	Duration  time.Duration `json:"duration_ns" yaml:"duration_ns"`
}

// Kind returns the failure kind, or KindNone on success.
func (o *Outcome) Kind() ErrorKind {
	if o.Err == nil {
		return KindNone
	}
	return KindOf(o.Err)
}

// Succeeded reports whether the call completed without error.
func (o *Outcome) Succeeded() bool {
	return o.Status == StatusSucceeded
}

func (o *Outcome) fail(err *ProcessingError) {
	o.Status = StatusFailed
	o.Err = err
	o.ErrorKind = err.Kind.String()
	o.ErrorMessage = err.Message
}
