package simulator

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind categorizes processing failures
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindMissingName
	KindInvalidType
	KindEmptyData
	KindUnexpected
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindMissingName:
		return "MissingNameError"
	case KindInvalidType:
		return "InvalidTypeError"
	case KindEmptyData:
		return "EmptyDataError"
	case KindUnexpected:
		return "UnexpectedError"
	default:
		return "UnknownError"
	}
}

// ParseErrorKind maps a kind name back to its ErrorKind.
func ParseErrorKind(name string) (ErrorKind, bool) {
	for _, k := range []ErrorKind{KindMissingName, KindInvalidType, KindEmptyData, KindUnexpected} {
		if k.String() == name {
			return k, true
		}
	}
	return KindNone, false
}

var (
	ErrMissingName = errors.New("file name is missing or empty")
	ErrInvalidType = errors.New("file data must be a string")
	ErrEmptyData   = errors.New("file data cannot be empty")
)

// ProcessingError wraps a failure with its kind
type ProcessingError struct {
	Kind      ErrorKind
	Message   string
	Err       error
	Timestamp time.Time
}

// Error implements error interface
func (e *ProcessingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap implements error unwrapping
func (e *ProcessingError) Unwrap() error {
	return e.Err
}

func newValidationError(kind ErrorKind, sentinel error) *ProcessingError {
	return &ProcessingError{
		Kind:      kind,
		Message:   sentinel.Error(),
		Err:       sentinel,
		Timestamp: time.Now(),
	}
}

// newUnexpectedError classifies anything raised during the simulated steps.
// Errors that are already classified keep their kind.
func newUnexpectedError(err error) *ProcessingError {
	var pe *ProcessingError
	if errors.As(err, &pe) {
		return pe
	}
	return &ProcessingError{
		Kind:      KindUnexpected,
		Message:   err.Error(),
		Err:       err,
		Timestamp: time.Now(),
	}
}

func errorFromPanic(r interface{}) *ProcessingError {
	if err, ok := r.(error); ok {
		return newUnexpectedError(fmt.Errorf("panic: %w", err))
	}
	return newUnexpectedError(fmt.Errorf("panic: %v", r))
}

// KindOf reports the kind of err, or KindNone for nil.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	var pe *ProcessingError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	switch {
	case errors.Is(err, ErrMissingName):
		return KindMissingName
	case errors.Is(err, ErrInvalidType):
		return KindInvalidType
	case errors.Is(err, ErrEmptyData):
		return KindEmptyData
	}
	return KindUnexpected
}
