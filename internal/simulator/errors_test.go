package simulator

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, KindNone},
		{"missing name sentinel", ErrMissingName, KindMissingName},
		{"wrapped invalid type", fmt.Errorf("decode: %w", ErrInvalidType), KindInvalidType},
		{"empty data", newValidationError(KindEmptyData, ErrEmptyData), KindEmptyData},
		{"plain error", errors.New("disk on fire"), KindUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestProcessingErrorUnwrap(t *testing.T) {
	err := newValidationError(KindMissingName, ErrMissingName)
	if !errors.Is(err, ErrMissingName) {
		t.Error("expected errors.Is to find the sentinel")
	}
	if err.Error() != "MissingNameError: file name is missing or empty" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestNewUnexpectedErrorKeepsClassification(t *testing.T) {
	inner := newValidationError(KindEmptyData, ErrEmptyData)
	got := newUnexpectedError(fmt.Errorf("write step: %w", inner))
	if got.Kind != KindEmptyData {
		t.Errorf("expected classified kind to survive wrapping, got %v", got.Kind)
	}

	cause := errors.New("boom")
	got = newUnexpectedError(cause)
	if got.Kind != KindUnexpected || !errors.Is(got, cause) {
		t.Errorf("unexpected classification: %+v", got)
	}
}

func TestErrorFromPanic(t *testing.T) {
	cause := errors.New("nil map")
	pe := errorFromPanic(cause)
	if pe.Kind != KindUnexpected || !errors.Is(pe, cause) {
		t.Errorf("panic with error not wrapped: %+v", pe)
	}

	pe = errorFromPanic("index out of range")
	if pe.Message != "panic: index out of range" {
		t.Errorf("unexpected message %q", pe.Message)
	}
}

func TestParseErrorKind(t *testing.T) {
	for _, k := range []ErrorKind{KindMissingName, KindInvalidType, KindEmptyData, KindUnexpected} {
		got, ok := ParseErrorKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseErrorKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseErrorKind("TypeError"); ok {
		t.Error("expected unknown kind to be rejected")
	}
}
