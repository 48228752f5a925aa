// Package simulator simulates file processing: validate the request, acquire
// an in-memory resource handle, run the read and write steps, and always
// release the handle before returning. Failures are reported through the
// logger, the Outcome and the Recorder; Process never returns an error.
package simulator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/psantana5/filesim/internal/logging"
)

const tracerName = "github.com/psantana5/filesim/internal/simulator"

// Recorder receives every finished Outcome.
type Recorder interface {
	RecordOutcome(o *Outcome)
}

// Option configures a Simulator
type Option func(*Simulator)

// WithLogger sets the logger used for all notices.
func WithLogger(l *logging.Logger) Option {
	return func(s *Simulator) { s.log = l }
}

// WithRecorder sets the outcome recorder.
func WithRecorder(r Recorder) Option {
	return func(s *Simulator) { s.recorder = r }
}

// WithTracer overrides the global otel tracer.
func WithTracer(t trace.Tracer) Option {
	return func(s *Simulator) { s.tracer = t }
}

// WithSteps replaces the read/write step sequence.
func WithSteps(steps ...Step) Option {
	return func(s *Simulator) { s.steps = steps }
}

// WithClock sets the time source for handle and outcome timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Simulator) { s.now = now }
}

// Simulator holds only immutable collaborators, so one instance can serve
// any number of sequential calls.
type Simulator struct {
	log      *logging.Logger
	recorder Recorder
	tracer   trace.Tracer
	steps    []Step
	now      func() time.Time
}

// New creates a simulator with the default steps, logging INFO to stdout.
// The configured level only gates DEBUG diagnostics: processing notices are
// part of the output contract and are printed at any level.
func New(opts ...Option) *Simulator {
	s := &Simulator{
		log:    logging.NewLogger(logging.INFO, false),
		tracer: otel.Tracer(tracerName),
		steps:  DefaultSteps(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.AtMost(logging.INFO)
	return s
}

// ProcessFile is Process with the request fields passed directly.
func (s *Simulator) ProcessFile(ctx context.Context, name *string, data any) *Outcome {
	return s.Process(ctx, Request{Name: name, Data: data})
}

// Process validates req, simulates the file operations and releases the
// handle on every exit path. The returned Outcome is never nil.
func (s *Simulator) Process(ctx context.Context, req Request) (out *Outcome) {
	out = &Outcome{
		CallID:    uuid.NewString(),
		Name:      req.displayName(),
		StartTime: s.now(),
	}
	s.log.Debug("Process call started", map[string]interface{}{"call": out.CallID})

	ctx, span := s.tracer.Start(ctx, "filesim.process",
		trace.WithAttributes(attribute.String("file.name", out.Name)))

	var handle *ResourceHandle

	// Registered first so it runs last, after any panic has been recovered.
	defer func() {
		s.cleanup(handle, out)
		out.EndTime = s.now()
		out.Duration = out.EndTime.Sub(out.StartTime)
		finishSpan(span, out)
		if s.recorder != nil {
			s.recorder.RecordOutcome(out)
		}
	}()

	defer func() {
		if r := recover(); r != nil {
			s.fail(out, errorFromPanic(r))
		}
	}()

	text, verr := req.validate()
	if verr != nil {
		s.fail(out, verr)
		return out
	}

	h, err := openHandle(*req.Name, s.now())
	if err != nil {
		s.fail(out, newUnexpectedError(err))
		return out
	}
	handle = h
	out.HandleAcquired = true

	s.log.Info("Processing file: " + h.Name)
	s.log.Info("File content: " + text)

	for _, step := range s.steps {
		if err := step.Run(ctx, s.log, handle, text); err != nil {
			s.fail(out, newUnexpectedError(fmt.Errorf("%s step: %w", step.Name(), err)))
			return out
		}
	}

	s.log.Info("File processed successfully: " + h.Name)
	out.Status = StatusSucceeded
	return out
}

func (s *Simulator) fail(out *Outcome, err *ProcessingError) {
	out.fail(err)
	s.log.Error("Error occurred: " + err.Error())
}

// cleanup is the release stage. It runs once per call whatever happened before.
func (s *Simulator) cleanup(handle *ResourceHandle, out *Outcome) {
	log := s.log.WithField("stage", "cleanup")
	log.Info("Cleanup: releasing resources...")

	switch {
	case handle.IsOpen():
		if err := handle.Close(s.now()); err != nil {
			log.Warn(fmt.Sprintf("Failed to close file handle %s: %v", handle.Name, err))
		} else {
			log.Info("File handle closed: " + handle.Name)
		}
	case handle != nil:
		log.Warn(fmt.Sprintf("File handle %s was already %s before cleanup", handle.Name, handle.Status))
	default:
		log.Info("No file handle to close (resource never acquired)")
	}

	out.Handle = handle.snapshot()
	out.CleanupRuns++
	log.Info("Cleanup complete")
}

func finishSpan(span trace.Span, out *Outcome) {
	span.SetAttributes(
		attribute.String("call.id", out.CallID),
		attribute.Bool("handle.acquired", out.HandleAcquired),
		attribute.String("outcome.status", string(out.Status)),
	)
	if out.Err != nil {
		span.SetAttributes(attribute.String("error.kind", out.Err.Kind.String()))
		span.RecordError(out.Err)
		span.SetStatus(codes.Error, out.Err.Message)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
