package simulator

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// HandleStatus is the lifecycle state of a simulated resource handle
type HandleStatus string

const (
	HandleNonexistent HandleStatus = "nonexistent" // never acquired
	HandleOpen        HandleStatus = "open"        // acquired, in use
	HandleClosed      HandleStatus = "closed"      // released, terminal
)

// validHandleTransitions maps from-state to allowed to-states
var validHandleTransitions = map[HandleStatus]map[HandleStatus]bool{
	HandleNonexistent: {
		HandleOpen: true, // acquisition after validation
	},
	HandleOpen: {
		HandleClosed: true, // release on the cleanup path
	},
	// Terminal
	HandleClosed: {},
}

// ValidateHandleTransition checks if a handle state transition is valid
func ValidateHandleTransition(from, to HandleStatus) error {
	allowed, exists := validHandleTransitions[from]
	if !exists {
		return fmt.Errorf("unknown handle state: %s", from)
	}
	if !allowed[to] {
		return fmt.Errorf("invalid handle transition from %s to %s", from, to)
	}
	return nil
}

// ResourceHandle is an in-memory stand-in for an open file descriptor.
// It belongs to exactly one Process call and is never reused.
type ResourceHandle struct {
	ID       string       `json:"id" yaml:"id"`
	Name     string       `json:"name" yaml:"name"`
	Status   HandleStatus `json:"status" yaml:"status"`
	OpenedAt time.Time    `json:"opened_at" yaml:"opened_at"`
	ClosedAt time.Time    `json:"closed_at,omitempty" yaml:"closed_at,omitempty"`
}

// openHandle acquires a new handle in the open state.
func openHandle(name string, now time.Time) (*ResourceHandle, error) {
	if err := ValidateHandleTransition(HandleNonexistent, HandleOpen); err != nil {
		return nil, err
	}
	return &ResourceHandle{
		ID:       uuid.NewString(),
		Name:     name,
		Status:   HandleOpen,
		OpenedAt: now,
	}, nil
}

// Close releases the handle. Closing twice is an error.
func (h *ResourceHandle) Close(now time.Time) error {
	if err := ValidateHandleTransition(h.Status, HandleClosed); err != nil {
		return fmt.Errorf("close handle %s: %w", h.Name, err)
	}
	h.Status = HandleClosed
	h.ClosedAt = now
	return nil
}

// IsOpen reports whether the handle still needs releasing.
func (h *ResourceHandle) IsOpen() bool {
	return h != nil && h.Status == HandleOpen
}

// snapshot returns a copy detached from the live handle.
func (h *ResourceHandle) snapshot() *ResourceHandle {
	if h == nil {
		return nil
	}
	c := *h
	return &c
}
