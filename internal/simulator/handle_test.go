package simulator

import (
	"testing"
	"time"
)

func TestValidateHandleTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    HandleStatus
		to      HandleStatus
		wantErr bool
	}{
		{"Nonexistent to Open", HandleNonexistent, HandleOpen, false},
		{"Open to Closed", HandleOpen, HandleClosed, false},

		{"Nonexistent to Closed", HandleNonexistent, HandleClosed, true},
		{"Open to Open", HandleOpen, HandleOpen, true},
		{"Closed to Closed", HandleClosed, HandleClosed, true},
		{"Closed to Open", HandleClosed, HandleOpen, true},
		{"Unknown state", HandleStatus("leaked"), HandleClosed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHandleTransition(tt.from, tt.to)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHandleTransition(%v, %v) error = %v, wantErr %v",
					tt.from, tt.to, err, tt.wantErr)
			}
		})
	}
}

func TestHandleLifecycle(t *testing.T) {
	opened := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	h, err := openHandle("notes.txt", opened)
	if err != nil {
		t.Fatalf("openHandle failed: %v", err)
	}
	if h.Status != HandleOpen || !h.IsOpen() {
		t.Fatalf("expected open handle, got %s", h.Status)
	}
	if h.ID == "" {
		t.Error("expected handle id")
	}
	if !h.OpenedAt.Equal(opened) {
		t.Errorf("OpenedAt = %v, want %v", h.OpenedAt, opened)
	}

	closed := opened.Add(time.Second)
	if err := h.Close(closed); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if h.Status != HandleClosed || h.IsOpen() {
		t.Errorf("expected closed handle, got %s", h.Status)
	}
	if !h.ClosedAt.Equal(closed) {
		t.Errorf("ClosedAt = %v, want %v", h.ClosedAt, closed)
	}

	if err := h.Close(closed); err == nil {
		t.Error("expected error closing a closed handle")
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	h, _ := openHandle("a.txt", time.Now())
	snap := h.snapshot()
	_ = h.Close(time.Now())

	if snap.Status != HandleOpen {
		t.Errorf("snapshot changed with live handle: %s", snap.Status)
	}

	var none *ResourceHandle
	if none.snapshot() != nil {
		t.Error("snapshot of nil handle should be nil")
	}
	if none.IsOpen() {
		t.Error("nil handle is not open")
	}
}
