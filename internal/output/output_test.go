package output

import (
	"errors"
	"fmt"
	"testing"

	"revu/internal/approval"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", fmt.Errorf("workflow %q: %w", "w1", approval.ErrNotFound), "not_found"},
		{"invalid transition", approval.ErrInvalidTransition, "invalid_transition"},
		{"stale store", approval.ErrStaleStore, "stale_store"},
		{"validation", &approval.ValidationError{Field: "reason", Reason: "reason is required"}, "validation"},
		{"remote", &approval.RemoteError{Op: "approve", WorkflowID: "w1", Err: errors.New("503")}, "remote"},
		{"fetch", &approval.FetchError{Op: "workflows", Err: errors.New("timeout")}, "fetch"},
		{"plain", errors.New("boom"), "error"},
	}
	for _, tt := range tests {
		if got := errorCode(tt.err); got != tt.want {
			t.Errorf("%s: errorCode() = %q, want %q", tt.name, got, tt.want)
		}
	}
}
